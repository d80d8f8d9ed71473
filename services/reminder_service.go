package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderService nudges customers about bookings scheduled for the next day.
type ReminderService struct {
	store    *repository.Store
	notifier *NotificationService
}

func NewReminderService(store *repository.Store, notifier *NotificationService) *ReminderService {
	return &ReminderService{store: store, notifier: notifier}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendUpcomingReminders(context.Background())
	})

	c.Start()
	logrus.Info("Reminder scheduler started")
}

// SendUpcomingReminders notifies each customer with a still-open booking
// scheduled tomorrow.
func (s *ReminderService) SendUpcomingReminders(ctx context.Context) {
	from := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	to := from.AddDate(0, 0, 1)

	bookings, err := s.store.Bookings.ListUpcoming(ctx, from, to)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch upcoming bookings")
		return
	}

	for _, b := range bookings {
		msg := fmt.Sprintf("Reminder: booking %s is scheduled tomorrow at %s.",
			b.BookingNumber, b.ScheduledTime)
		s.notifier.Notify(ctx, b.CustomerID, msg)
	}

	logrus.WithField("count", len(bookings)).Info("booking reminders processed")
}
