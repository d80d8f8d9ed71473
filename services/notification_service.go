package services

import (
	"context"
	"errors"
	"os"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NotificationService appends to the per-user notification log and, when
// Twilio is configured, fans lifecycle messages out over SMS as well. The SMS
// channel is best effort; the log row is the source of truth.
type NotificationService struct {
	store  *repository.Store
	client *twilio.RestClient
	from   string
}

func NewNotificationService(store *repository.Store) *NotificationService {
	s := &NotificationService{store: store}

	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if accountSid != "" && authToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
		s.from = os.Getenv("TWILIO_PHONE_NUMBER")
	}
	return s
}

// Notify appends a message to the user's notification log.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, message string) {
	n := &models.Notification{UserID: userID, Message: message}
	if err := s.store.Notifications.Create(ctx, n); err != nil {
		logrus.WithError(err).WithField("userId", userID).Error("failed to append notification")
		return
	}
	s.sendSMS(ctx, userID, message)
}

func (s *NotificationService) sendSMS(ctx context.Context, userID uuid.UUID, message string) {
	if s.client == nil || s.from == "" {
		return
	}
	user, err := s.store.Users.GetByID(ctx, userID)
	if err != nil || user.Phone == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(user.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		logrus.WithError(err).WithField("userId", userID).Warn("failed to send SMS notification")
	}
}

// List returns the user's most recent notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	return s.store.Notifications.ListByUser(ctx, userID, 20)
}

// MarkRead flags a notification as read; only the owner may do so.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	n, err := s.store.Notifications.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundf("Notification not found")
		}
		return err
	}
	if n.UserID != userID {
		return Authorizationf("Unauthorized")
	}
	return s.store.Notifications.MarkRead(ctx, notificationID)
}
