package main

import (
	"context"
	"os"

	"github.com/MuhammadAsgharramzan/MechaniXpress/config"
	"github.com/MuhammadAsgharramzan/MechaniXpress/database"
	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/MuhammadAsgharramzan/MechaniXpress/routes"
	"github.com/MuhammadAsgharramzan/MechaniXpress/services"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}
	config.InitLogger()

	db, err := config.ConnectDB(os.Getenv("DB_URL"))
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.MechanicProfile{},
		&models.Vehicle{},
		&models.Service{},
		&models.Booking{},
		&models.BookingCounter{},
		&models.Review{},
		&models.Notification{},
	); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	store := repository.NewStore(db)

	if err := database.Seed(context.Background(), store); err != nil {
		logrus.WithError(err).Fatal("Failed to seed database")
	}

	notifications := services.NewNotificationService(store)
	maps := services.NewMapService()
	bookings := services.NewBookingService(store, notifications, maps)
	reviews := services.NewReviewService(store, notifications)
	payments := services.NewPaymentService()

	reminders := services.NewReminderService(store, notifications)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(store, bookings, reviews, notifications, payments)

	logrus.Infof("Starting API server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to run server")
	}
}
