package database

import (
	"context"
	"os"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/sirupsen/logrus"
)

// Seed makes sure an admin account and the service catalog exist. It is safe
// to run on every boot.
func Seed(ctx context.Context, store *repository.Store) error {
	if err := seedAdmin(ctx, store); err != nil {
		return err
	}
	return seedServices(ctx, store)
}

func seedAdmin(ctx context.Context, store *repository.Store) error {
	count, err := store.Users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Admin already exists. Seeding skipped.")
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	logrus.Info("Admin not found. Seeding...")
	return store.Users.Create(ctx, &models.User{
		Email:    "admin@mechanixpress.com",
		Phone:    "+923000000000",
		Password: password, // hashed in BeforeCreate hook
		Name:     "Platform Admin",
		Role:     models.RoleAdmin,
	})
}

func seedServices(ctx context.Context, store *repository.Store) error {
	count, err := store.Services.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logrus.Info("Seeding service catalog...")
	services := []models.Service{
		{
			Name:              "Oil Change Package",
			Description:       "Complete oil change with filter replacement and fluid check",
			Category:          models.CategoryCar,
			BasePrice:         3500,
			ConvenienceFee:    500,
			EstimatedDuration: "45 mins",
			IsActive:          true,
		},
		{
			Name:              "General Tuning",
			Description:       "Engine tuning, spark plug cleaning, and air filter check",
			Category:          models.CategoryCar,
			BasePrice:         2000,
			ConvenienceFee:    500,
			EstimatedDuration: "1 hour",
			IsActive:          true,
		},
		{
			Name:              "Brake Service",
			Description:       "Brake pad replacement and disc inspection",
			Category:          models.CategoryCar,
			BasePrice:         1500,
			ConvenienceFee:    500,
			EstimatedDuration: "1.5 hours",
			IsActive:          true,
		},
		{
			Name:              "Battery Replacement",
			Description:       "New battery installation and electrical check",
			Category:          models.CategoryCar,
			BasePrice:         500,
			ConvenienceFee:    300,
			EstimatedDuration: "30 mins",
			IsActive:          true,
		},
		{
			Name:              "Bike Tuning",
			Description:       "Standard bike tuning and oil change",
			Category:          models.CategoryBike,
			BasePrice:         800,
			ConvenienceFee:    200,
			EstimatedDuration: "45 mins",
			IsActive:          true,
		},
	}

	for i := range services {
		if err := store.Services.Create(ctx, &services[i]); err != nil {
			return err
		}
	}
	return nil
}
