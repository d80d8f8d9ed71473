package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleController struct {
	Store *repository.Store
}

type AddVehicleInput struct {
	Category     string `json:"category" binding:"required,oneof=CAR BIKE"`
	Make         string `json:"make" binding:"required,min=1"`
	Model        string `json:"model" binding:"required,min=1"`
	Year         int    `json:"year" binding:"required,min=1900"`
	LicensePlate string `json:"licensePlate"`
}

func (vc *VehicleController) AddVehicle(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var input AddVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Year > time.Now().Year()+1 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle year")
		return
	}

	vehicle := &models.Vehicle{
		CustomerID:   userID,
		Category:     input.Category,
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		LicensePlate: input.LicensePlate,
	}
	if err := vc.Store.Vehicles.Create(c.Request.Context(), vehicle); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "vehicle": vehicle})
}

func (vc *VehicleController) GetVehicles(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	vehicles, err := vc.Store.Vehicles.ListByCustomer(c.Request.Context(), userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "vehicles": vehicles})
}

func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	vehicle, err := vc.Store.Vehicles.GetByID(c.Request.Context(), vehicleID)
	if err != nil || vehicle.CustomerID != userID {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		// Not found and not-owned look the same to the caller.
		utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	if err := vc.Store.Vehicles.Delete(c.Request.Context(), vehicleID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vehicle")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle deleted"})
}
