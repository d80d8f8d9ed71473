package controllers

import (
	"net/http"
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/services"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingController struct {
	Bookings *services.BookingService
}

type CreateBookingInput struct {
	ServiceID          uuid.UUID `json:"serviceId" binding:"required"`
	VehicleID          uuid.UUID `json:"vehicleId" binding:"required"`
	ScheduledDate      time.Time `json:"scheduledDate" binding:"required"`
	ScheduledTime      string    `json:"scheduledTime" binding:"required"`
	LocationAddress    string    `json:"locationAddress" binding:"required"`
	LocationLat        float64   `json:"locationLat"`
	LocationLng        float64   `json:"locationLng"`
	ProblemDescription string    `json:"problemDescription" binding:"required"`
}

type UpdateJobStatusInput struct {
	Status string `json:"status" binding:"required,oneof=IN_PROGRESS COMPLETED"`
}

// --- Customer endpoints ---

func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Bookings.CreateBooking(c.Request.Context(), userID, services.CreateBookingInput{
		VehicleID:          input.VehicleID,
		ServiceID:          input.ServiceID,
		ScheduledDate:      input.ScheduledDate,
		ScheduledTime:      input.ScheduledTime,
		LocationAddress:    input.LocationAddress,
		LocationLat:        input.LocationLat,
		LocationLng:        input.LocationLng,
		ProblemDescription: input.ProblemDescription,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
}

func (bc *BookingController) GetCustomerBookings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	bookings, err := bc.Bookings.ListCustomerBookings(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := bc.Bookings.CancelBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled", "booking": booking})
}

// --- Shared endpoint ---

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := bc.Bookings.GetBookingDetails(c.Request.Context(), userID, c.GetString("role"), bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// --- Mechanic endpoints ---

func (bc *BookingController) GetAvailableJobs(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	jobs, err := bc.Bookings.ListAvailableJobs(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

func (bc *BookingController) GetMechanicBookings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	jobs, err := bc.Bookings.ListMechanicActiveJobs(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

func (bc *BookingController) AcceptJob(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := bc.Bookings.AcceptJob(c.Request.Context(), userID, bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job accepted!", "booking": booking})
}

func (bc *BookingController) UpdateJobStatus(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateJobStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Bookings.UpdateJobStatus(c.Request.Context(), userID, bookingID, input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}
