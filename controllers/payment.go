package controllers

import (
	"net/http"

	"github.com/MuhammadAsgharramzan/MechaniXpress/services"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentController struct {
	Payments *services.PaymentService
	Bookings *services.BookingService
}

type InitiatePaymentInput struct {
	BookingID    uuid.UUID `json:"bookingId" binding:"required"`
	MobileNumber string    `json:"mobileNumber" binding:"required"`
}

type PaymentCallbackInput struct {
	TransactionID string `json:"transactionId" binding:"required"`
}

func (pc *PaymentController) InitiatePayment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var input InitiatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Reuses the booking read path so only the owner (or admin) can pay.
	booking, err := pc.Bookings.GetBookingDetails(c.Request.Context(), userID, c.GetString("role"), input.BookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := pc.Payments.InitiatePayment(booking.TotalCost, booking.BookingNumber, input.MobileNumber)

	c.JSON(http.StatusOK, gin.H{"success": true, "payment": result})
}

func (pc *PaymentController) PaymentCallback(c *gin.Context) {
	var input PaymentCallbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result := pc.Payments.VerifyPayment(input.TransactionID)

	c.JSON(http.StatusOK, gin.H{"success": true, "payment": result})
}
