package controllers

import (
	"net/http"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/MuhammadAsgharramzan/MechaniXpress/services"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminController struct {
	Store         *repository.Store
	Notifications *services.NotificationService
}

func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	totalBookings, err := ac.Store.Bookings.Count(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	totalCustomers, _ := ac.Store.Users.CountByRole(ctx, models.RoleCustomer)
	totalMechanics, _ := ac.Store.Users.CountByRole(ctx, models.RoleMechanic)
	pendingMechanics, _ := ac.Store.Mechanics.CountUnverified(ctx)
	totalRevenue, _ := ac.Store.Bookings.SumCompletedCost(ctx)
	avgRating, _ := ac.Store.Mechanics.AverageRating(ctx)
	bookingsByStatus, _ := ac.Store.Bookings.CountByStatus(ctx)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalBookings":    totalBookings,
			"totalCustomers":   totalCustomers,
			"totalMechanics":   totalMechanics,
			"pendingMechanics": pendingMechanics,
			"totalRevenue":     totalRevenue,
			"avgRating":        avgRating,
			"bookingsByStatus": bookingsByStatus,
		},
	})
}

func (ac *AdminController) GetAllMechanics(c *gin.Context) {
	mechanics, err := ac.Store.Mechanics.List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mechanics": mechanics})
}

func (ac *AdminController) ApproveMechanic(c *gin.Context) {
	ac.setVerification(c, true, "Mechanic approved successfully",
		"Your mechanic profile has been verified. You can now accept jobs.")
}

func (ac *AdminController) RejectMechanic(c *gin.Context) {
	ac.setVerification(c, false, "Mechanic rejected/suspended",
		"Your mechanic profile verification was declined.")
}

func (ac *AdminController) setVerification(c *gin.Context, verified bool, message, notice string) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid mechanic ID format")
		return
	}

	mechanic, err := ac.Store.Mechanics.SetVerified(c.Request.Context(), profileID, verified)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Mechanic not found")
		return
	}

	ac.Notifications.Notify(c.Request.Context(), mechanic.UserID, notice)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "mechanic": mechanic})
}
