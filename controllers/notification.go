package controllers

import (
	"net/http"

	"github.com/MuhammadAsgharramzan/MechaniXpress/services"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	notifications, err := nc.Notifications.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}

func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid notification ID format")
		return
	}

	if err := nc.Notifications.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Marked as read"})
}
