package controllers

import (
	"errors"
	"net/http"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceController struct {
	Store *repository.Store
}

type ServiceInput struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Category          string  `json:"category" binding:"required,oneof=CAR BIKE"`
	BasePrice         float64 `json:"basePrice" binding:"required,min=0"`
	ConvenienceFee    float64 `json:"convenienceFee" binding:"min=0"`
	EstimatedDuration string  `json:"estimatedDuration"`
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	services, err := sc.Store.Services.List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "services": services})
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := &models.Service{
		Name:              input.Name,
		Description:       input.Description,
		Category:          input.Category,
		BasePrice:         input.BasePrice,
		ConvenienceFee:    input.ConvenienceFee,
		EstimatedDuration: input.EstimatedDuration,
		IsActive:          true,
	}
	if err := sc.Store.Services.Create(c.Request.Context(), service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "service": service})
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.Store.Services.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service.Name = input.Name
	service.Description = input.Description
	service.Category = input.Category
	service.BasePrice = input.BasePrice
	service.ConvenienceFee = input.ConvenienceFee
	service.EstimatedDuration = input.EstimatedDuration

	if err := sc.Store.Services.Save(c.Request.Context(), service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}
