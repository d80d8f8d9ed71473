package controllers

import (
	"net/http"

	"github.com/MuhammadAsgharramzan/MechaniXpress/services"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

type CreateReviewInput struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment"`
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	review, err := rc.Reviews.CreateReview(c.Request.Context(), userID, services.CreateReviewInput{
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "review": review})
}

func (rc *ReviewController) GetMechanicReviews(c *gin.Context) {
	mechanicID, err := uuid.Parse(c.Param("mechanicId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid mechanic ID format")
		return
	}

	reviews, err := rc.Reviews.ListMechanicReviews(c.Request.Context(), mechanicID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}
