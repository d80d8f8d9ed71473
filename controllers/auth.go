package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Store *repository.Store
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=2"`
	Phone    string `json:"phone" binding:"required,min=10"`
	Role     string `json:"role" binding:"required,oneof=CUSTOMER MECHANIC"`

	// Mechanic specific fields
	CNIC              string              `json:"cnic"`
	ExperienceYears   int                 `json:"experienceYears"`
	VehicleCategories models.CategoryList `json:"vehicleCategories"`
	Address           string              `json:"address"`
	Latitude          *float64            `json:"latitude"`
	Longitude         *float64            `json:"longitude"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	exists, err := ac.Store.Users.ExistsByEmailOrPhone(c.Request.Context(), input.Email, input.Phone)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		utils.RespondWithError(c, http.StatusBadRequest, "User already exists (email or phone)")
		return
	}

	user := &models.User{
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password, // hashed in BeforeCreate hook
		Name:     input.Name,
		Role:     input.Role,
	}

	// Mechanics get their profile in the same transaction, so a failed
	// profile never leaves a bare MECHANIC user behind.
	err = ac.Store.Transaction(c.Request.Context(), func(tx *repository.Store) error {
		if err := tx.Users.Create(c.Request.Context(), user); err != nil {
			return err
		}

		if input.Role != models.RoleMechanic {
			return nil
		}
		if input.CNIC == "" {
			return errors.New("CNIC is required for mechanics")
		}

		categories := input.VehicleCategories
		if len(categories) == 0 {
			categories = models.CategoryList{models.CategoryCar}
		}
		if err := categories.Validate(); err != nil {
			return err
		}

		address := input.Address
		if address == "" {
			address = "Mobile Mechanic"
		}

		return tx.Mechanics.Create(c.Request.Context(), &models.MechanicProfile{
			UserID:          user.ID,
			CNIC:            input.CNIC,
			ExperienceYears: input.ExperienceYears,
			Categories:      categories,
			Address:         address,
			Latitude:        input.Latitude,
			Longitude:       input.Longitude,
		})
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := ac.Store.Users.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	ac.Store.Users.UpdateLastLogin(c.Request.Context(), user.ID, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := ac.Store.Users.GetWithRelations(c.Request.Context(), userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
