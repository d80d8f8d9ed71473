package controllers

import (
	"errors"
	"net/http"

	"github.com/MuhammadAsgharramzan/MechaniXpress/services"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// respondServiceError maps the typed service error kinds onto stable HTTP
// statuses; anything else is a 500.
func respondServiceError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		status := http.StatusInternalServerError
		switch svcErr.Kind {
		case services.KindValidation:
			status = http.StatusBadRequest
		case services.KindAuthorization:
			status = http.StatusForbidden
		case services.KindNotFound:
			status = http.StatusNotFound
		case services.KindConflict:
			status = http.StatusConflict
		}
		utils.RespondWithError(c, status, svcErr.Message)
		return
	}

	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
}

// callerID returns the authenticated user's id set by the auth middleware.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("userId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	return id, true
}
