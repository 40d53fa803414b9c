package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"parts-store/models"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidCartItem), errors.Is(err, models.ErrInvalidUser),
		errors.Is(err, models.ErrInvalidProduct):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrCartItemNotFound), errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrProductNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrDuplicateLineItem), errors.Is(err, models.ErrVersionConflict),
		errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	resp := models.ErrorResponse{Success: false, Message: message, Error: err.Error()}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		resp.Error = ""
	}
	c.JSON(status, resp)
}

// respondLookupError answers a direct lookup of a product. Unlike a cart line
// pointing at a missing product, that is a plain 404.
func respondLookupError(c *gin.Context, message string, err error) {
	if errors.Is(err, models.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: message, Error: err.Error()})
		return
	}
	respondError(c, message, err)
}

func respondBadRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}
