package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

var errInvalidTableNumber = errors.New("table number must be numeric")

// statusFor memetakan error service ke HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrUnknownView),
		errors.Is(err, services.ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnknownMenuItem),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrTableOutOfRange):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.ErrorLogger.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	utils.RespondError(c, code, err)
}

// tableNumberParam membaca :table_number. false berarti response sudah dikirim.
func tableNumberParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("table_number"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errInvalidTableNumber)
		return 0, false
	}
	if !models.ValidTableNumber(n) {
		utils.RespondError(c, http.StatusNotFound, services.ErrTableOutOfRange)
		return 0, false
	}
	return n, true
}
