package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/utils"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidPIN = errors.New("invalid operator PIN")

// AuthController membuka kunci perangkat kasir dengan PIN operator.
type AuthController struct {
	PINHash  []byte
	Secret   []byte
	TokenTTL time.Duration
}

func NewAuthController(pinHash, secret []byte, ttl time.Duration) *AuthController {
	return &AuthController{PINHash: pinHash, Secret: secret, TokenTTL: ttl}
}

// HashPIN dipanggil sekali saat startup.
func HashPIN(pin string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(pin), cost)
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Operator string `json:"operator"`
		PIN      string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(ac.PINHash, []byte(input.PIN)); err != nil {
		utils.ErrorLogger.Printf("Rejected operator login from %s", c.ClientIP())
		utils.RespondError(c, http.StatusUnauthorized, errInvalidPIN)
		return
	}

	operator := input.Operator
	if operator == "" {
		operator = "operator"
	}
	token, err := utils.GenerateToken(ac.Secret, operator, ac.TokenTTL)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Operator %s unlocked the POS", operator)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":      token,
		"expires_in": int(ac.TokenTTL.Seconds()),
	})
}
