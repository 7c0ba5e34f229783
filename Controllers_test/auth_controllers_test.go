package Controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/utils"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("controller-test-secret")

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	utils.InitLogger("error")

	hash, err := controllers.HashPIN("2468", bcrypt.MinCost)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	authCtrl := controllers.NewAuthController(hash, testSecret, time.Hour)
	router.POST("/login", authCtrl.Login)
	return router
}

func TestLoginSuccess(t *testing.T) {
	router := setupAuthRouter(t)

	w, resp := performRequest(t, router, http.MethodPost, "/login", gin.H{"operator": "asha", "pin": "2468"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", resp.Message)

	var out struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expires_in"`
	}
	decodeData(t, resp, &out)
	assert.Equal(t, 3600, out.ExpiresIn)

	claims, err := utils.ParseToken(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "asha", claims.Operator)
}

func TestLoginWrongPIN(t *testing.T) {
	router := setupAuthRouter(t)

	w, resp := performRequest(t, router, http.MethodPost, "/login", gin.H{"pin": "0000"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid operator PIN", resp.Message)

	w, _ = performRequest(t, router, http.MethodPost, "/login", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
