package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// ContextOperator adalah key gin context untuk nama operator dari token.
const ContextOperator = "operator"

// AuthMiddleware memeriksa Bearer token operator. Untuk WebSocket, token boleh
// dikirim lewat query ?token= karena browser tidak bisa set header.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if header := c.GetHeader("Authorization"); header != "" {
			if !strings.HasPrefix(header, "Bearer ") {
				utils.AbortWithError(c, http.StatusUnauthorized, errors.New("invalid authorization format"))
				return
			}
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}

		if tokenString == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, errors.New("authorization token missing"))
			return
		}

		claims, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, err)
			return
		}

		c.Set(ContextOperator, claims.Operator)
		c.Next()
	}
}
