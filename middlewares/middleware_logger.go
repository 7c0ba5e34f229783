package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-pos/utils"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := utils.InfoLogger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"status":  status,
			"latency": latency,
			"client":  c.ClientIP(),
		})
		if status >= 500 {
			entry.Warn(path)
			return
		}
		entry.Info(path)
	}
}
