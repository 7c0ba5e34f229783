package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-pos/hub"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// originChecker hanya menerima origin yang sama dengan CORS_ORIGIN. Request
// tanpa header Origin (bukan dari browser) tetap diterima.
func originChecker(allowed string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowed == "*" || origin == allowed {
			return true
		}
		utils.ErrorLogger.Printf("Rejected display websocket from origin %q", origin)
		return false
	}
}

// DisplayHandler -> endpoint WebSocket untuk layar yang ingin update real-time
func DisplayHandler(h *hub.Hub, allowedOrigin string) gin.HandlerFunc {
	upgrader := websocket.Upgrader{CheckOrigin: originChecker(allowedOrigin)}

	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		h.Register(ws)

		// Baca sampai client putus; pesan dari client diabaikan.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		h.Unregister(ws)
	}
}
