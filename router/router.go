package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/config"
	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/hub"
	"github.com/yeremiapane/restaurant-pos/middlewares"
	"github.com/yeremiapane/restaurant-pos/services"
)

// Deps adalah semua yang dibutuhkan router.
type Deps struct {
	Config  *config.Config
	Session *services.Session
	Hub     *hub.Hub
	// PINHash wajib diisi kalau Config.AuthEnabled().
	PINHash []byte
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(d.Config.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(d.Config.RateLimit, d.Config.RateWindow).RateLimit())

	tableCtrl := controllers.NewTableController(d.Session)
	menuCtrl := controllers.NewMenuController(d.Session.Catalog())
	historyCtrl := controllers.NewHistoryController(d.Session)
	sessionCtrl := controllers.NewSessionController(d.Session)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	pos := r.Group("/")
	if d.Config.AuthEnabled() {
		secret := []byte(d.Config.JWTSecret)
		authCtrl := controllers.NewAuthController(d.PINHash, secret, d.Config.TokenTTL)
		r.POST("/login", middlewares.NewStrictRateLimiter(), authCtrl.Login)
		pos.Use(middlewares.AuthMiddleware(secret))
	}

	// ----------------------------------------------------------------
	//                      POS ROUTES
	// ----------------------------------------------------------------
	// MENU
	pos.GET("/menu", menuCtrl.GetMenu)
	pos.GET("/menu/categories", menuCtrl.GetCategories)

	// SESSION / VIEW
	pos.GET("/session", sessionCtrl.GetSession)
	pos.POST("/session/view", sessionCtrl.Navigate)
	pos.POST("/session/category", sessionCtrl.SelectCategory)
	pos.POST("/session/lock", sessionCtrl.LockDetails)

	// TABLES
	pos.GET("/tables", tableCtrl.GetAllTables)
	pos.GET("/tables/:table_number", tableCtrl.GetTable)
	pos.POST("/tables/:table_number/select", tableCtrl.SelectTable)
	pos.PATCH("/tables/:table_number", tableCtrl.UpdateTable)
	pos.DELETE("/tables/:table_number", tableCtrl.ResetTable)
	pos.POST("/tables/:table_number/items", tableCtrl.AddItem)
	pos.PATCH("/tables/:table_number/items/:item_id", tableCtrl.UpdateItemQuantity)
	pos.POST("/tables/:table_number/items/:item_id/increment", tableCtrl.IncrementItem)
	pos.POST("/tables/:table_number/items/:item_id/decrement", tableCtrl.DecrementItem)
	pos.GET("/tables/:table_number/bill", tableCtrl.GetBill)
	pos.POST("/tables/:table_number/confirm", tableCtrl.ConfirmOrder)

	// HISTORY
	pos.GET("/history", historyCtrl.GetHistory)
	pos.GET("/history/:id", historyCtrl.GetHistoryDetail)
	pos.DELETE("/history/selection", historyCtrl.CloseDetails)

	// WebSocket untuk layar
	pos.GET("/ws", controllers.DisplayHandler(d.Hub, d.Config.CORSOrigin))

	return r
}
