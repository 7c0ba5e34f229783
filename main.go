package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/config"
	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/hub"
	"github.com/yeremiapane/restaurant-pos/router"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel)
	for _, w := range cfg.Warnings {
		utils.ErrorLogger.Warn(w)
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.HistoryDSN)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open history database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if cfg.SeedHistory {
		if err := database.SeedHistory(db); err != nil {
			utils.ErrorLogger.Printf("Error seeding demo history: %v", err)
		}
	}

	catalog, err := services.LoadCatalog(cfg.MenuFile)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load menu: %v", err)
	}
	utils.InfoLogger.Printf("Menu loaded: %d items in %d categories", len(catalog.Items()), len(catalog.Categories()))

	displayHub := hub.New(utils.InfoLogger)
	session := services.NewSession(catalog, services.NewHistoryStore(db), services.Options{
		Publisher:       displayHub,
		Logger:          utils.InfoLogger,
		LegacyDetailTax: cfg.LegacyDetailTax,
	})

	deps := router.Deps{Config: cfg, Session: session, Hub: displayHub}
	if cfg.AuthEnabled() {
		deps.PINHash, err = controllers.HashPIN(cfg.OperatorPIN, bcrypt.DefaultCost)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to hash operator PIN: %v", err)
		}
		utils.InfoLogger.Println("Operator lock enabled")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.SetupRouter(deps),
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down, session state will be discarded")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Forced shutdown: %v", err)
	}
}
