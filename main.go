package main

import (
	"github.com/RohanKadam-7/boxgames/config"
	_ "github.com/RohanKadam-7/boxgames/docs"
	"github.com/RohanKadam-7/boxgames/internal/booking"
	"github.com/RohanKadam-7/boxgames/internal/logger"
	"github.com/RohanKadam-7/boxgames/internal/user"
	"github.com/RohanKadam-7/boxgames/internal/venue"
	"github.com/RohanKadam-7/boxgames/routes"
)

// @title BoxGames Booking API
// @version 1.0
// @description Venue, ground and slot booking backend.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer config.CloseDB(db)

	if err := db.AutoMigrate(
		&user.User{},
		&venue.Venue{},
		&venue.Ground{},
		&venue.Slot{},
		&booking.Booking{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	r := routes.SetupRoutes(db, cfg)

	logger.Info("Starting server", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}
