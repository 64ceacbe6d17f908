package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/RohanKadam-7/boxgames/config"
	"github.com/RohanKadam-7/boxgames/internal/analytics"
	"github.com/RohanKadam-7/boxgames/internal/auth"
	"github.com/RohanKadam-7/boxgames/internal/booking"
	"github.com/RohanKadam-7/boxgames/internal/venue"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogging())
	r.Use(RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	corsConfig := cors.DefaultConfig()
	if len(cfg.App.CORSOrigins) == 1 && cfg.App.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.App.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg)
	venue.RegisterVenueRoutes(api, db, cfg)
	booking.RegisterBookingRoutes(api, db, cfg)
	analytics.RegisterAnalyticsRoutes(api, db, cfg)

	return r
}
