package analytics

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RohanKadam-7/boxgames/config"
	"github.com/RohanKadam-7/boxgames/internal/auth"
	"github.com/RohanKadam-7/boxgames/internal/middleware"
	"github.com/RohanKadam-7/boxgames/internal/user"
)

func RegisterAnalyticsRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	repo := NewAnalyticsRepository(db)
	controller := NewAnalyticsController(repo)
	users := auth.NewUserRepository(db)

	owner := router.Group("/owner")
	owner.Use(middleware.AuthMiddleware(cfg.JWT.Secret, users))
	owner.Use(middleware.RequireRoles(user.OwnerRoles...))
	{
		owner.GET("/analytics", controller.GetAnalytics)
		owner.GET("/dashboard", controller.GetDashboard)
	}
}
