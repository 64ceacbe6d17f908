package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RohanKadam-7/boxgames/config"
	"github.com/RohanKadam-7/boxgames/internal/middleware"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	repo := NewUserRepository(db)
	controller := NewAuthController(repo, cfg)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", controller.Register)
		authPublic.POST("/login", controller.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, repo))
	{
		authProtected.GET("/me", controller.Me)
	}
}
