package venue

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RohanKadam-7/boxgames/config"
	"github.com/RohanKadam-7/boxgames/internal/auth"
	"github.com/RohanKadam-7/boxgames/internal/middleware"
	"github.com/RohanKadam-7/boxgames/internal/user"
)

func RegisterVenueRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	repo := NewVenueRepository(db)
	controller := NewVenueController(repo)
	users := auth.NewUserRepository(db)

	// Public browsing
	router.GET("/venues", controller.GetVenues)
	router.GET("/venues/:venue_id", controller.GetVenue)
	router.GET("/venues/:venue_id/grounds", controller.GetVenueGrounds)
	router.GET("/grounds/:ground_id/slots", controller.GetGroundSlots)

	// Owner-scoped catalog management
	owner := router.Group("/owner")
	owner.Use(middleware.AuthMiddleware(cfg.JWT.Secret, users))
	owner.Use(middleware.RequireRoles(user.OwnerRoles...))
	{
		owner.POST("/venues", controller.CreateVenue)
		owner.GET("/venues", controller.GetOwnerVenues)
		owner.PUT("/venues/:venue_id", controller.UpdateVenue)
		owner.DELETE("/venues/:venue_id", controller.DeleteVenue)

		owner.POST("/grounds", controller.CreateGround)
		owner.GET("/grounds", controller.GetOwnerGrounds)
		owner.DELETE("/grounds/:ground_id", controller.DeleteGround)

		owner.POST("/slots", controller.CreateSlot)
		owner.GET("/slots", controller.GetOwnerSlots)
		owner.DELETE("/slots/:slot_id", controller.DeleteSlot)
	}
}
