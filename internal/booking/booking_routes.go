package booking

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RohanKadam-7/boxgames/config"
	"github.com/RohanKadam-7/boxgames/internal/auth"
	"github.com/RohanKadam-7/boxgames/internal/middleware"
)

func RegisterBookingRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	repo := NewBookingRepository(db)
	controller := NewBookingController(repo)
	users := auth.NewUserRepository(db)

	bookings := router.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware(cfg.JWT.Secret, users))
	{
		bookings.POST("", controller.CreateBooking)
		bookings.GET("/my", controller.GetMyBookings)
		bookings.DELETE("/:booking_id", controller.CancelBooking)
	}
}
