package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RohanKadam-7/boxgames/internal/common"
	"github.com/RohanKadam-7/boxgames/internal/metrics"
	"github.com/RohanKadam-7/boxgames/pkg/utils"
)

type BookingController struct {
	repo BookingRepository
}

func NewBookingController(repo BookingRepository) *BookingController {
	return &BookingController{repo: repo}
}

// CreateBooking godoc
// @Summary Reserve a slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body BookingInput true "Slot to reserve"
// @Success 201 {object} Booking
// @Failure 400 {object} utils.ErrorResponse "Slot already booked"
// @Failure 404 {object} utils.ErrorResponse "Slot does not exist"
// @Router /bookings [post]
// @Security Bearer
func (bc *BookingController) CreateBooking(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(c, err.Error())
		return
	}

	b, err := bc.repo.Reserve(principal.Email, input.SlotID)
	if err != nil {
		if errors.Is(err, common.ErrSlotAlreadyBooked) {
			metrics.RecordBookingConflict()
		}
		utils.DomainErrorJSON(c, err)
		return
	}

	metrics.RecordBooking()
	c.JSON(http.StatusCreated, b)
}

// GetMyBookings godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} BookingDetails
// @Router /bookings/my [get]
// @Security Bearer
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := bc.repo.ListByUser(principal.Email)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Description Cancellation closes one hour before the slot starts
// @Tags bookings
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Inside the cancellation window"
// @Failure 404 {object} utils.ErrorResponse "Booking absent or not the caller's"
// @Router /bookings/{booking_id} [delete]
// @Security Bearer
func (bc *BookingController) CancelBooking(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err = bc.repo.Cancel(principal.Email, c.Param("booking_id"), time.Now().UTC())
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}

	metrics.RecordBookingCancellation()
	utils.SuccessJSON(c, http.StatusOK, "Booking cancelled successfully")
}
