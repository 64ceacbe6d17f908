package booking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cancellationWindow is how long before a slot's start cancellation closes.
const cancellationWindow = time.Hour

// Booking ties a player (by email) to a slot. It is deleted, not archived,
// on cancellation; a slot has at most one live booking.
type Booking struct {
	ID       string    `gorm:"primaryKey" json:"id"`
	UserID   string    `gorm:"index;not null" json:"user_id"`
	SlotID   string    `gorm:"index;not null" json:"slot_id"`
	BookedAt time.Time `json:"booked_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BookingDetails is a booking enriched with display fields joined from its
// slot, ground and venue. The enrichment is best effort: if an ancestor has
// been deleted the pointers stay nil.
type BookingDetails struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SlotID     string    `json:"slot_id"`
	BookedAt   time.Time `json:"booked_at"`
	VenueName  *string   `json:"venue_name,omitempty"`
	GroundName *string   `json:"ground_name,omitempty"`
	SlotDate   *string   `json:"slot_date,omitempty"`
	StartTime  *string   `json:"start_time,omitempty"`
	EndTime    *string   `json:"end_time,omitempty"`
	Price      *int      `json:"price,omitempty"`
}

type BookingInput struct {
	SlotID string `json:"slot_id" binding:"required"`
}

// SlotStart combines a slot's date and start time into a UTC timestamp.
func SlotStart(slotDate, startTime string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", slotDate+" "+startTime, time.UTC)
}

// CancellableAt reports whether a booking for the given slot may still be
// cancelled at instant now. The boundary is exclusive: exactly one hour
// before the start is already too late.
func CancellableAt(slotDate, startTime string, now time.Time) (bool, error) {
	start, err := SlotStart(slotDate, startTime)
	if err != nil {
		return false, err
	}
	return now.Before(start.Add(-cancellationWindow)), nil
}
