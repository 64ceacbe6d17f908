package booking

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/RohanKadam-7/boxgames/internal/common"
	"github.com/RohanKadam-7/boxgames/internal/venue"
)

type BookingRepository interface {
	// Reserve books a free slot for the user. Exactly one of any number of
	// concurrent Reserve calls on the same slot succeeds; the rest get
	// ErrSlotAlreadyBooked.
	Reserve(userID, slotID string) (*Booking, error)
	// Cancel removes the caller's booking and frees its slot. A booking that
	// does not exist and a booking owned by someone else are the same
	// ErrNotFound.
	Cancel(userID, bookingID string, now time.Time) error
	ListByUser(userID string) ([]BookingDetails, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Reserve(userID, slotID string) (*Booking, error) {
	b := &Booking{
		UserID:   userID,
		SlotID:   slotID,
		BookedAt: time.Now().UTC(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var slot venue.Slot
		if err := tx.First(&slot, "id = ?", slotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound
			}
			return err
		}
		if slot.IsBooked {
			return common.ErrSlotAlreadyBooked
		}

		// The conditional update is the atomicity gate: of two transactions
		// racing on the same free slot, only one can flip is_booked.
		res := tx.Model(&venue.Slot{}).
			Where("id = ? AND is_booked = ?", slotID, false).
			Update("is_booked", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrSlotAlreadyBooked
		}

		return tx.Create(b).Error
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Cancel(userID, bookingID string, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var b Booking
		err := tx.First(&b, "id = ? AND user_id = ?", bookingID, userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound
			}
			return err
		}

		// The window only applies while the slot still exists; a booking
		// orphaned by slot deletion can always be cancelled.
		var slot venue.Slot
		err = tx.First(&slot, "id = ?", b.SlotID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			ok, err := CancellableAt(slot.SlotDate, slot.StartTime, now)
			if err != nil {
				return err
			}
			if !ok {
				return common.ErrCancellationWindow
			}
		}

		if err := tx.Delete(&Booking{}, "id = ?", b.ID).Error; err != nil {
			return err
		}
		return tx.Model(&venue.Slot{}).
			Where("id = ?", b.SlotID).
			Update("is_booked", false).Error
	})
}

func (r *bookingRepository) ListByUser(userID string) ([]BookingDetails, error) {
	details := []BookingDetails{}
	err := r.db.Table("bookings").
		Select(`bookings.id, bookings.user_id, bookings.slot_id, bookings.booked_at,
			venues.name AS venue_name, grounds.name AS ground_name,
			slots.slot_date, slots.start_time, slots.end_time, slots.price`).
		Joins("LEFT JOIN slots ON slots.id = bookings.slot_id").
		Joins("LEFT JOIN grounds ON grounds.id = slots.ground_id").
		Joins("LEFT JOIN venues ON venues.id = grounds.venue_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.booked_at desc").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
