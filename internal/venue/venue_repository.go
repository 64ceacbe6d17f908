package venue

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RohanKadam-7/boxgames/internal/common"
)

// browseLimit caps unfiltered public listings.
const browseLimit = 1000

// VenueRepository owns every venue/ground/slot read and write, including the
// ownership checks. The Slot→Ground→Venue→owner chain is resolved here, on
// every mutating call, so no two call sites can disagree about who owns what.
type VenueRepository interface {
	CreateVenue(v *Venue) error
	GetVenueByID(id string) (*Venue, error)
	ListVenues() ([]Venue, error)
	ListVenuesByOwner(ownerID string) ([]Venue, error)
	// UpdateVenue and DeleteVenue report ErrNotFound both for an absent venue
	// and for a venue owned by someone else.
	UpdateVenue(id, ownerID string, input VenueInput) (*Venue, error)
	DeleteVenue(id, ownerID string) error

	CreateGround(ownerID string, g *Ground) error
	ListGroundsByVenue(venueID string) ([]Ground, error)
	ListGroundsByOwner(ownerID string) ([]Ground, error)
	DeleteGround(id, ownerID string) error

	CreateSlot(ownerID string, s *Slot) error
	ListSlotsByGround(groundID, slotDate string) ([]Slot, error)
	ListSlotsByOwner(ownerID string) ([]Slot, error)
	DeleteSlot(id, ownerID string) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) CreateVenue(v *Venue) error {
	return r.db.Create(v).Error
}

func (r *venueRepository) GetVenueByID(id string) (*Venue, error) {
	var v Venue
	if err := r.db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *venueRepository) ListVenues() ([]Venue, error) {
	venues := []Venue{}
	if err := r.db.Limit(browseLimit).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) ListVenuesByOwner(ownerID string) ([]Venue, error) {
	venues := []Venue{}
	if err := r.db.Where("owner_id = ?", ownerID).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) UpdateVenue(id, ownerID string, input VenueInput) (*Venue, error) {
	res := r.db.Model(&Venue{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"name":      input.Name,
			"location":  input.Location,
			"image_url": input.ImageURL,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, common.ErrNotFound
	}
	return r.GetVenueByID(id)
}

func (r *venueRepository) DeleteVenue(id, ownerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&Venue{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrNotFound
		}

		// Cascade to grounds, slots and their bookings so enrichment joins
		// never see dangling children.
		if err := tx.Exec(`DELETE FROM bookings WHERE slot_id IN (
				SELECT id FROM slots WHERE ground_id IN (
					SELECT id FROM grounds WHERE venue_id = ?))`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM slots WHERE ground_id IN (
				SELECT id FROM grounds WHERE venue_id = ?)`, id).Error; err != nil {
			return err
		}
		return tx.Where("venue_id = ?", id).Delete(&Ground{}).Error
	})
}

// venueOwned reports whether the venue exists and belongs to ownerID.
func venueOwned(tx *gorm.DB, venueID, ownerID string) (bool, error) {
	var count int64
	err := tx.Model(&Venue{}).
		Where("id = ? AND owner_id = ?", venueID, ownerID).
		Count(&count).Error
	return count > 0, err
}

// groundOwned resolves a ground and verifies its venue's owner. An absent
// ground is ErrNotFound; a ground under someone else's venue is ErrForbidden.
func groundOwned(tx *gorm.DB, groundID, ownerID string) (*Ground, error) {
	var g Ground
	if err := tx.First(&g, "id = ?", groundID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	owned, err := venueOwned(tx, g.VenueID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, common.ErrForbidden
	}
	return &g, nil
}

func (r *venueRepository) CreateGround(ownerID string, g *Ground) error {
	owned, err := venueOwned(r.db, g.VenueID, ownerID)
	if err != nil {
		return err
	}
	if !owned {
		// Creating under a foreign venue must not confirm the venue exists.
		return common.ErrNotFound
	}
	return r.db.Create(g).Error
}

func (r *venueRepository) ListGroundsByVenue(venueID string) ([]Ground, error) {
	grounds := []Ground{}
	if err := r.db.Where("venue_id = ?", venueID).Find(&grounds).Error; err != nil {
		return nil, err
	}
	return grounds, nil
}

func (r *venueRepository) ListGroundsByOwner(ownerID string) ([]Ground, error) {
	grounds := []Ground{}
	err := r.db.
		Joins("JOIN venues ON venues.id = grounds.venue_id").
		Where("venues.owner_id = ?", ownerID).
		Find(&grounds).Error
	if err != nil {
		return nil, err
	}
	return grounds, nil
}

func (r *venueRepository) DeleteGround(id, ownerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		g, err := groundOwned(tx, id, ownerID)
		if err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM bookings WHERE slot_id IN (
				SELECT id FROM slots WHERE ground_id = ?)`, g.ID).Error; err != nil {
			return err
		}
		if err := tx.Where("ground_id = ?", g.ID).Delete(&Slot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Ground{}, "id = ?", g.ID).Error
	})
}

func (r *venueRepository) CreateSlot(ownerID string, s *Slot) error {
	if _, err := groundOwned(r.db, s.GroundID, ownerID); err != nil {
		return err
	}
	s.IsBooked = false
	return r.db.Create(s).Error
}

func (r *venueRepository) ListSlotsByGround(groundID, slotDate string) ([]Slot, error) {
	slots := []Slot{}
	query := r.db.Where("ground_id = ?", groundID)
	if slotDate != "" {
		query = query.Where("slot_date = ?", slotDate)
	}
	if err := query.Order("slot_date asc, start_time asc").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *venueRepository) ListSlotsByOwner(ownerID string) ([]Slot, error) {
	slots := []Slot{}
	err := r.db.
		Joins("JOIN grounds ON grounds.id = slots.ground_id").
		Joins("JOIN venues ON venues.id = grounds.venue_id").
		Where("venues.owner_id = ?", ownerID).
		Order("slots.slot_date asc, slots.start_time asc").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *venueRepository) DeleteSlot(id, ownerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var s Slot
		if err := tx.First(&s, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound
			}
			return err
		}
		if _, err := groundOwned(tx, s.GroundID, ownerID); err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM bookings WHERE slot_id = ?`, s.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&Slot{}, "id = ?", s.ID).Error
	})
}
