package venue

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Venue is owned by exactly one user; OwnerID holds the owner's email.
type Venue struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `gorm:"not null" json:"location"`
	ImageURL string `json:"image_url"`
	OwnerID  string `gorm:"index;not null" json:"owner_id"`
}

func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

type Ground struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	VenueID string `gorm:"index;not null" json:"venue_id"`
}

func (g *Ground) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// Slot is a bookable interval on a ground. SlotDate is "2006-01-02" and the
// times are "15:04"; IsBooked is the only field touched concurrently.
type Slot struct {
	ID        string `gorm:"primaryKey" json:"id"`
	GroundID  string `gorm:"index;not null" json:"ground_id"`
	SlotDate  string `gorm:"not null" json:"slot_date"`
	StartTime string `gorm:"not null" json:"start_time"`
	EndTime   string `gorm:"not null" json:"end_time"`
	Price     int    `json:"price"`
	IsBooked  bool   `gorm:"not null;default:false" json:"is_booked"`
}

func (s *Slot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type VenueInput struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	ImageURL string `json:"image_url"`
}

type GroundInput struct {
	Name    string `json:"name" binding:"required"`
	VenueID string `json:"venue_id" binding:"required"`
}

type SlotInput struct {
	GroundID  string `json:"ground_id" binding:"required"`
	SlotDate  string `json:"slot_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Price     int    `json:"price" binding:"min=0"`
}
