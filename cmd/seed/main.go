// Command seed wipes the database and loads a demo catalog: two accounts,
// four venues with two grounds each, and a week of slots per ground.
package main

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/RohanKadam-7/boxgames/config"
	"github.com/RohanKadam-7/boxgames/internal/booking"
	"github.com/RohanKadam-7/boxgames/internal/logger"
	"github.com/RohanKadam-7/boxgames/internal/user"
	"github.com/RohanKadam-7/boxgames/internal/venue"
	"github.com/RohanKadam-7/boxgames/pkg/utils"
)

const seedPassword = "password123"

type venueSeed struct {
	Name     string
	Location string
	ImageURL string
	Grounds  []string
}

var venueSeeds = []venueSeed{
	{
		Name:     "Smash Arena",
		Location: "Andheri West, Mumbai",
		ImageURL: "https://images.unsplash.com/photo-1575361204480-aadea25e6e68",
		Grounds:  []string{"Turf 1", "Turf 2"},
	},
	{
		Name:     "PowerPlay Box Cricket",
		Location: "Bandra East, Mumbai",
		ImageURL: "https://images.unsplash.com/photo-1531415074968-036ba1b575da",
		Grounds:  []string{"Box A", "Box B"},
	},
	{
		Name:     "Urban Kicks Football",
		Location: "Lower Parel, Mumbai",
		ImageURL: "https://images.unsplash.com/photo-1459865264687-595d652de67e",
		Grounds:  []string{"Pitch 1", "Pitch 2"},
	},
	{
		Name:     "The Sports Yard",
		Location: "Powai, Mumbai",
		ImageURL: "https://images.unsplash.com/photo-1556056504-5c7696c4c28d",
		Grounds:  []string{"Court 1", "Court 2"},
	},
}

// morning slots run 6-10 at 1000, evening slots 16-20 at 1500.
var slotBlocks = []struct {
	StartHours []int
	Price      int
}{
	{StartHours: []int{6, 7, 8, 9, 10}, Price: 1000},
	{StartHours: []int{16, 17, 18, 19, 20}, Price: 1500},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	logger.Init(cfg.Log.Level, "text")

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer config.CloseDB(db)

	if err := db.AutoMigrate(
		&user.User{},
		&venue.Venue{},
		&venue.Ground{},
		&venue.Slot{},
		&booking.Booking{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seed(db); err != nil {
		logger.Fatal("Seeding failed", "error", err)
	}
	logger.Info("Seeding complete",
		"owner", "owner@boxgames.com",
		"player", "player@boxgames.com",
		"password", seedPassword,
	)
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Child tables first so foreign rows never dangle mid-wipe.
		for _, table := range []string{"bookings", "slots", "grounds", "venues", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("wiping %s: %w", table, err)
			}
		}

		hash, err := utils.HashPassword(seedPassword)
		if err != nil {
			return err
		}

		owner := &user.User{
			Username:     "boxowner",
			Email:        "owner@boxgames.com",
			PasswordHash: hash,
			Role:         user.RoleOwner,
		}
		player := &user.User{
			Username:     "boxplayer",
			Email:        "player@boxgames.com",
			PasswordHash: hash,
			Role:         user.RolePlayer,
		}
		if err := tx.Create(owner).Error; err != nil {
			return err
		}
		if err := tx.Create(player).Error; err != nil {
			return err
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)

		for _, vs := range venueSeeds {
			v := &venue.Venue{
				Name:     vs.Name,
				Location: vs.Location,
				ImageURL: vs.ImageURL,
				OwnerID:  owner.Email,
			}
			if err := tx.Create(v).Error; err != nil {
				return err
			}

			for _, groundName := range vs.Grounds {
				g := &venue.Ground{Name: groundName, VenueID: v.ID}
				if err := tx.Create(g).Error; err != nil {
					return err
				}

				for day := 0; day < 7; day++ {
					slotDate := today.AddDate(0, 0, day).Format("2006-01-02")
					for _, block := range slotBlocks {
						for _, hour := range block.StartHours {
							s := &venue.Slot{
								GroundID:  g.ID,
								SlotDate:  slotDate,
								StartTime: fmt.Sprintf("%02d:00", hour),
								EndTime:   fmt.Sprintf("%02d:00", hour+1),
								Price:     block.Price,
							}
							if err := tx.Create(s).Error; err != nil {
								return err
							}
						}
					}
				}
			}
		}
		return nil
	})
}
