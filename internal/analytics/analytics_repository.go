package analytics

import "gorm.io/gorm"

// GroundAnalytics is the per-ground rollup of booked-slot state. Grounds
// with no booked slots still appear, with zeroes.
type GroundAnalytics struct {
	VenueName     string `json:"venue_name"`
	GroundName    string `json:"ground_name"`
	TotalBookings int    `json:"total_bookings"`
	TotalRevenue  int    `json:"total_revenue"`
}

// Dashboard summarizes an owner's whole catalog in one payload.
type Dashboard struct {
	TotalVenues  int64 `json:"total_venues"`
	TotalGrounds int64 `json:"total_grounds"`
	TotalSlots   int64 `json:"total_slots"`
	BookedSlots  int64 `json:"booked_slots"`
	TotalRevenue int64 `json:"total_revenue"`
}

// AnalyticsRepository derives counts and revenue from current slot state.
// Nothing is cached; every call recomputes.
type AnalyticsRepository interface {
	GroundStats(ownerID string) ([]GroundAnalytics, error)
	OwnerDashboard(ownerID string) (*Dashboard, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GroundStats(ownerID string) ([]GroundAnalytics, error) {
	stats := []GroundAnalytics{}
	err := r.db.Raw(`
		SELECT
		  venues.name  AS venue_name,
		  grounds.name AS ground_name,
		  COUNT(slots.id) FILTER (WHERE slots.is_booked)                   AS total_bookings,
		  COALESCE(SUM(slots.price) FILTER (WHERE slots.is_booked), 0)     AS total_revenue
		FROM grounds
		JOIN venues ON venues.id = grounds.venue_id
		LEFT JOIN slots ON slots.ground_id = grounds.id
		WHERE venues.owner_id = ?
		GROUP BY venues.id, venues.name, grounds.id, grounds.name
		ORDER BY venues.name, grounds.name`, ownerID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *analyticsRepository) OwnerDashboard(ownerID string) (*Dashboard, error) {
	d := &Dashboard{}

	// Owners without venues get an all-zero dashboard without touching the
	// dependent tables.
	err := r.db.Table("venues").Where("owner_id = ?", ownerID).Count(&d.TotalVenues).Error
	if err != nil {
		return nil, err
	}
	if d.TotalVenues == 0 {
		return d, nil
	}

	err = r.db.Raw(`
		SELECT
		  COUNT(DISTINCT grounds.id)                                       AS total_grounds,
		  COUNT(slots.id)                                                  AS total_slots,
		  COUNT(slots.id) FILTER (WHERE slots.is_booked)                   AS booked_slots,
		  COALESCE(SUM(slots.price) FILTER (WHERE slots.is_booked), 0)     AS total_revenue
		FROM venues
		LEFT JOIN grounds ON grounds.venue_id = venues.id
		LEFT JOIN slots ON slots.ground_id = grounds.id
		WHERE venues.owner_id = ?`, ownerID).
		Scan(d).Error
	if err != nil {
		return nil, err
	}
	return d, nil
}
