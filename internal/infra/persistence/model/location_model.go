package model

import (
	"time"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID               string   `gorm:"type:varchar(64);primaryKey"`
	Name             string   `gorm:"type:varchar(255);not null"`
	Kind             string   `gorm:"type:varchar(32);not null;index:idx_locations_on_kind"`
	Latitude         float64  `gorm:"type:decimal(10,8);not null;index:idx_locations_on_coords"`
	Longitude        float64  `gorm:"type:decimal(11,8);not null;index:idx_locations_on_coords"`
	PriceMonthly     *float64 `gorm:"type:decimal(12,2)"`
	Rating           float64  `gorm:"not null;default:0"`
	RatingCount      int      `gorm:"not null;default:0"`
	GenderPreference string   `gorm:"type:varchar(32);not null;default:''"`
	WiFi             bool     `gorm:"not null;default:false"`
	StudyDesk        bool     `gorm:"not null;default:false"`
	Meals            bool     `gorm:"not null;default:false"`
	Laundry          bool     `gorm:"not null;default:false"`
	Gym              bool     `gorm:"not null;default:false"`
	Parking          bool     `gorm:"not null;default:false"`
	AC               bool     `gorm:"not null;default:false"`
	Attached         bool     `gorm:"not null;default:false"`
	Availability     string   `gorm:"type:varchar(16);not null"`
	Verified         bool     `gorm:"not null;default:false"`
	Featured         bool     `gorm:"not null;default:false"`
	Bookmarked       bool     `gorm:"not null;default:false;index:idx_locations_on_bookmarked"`
	CachedAt         time.Time `gorm:"not null;index:idx_locations_on_cached_at"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
