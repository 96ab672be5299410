package model

import (
	"time"
)

// RouteModel is the GORM-specific struct for the 'routes' table. The rounded
// endpoint coordinates plus the profile form the composite primary key.
type RouteModel struct {
	OriginLat       float64 `gorm:"type:decimal(10,8);primaryKey;autoIncrement:false"`
	OriginLng       float64 `gorm:"type:decimal(11,8);primaryKey;autoIncrement:false"`
	DestinationLat  float64 `gorm:"type:decimal(10,8);primaryKey;autoIncrement:false"`
	DestinationLng  float64 `gorm:"type:decimal(11,8);primaryKey;autoIncrement:false"`
	Profile         string  `gorm:"type:varchar(32);primaryKey"`
	DurationSeconds int     `gorm:"not null"`
	DistanceMeters  float64 `gorm:"not null"`
	PeakDuration    *int
	OffPeakDuration *int
	Congestion      string    `gorm:"type:varchar(16);not null;default:'unknown'"`
	HitCount        int       `gorm:"not null;default:0;index:idx_routes_on_popularity,priority:1"`
	CachedAt        time.Time `gorm:"not null"`
	LastAccessedAt  time.Time `gorm:"not null;index:idx_routes_on_popularity,priority:2"`
	ExpiresAt       time.Time `gorm:"not null;index:idx_routes_on_expires_at"`

	PassesNearTransitHub bool   `gorm:"not null;default:false"`
	PassesNearPOI        bool   `gorm:"not null;default:false"`
	AssociatedLocationID string `gorm:"type:varchar(64);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}
