// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Kind classifies a cached listing.
type Kind string

const (
	KindPG    Kind = "PG"    // paying-guest / room-like accommodation
	KindMess  Kind = "mess"  // meal-service listing
	KindOther Kind = "other" // any other listing type
)

// Availability describes how full a listing currently is.
type Availability string

const (
	AvailabilityOpen    Availability = "open"
	AvailabilityLimited Availability = "limited"
	AvailabilityFull    Availability = "full"
)

// Amenities is the set of boolean capabilities a listing advertises.
type Amenities struct {
	WiFi      bool `json:"wifi"`
	StudyDesk bool `json:"study_desk"`
	Meals     bool `json:"meals"`
	Laundry   bool `json:"laundry"`
	Gym       bool `json:"gym"`
	Parking   bool `json:"parking"`
	AC        bool `json:"ac"`
	Attached  bool `json:"attached_bathroom"`
}

// Location is the cached record for an accommodation or listing.
// Records are ingested from the remote source (or saved manually), replaced
// whole on re-ingestion, and evicted by age unless bookmarked.
type Location struct {
	ID               string       `json:"id"`                // Remote-assigned stable identifier.
	Name             string       `json:"name"`              // Display name of the listing.
	Kind             Kind         `json:"kind"`              // Listing type (PG, mess, other).
	Latitude         float64      `json:"latitude"`          // Geographic latitude, must lie within the service region.
	Longitude        float64      `json:"longitude"`         // Geographic longitude, must lie within the service region.
	PriceMonthly     *float64     `json:"price_monthly"`     // Monthly price; nil when the listing has no price.
	Rating           float64      `json:"rating"`            // Average rating in [0, 5]; meaningless when RatingCount is 0.
	RatingCount      int          `json:"rating_count"`      // Number of ratings backing Rating.
	GenderPreference string       `json:"gender_preference"` // "", "Any", or a specific preference.
	Amenities        Amenities    `json:"amenities"`         // Advertised capabilities.
	Availability     Availability `json:"availability"`      // Current occupancy state.
	Verified         bool         `json:"verified"`          // Listing has been verified by the operator.
	Featured         bool         `json:"featured"`          // Listing is promoted.
	Bookmarked       bool         `json:"bookmarked"`        // User bookmark; exempts the record from expiry eviction.
	CachedAt         time.Time    `json:"cached_at"`         // When this copy entered the local store.
	UpdatedAt        time.Time    `json:"updated_at"`        // Last mutation of this copy.
}

// HasRating reports whether Rating carries signal for ranking.
func (l *Location) HasRating() bool {
	return l.RatingCount > 0
}

// EffectiveRating is the rating used for ordering. Unrated listings sort
// below every rated one.
func (l *Location) EffectiveRating() float64 {
	if !l.HasRating() {
		return -1
	}

	return l.Rating
}
