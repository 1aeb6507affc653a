// Package models contains data structures for the application's domain models.
package models

import "time"

// SectionKey identifies a content category. The set is closed; adding a
// category requires a code change, not just a new row.
type SectionKey string

// Known section keys.
const (
	SectionMusic  SectionKey = "music"
	SectionVideos SectionKey = "videos"
	SectionComics SectionKey = "comics"
	SectionMovies SectionKey = "movies"
	SectionSeries SectionKey = "series"
)

// Valid reports whether k is one of the known section keys.
func (k SectionKey) Valid() bool {
	switch k {
	case SectionMusic, SectionVideos, SectionComics, SectionMovies, SectionSeries:
		return true
	}
	return false
}

// SectionStatus describes whether a section is visible to visitors yet.
type SectionStatus string

const (
	SectionStatusLive       SectionStatus = "live"
	SectionStatusComingSoon SectionStatus = "comingSoon"
)

// Valid reports whether s is a known section status.
func (s SectionStatus) Valid() bool {
	return s == SectionStatusLive || s == SectionStatusComingSoon
}

// Section represents a top-level content category (music, videos, ...).
// Key is the human-readable identifier used in URLs; at most one section
// exists per key.
type Section struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Key          SectionKey    `gorm:"uniqueIndex;not null" json:"key"`
	Title        string        `gorm:"not null" json:"title"`
	Description  string        `json:"description"`
	Status       SectionStatus `gorm:"default:comingSoon" json:"status"`
	HeroText     string        `json:"heroText"`
	ThemeVariant string        `gorm:"default:default" json:"themeVariant"`
	Icon         string        `json:"icon"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
