package models

import "time"

// Interest records which upcoming content a visitor signed up for.
type Interest string

const (
	InterestComics  Interest = "comics"
	InterestMovies  Interest = "movies"
	InterestSeries  Interest = "series"
	InterestGeneral Interest = "general"
)

// Valid reports whether i is a known interest.
func (i Interest) Valid() bool {
	switch i {
	case InterestComics, InterestMovies, InterestSeries, InterestGeneral:
		return true
	}
	return false
}

// Signup is an email capture record. Email is stored lowercased and the
// unique index on it is the actual duplicate guard; concurrent submissions
// for the same address race down to a single winner at the store.
type Signup struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	Interest         Interest  `gorm:"default:general" json:"interest"`
	VerificationCode string    `json:"verificationCode,omitempty"`
	Verified         bool      `gorm:"default:false" json:"verified"`
	CreatedAt        time.Time `json:"createdAt"`
}
