package models

import "time"

// MediaType distinguishes single videos from playlists.
type MediaType string

const (
	MediaTypeVideo    MediaType = "youtube_video"
	MediaTypePlaylist MediaType = "youtube_playlist"
)

// Valid reports whether t is a known media type.
func (t MediaType) Valid() bool {
	return t == MediaTypeVideo || t == MediaTypePlaylist
}

// MediaItem is a single playable unit belonging to a section. SectionKey is
// referential by convention only: deleting a section does not cascade, and a
// dangling key is permitted.
type MediaItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Type        MediaType  `gorm:"not null" json:"type"`
	SectionKey  SectionKey `gorm:"not null;index" json:"sectionKey"`
	Title       string     `gorm:"not null" json:"title"`
	YoutubeID   string     `json:"youtubeId,omitempty"`
	PlaylistID  string     `json:"playlistId,omitempty"`
	Description string     `json:"description"`
	Tags        []string   `gorm:"serializer:json" json:"tags"`
	Featured    bool       `gorm:"default:false" json:"featured"`
	// "order" is reserved in SQL; the column is sort_order but the wire
	// contract keeps the original field name.
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
