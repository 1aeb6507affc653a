// Package seed populates the database with the fixed catalog, plus optional
// demo data for development. Intended for one-time bootstrap, not the running
// service.
package seed

import (
	"fmt"
	"log"

	"dev404/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	ShouldClean  bool
	Demo         bool
	DemoSignups  int
	DemoMessages int
}

// Sections returns the fixed section catalog.
func Sections() []models.Section {
	return []models.Section{
		{
			Key:         models.SectionMusic,
			Title:       "Music",
			Description: "Soundtrack for the system breach.",
			Status:      models.SectionStatusLive,
			HeroText:    "♪ Signal detected in the frequencies.",
			Icon:        "♪",
		},
		{
			Key:         models.SectionVideos,
			Title:       "Videos",
			Description: "Footage recovered from the noise.",
			Status:      models.SectionStatusLive,
			HeroText:    "▶ Playback initiated.",
			Icon:        "▶",
		},
		{
			Key:         models.SectionComics,
			Title:       "Comics",
			Description: "Encrypted. Pending decryption.",
			Status:      models.SectionStatusComingSoon,
			HeroText:    "◊ The stories exist. They're just encrypted right now.",
			Icon:        "◊",
		},
		{
			Key:         models.SectionMovies,
			Title:       "Movies",
			Description: "Encrypted. Pending decryption.",
			Status:      models.SectionStatusComingSoon,
			HeroText:    "▬ Reality is being rewritten.",
			Icon:        "▬",
		},
		{
			Key:         models.SectionSeries,
			Title:       "Series",
			Description: "Encrypted. Pending decryption.",
			Status:      models.SectionStatusComingSoon,
			HeroText:    "∞ The narrative continues beyond the code.",
			Icon:        "∞",
		},
	}
}

// MediaItems returns the fixed media catalog.
func MediaItems() []models.MediaItem {
	return []models.MediaItem{
		{
			Type:        models.MediaTypePlaylist,
			SectionKey:  models.SectionMusic,
			Title:       "Hello, World!",
			PlaylistID:  "OLAK5uy_na3MhE_Q3ushYs7n20lXVeBEf09pY69qo",
			Description: "The first transmission. Initial contact established.",
			Tags:        []string{"featured", "album"},
			Featured:    true,
			Order:       1,
		},
		{
			Type:        models.MediaTypePlaylist,
			SectionKey:  models.SectionMusic,
			Title:       "BROKEN",
			PlaylistID:  "OLAK5uy_nXeKfg375hfgChn3aMNG9Kd49g1U8YL0g",
			Description: "Shattered frequencies. Fragmented signals.",
			Tags:        []string{"album"},
			Order:       2,
		},
		{
			Type:        models.MediaTypePlaylist,
			SectionKey:  models.SectionMusic,
			Title:       "Fractured Horizons",
			PlaylistID:  "OLAK5uy_mMAopvO3gpyJ5M143_JGK7WGzctI-vm2M",
			Description: "Reality breaking at the edges.",
			Tags:        []string{"album"},
			Order:       3,
		},
		{
			Type:        models.MediaTypePlaylist,
			SectionKey:  models.SectionMusic,
			Title:       "Movies Lies War",
			PlaylistID:  "OLAK5uy_lMK0hBiLJV0G1QpwIdeheOM78QL19TI4Y",
			Description: "The narrative unfolds. Truth detected.",
			Tags:        []string{"album"},
			Order:       4,
		},
		{
			Type:        models.MediaTypePlaylist,
			SectionKey:  models.SectionMusic,
			Title:       "Eviction Notice",
			PlaylistID:  "OLAK5uy_lMLAx0P1MstSztk7LLSNmQCwphlUyN6R0",
			Description: "The final transmission. System override complete.",
			Tags:        []string{"album"},
			Order:       5,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Heirloom Of Fire",
			YoutubeID:   "szuMdzyHrWk",
			Description: "Legacy burning bright.",
			Tags:        []string{"featured", "video"},
			Featured:    true,
			Order:       1,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Lucid Lies",
			YoutubeID:   "4mbQvgkJ53s",
			Description: "Dreams and deception.",
			Tags:        []string{"video"},
			Order:       2,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Don't Let Me Close My Eyes",
			YoutubeID:   "PTG5f5pc_tY",
			Description: "Stay awake. Stay alert.",
			Tags:        []string{"video"},
			Order:       3,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Breadcrumbs I The Static",
			YoutubeID:   "VX8orrpoGVc",
			Description: "Following the trail.",
			Tags:        []string{"video"},
			Order:       4,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "28;06:42:12",
			YoutubeID:   "nGgCw4msDG8",
			Description: "Time stamp. Code complete.",
			Tags:        []string{"video"},
			Order:       5,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Hello, World!",
			YoutubeID:   "00-_LcpNSWM",
			Description: "First transmission visual.",
			Tags:        []string{"video"},
			Order:       6,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Race Against Time",
			YoutubeID:   "VqVkf0COL1w",
			Description: "The clock is ticking.",
			Tags:        []string{"video"},
			Order:       7,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Part Through Time",
			YoutubeID:   "c7kxOS2wh9Q",
			Description: "Temporal displacement.",
			Tags:        []string{"video"},
			Order:       8,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Don't Blink",
			YoutubeID:   "9R3sYBrbsRY",
			Description: "You might miss it.",
			Tags:        []string{"video"},
			Order:       9,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Pull The Plug",
			YoutubeID:   "6uOrPmM0gBg",
			Description: "Disconnect. Unplug.",
			Tags:        []string{"video"},
			Order:       10,
		},
		{
			Type:        models.MediaTypeVideo,
			SectionKey:  models.SectionVideos,
			Title:       "Us vs. Them",
			YoutubeID:   "4w_WfXl_pbE",
			Description: "The line is drawn.",
			Tags:        []string{"video"},
			Order:       11,
		},
	}
}

// Seed populates the database with the fixed catalog
func Seed(db *gorm.DB, opts Options) error {
	log.Println("🌱 Starting database seeding...")

	if opts.ShouldClean {
		if err := clearCatalog(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	sections := Sections()
	if err := db.Create(&sections).Error; err != nil {
		return fmt.Errorf("failed to seed sections: %w", err)
	}
	log.Printf("✓ %d sections created", len(sections))

	items := MediaItems()
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed media items: %w", err)
	}
	log.Printf("✓ %d media items created", len(items))

	if opts.Demo {
		signups, msgs, err := SeedDemo(db, opts.DemoSignups, opts.DemoMessages)
		if err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		log.Printf("✓ %d demo signups, %d demo contact messages created", signups, msgs)
	}

	log.Println("✨ Seeding complete")
	return nil
}

func clearCatalog(db *gorm.DB) error {
	if err := db.Exec("DELETE FROM media_items").Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM sections").Error
}
