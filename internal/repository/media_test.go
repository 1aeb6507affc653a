package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"dev404/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMediaListFilterAndOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []*models.MediaItem{
		{Type: models.MediaTypePlaylist, SectionKey: models.SectionMusic, Title: "Album B", Order: 2, CreatedAt: base},
		{Type: models.MediaTypePlaylist, SectionKey: models.SectionMusic, Title: "Album A", Order: 1, Featured: true, CreatedAt: base},
		// Same order as "Newer tie": creation time breaks the tie, newest first.
		{Type: models.MediaTypeVideo, SectionKey: models.SectionMusic, Title: "Older tie", Order: 3, CreatedAt: base},
		{Type: models.MediaTypeVideo, SectionKey: models.SectionMusic, Title: "Newer tie", Order: 3, CreatedAt: base.Add(time.Hour)},
		{Type: models.MediaTypeVideo, SectionKey: models.SectionVideos, Title: "Other section", Order: 0, Featured: true, CreatedAt: base},
	}
	for _, item := range items {
		require.NoError(t, repo.Create(ctx, item))
	}

	t.Run("SectionKeyFilter", func(t *testing.T) {
		got, err := repo.List(ctx, MediaFilter{SectionKey: models.SectionMusic})
		require.NoError(t, err)
		require.Len(t, got, 4)
		titles := make([]string, 0, len(got))
		for _, item := range got {
			assert.Equal(t, models.SectionMusic, item.SectionKey)
			titles = append(titles, item.Title)
		}
		assert.Equal(t, []string{"Album A", "Album B", "Newer tie", "Older tie"}, titles)
	})

	t.Run("FeaturedFilter", func(t *testing.T) {
		got, err := repo.List(ctx, MediaFilter{Featured: true})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, item := range got {
			assert.True(t, item.Featured)
		}
	})

	t.Run("NoFilter", func(t *testing.T) {
		got, err := repo.List(ctx, MediaFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})
}

func TestMediaGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMediaRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestMediaUpdateRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	item := &models.MediaItem{
		Type:       models.MediaTypeVideo,
		SectionKey: models.SectionVideos,
		Title:      "Heirloom Of Fire",
		YoutubeID:  "szuMdzyHrWk",
		Tags:       []string{"video"},
	}
	require.NoError(t, repo.Create(ctx, item))

	item.Featured = true
	item.Tags = []string{"featured", "video"}
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, got.Featured)
	assert.Equal(t, []string{"featured", "video"}, got.Tags)
}

func TestMediaDeleteTwice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	item := &models.MediaItem{Type: models.MediaTypeVideo, SectionKey: models.SectionVideos, Title: "Don't Blink"}
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.Delete(ctx, item.ID))

	err := repo.Delete(ctx, item.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
