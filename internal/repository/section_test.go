package repository

import (
	"context"
	"errors"
	"testing"

	"dev404/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSectionCreateAndGetByKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSectionRepository(db)
	ctx := context.Background()

	section := &models.Section{
		Key:          models.SectionMusic,
		Title:        "Music",
		Description:  "Soundtrack for the system breach.",
		Status:       models.SectionStatusLive,
		HeroText:     "Signal detected.",
		ThemeVariant: "default",
		Icon:         "♪",
	}
	require.NoError(t, repo.Create(ctx, section))

	got, err := repo.GetByKey(ctx, models.SectionMusic)
	require.NoError(t, err)
	assert.Equal(t, section.Title, got.Title)
	assert.Equal(t, section.Description, got.Description)
	assert.Equal(t, models.SectionStatusLive, got.Status)
	assert.Equal(t, section.HeroText, got.HeroText)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSectionDuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSectionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Section{Key: models.SectionComics, Title: "Comics"}))

	err := repo.Create(ctx, &models.Section{Key: models.SectionComics, Title: "Comics again"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// The store must still contain exactly one document for the key.
	var count int64
	require.NoError(t, db.Model(&models.Section{}).Where("key = ?", models.SectionComics).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSectionGetByKeyMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSectionRepository(db)

	_, err := repo.GetByKey(context.Background(), models.SectionMovies)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// A failed lookup must not have inserted anything.
	var count int64
	require.NoError(t, db.Model(&models.Section{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSectionUpdateRefreshesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSectionRepository(db)
	ctx := context.Background()

	section := &models.Section{Key: models.SectionVideos, Title: "Videos"}
	require.NoError(t, repo.Create(ctx, section))
	created := section.UpdatedAt

	section.Title = "Videos v2"
	require.NoError(t, repo.Update(ctx, section))

	got, err := repo.GetByKey(ctx, models.SectionVideos)
	require.NoError(t, err)
	assert.Equal(t, "Videos v2", got.Title)
	assert.False(t, got.UpdatedAt.Before(created))
}

func TestSectionListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSectionRepository(db)
	ctx := context.Background()

	for _, key := range []models.SectionKey{models.SectionMusic, models.SectionVideos, models.SectionComics} {
		require.NoError(t, repo.Create(ctx, &models.Section{Key: key, Title: string(key)}))
	}

	sections, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 3)
	for i := 1; i < len(sections); i++ {
		assert.False(t, sections[i-1].CreatedAt.Before(sections[i].CreatedAt))
	}
}
