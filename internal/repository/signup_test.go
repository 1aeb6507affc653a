package repository

import (
	"context"
	"errors"
	"testing"

	"dev404/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCreateNormalizesEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSignupRepository(db)
	ctx := context.Background()

	signup := &models.Signup{Email: "  Fan@Example.COM ", Interest: models.InterestComics}
	require.NoError(t, repo.Create(ctx, signup))
	assert.Equal(t, "fan@example.com", signup.Email)
}

func TestSignupCaseInsensitiveUniqueness(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSignupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Signup{Email: "A@B.com", Interest: models.InterestGeneral}))

	err := repo.Create(ctx, &models.Signup{Email: "a@b.com", Interest: models.InterestMovies})
	assert.True(t, errors.Is(err, ErrDuplicateEmail))

	var count int64
	require.NoError(t, db.Model(&models.Signup{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSignupListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSignupRepository(db)
	ctx := context.Background()

	for _, email := range []string{"one@example.com", "two@example.com", "three@example.com"} {
		require.NoError(t, repo.Create(ctx, &models.Signup{Email: email, Interest: models.InterestGeneral}))
	}

	signups, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, signups, 3)
	for i := 1; i < len(signups); i++ {
		assert.False(t, signups[i-1].CreatedAt.Before(signups[i].CreatedAt))
	}
}
