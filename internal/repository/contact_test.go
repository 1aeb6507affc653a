package repository

import (
	"context"
	"testing"

	"dev404/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "First message",
	}))
	// No dedup: the same payload inserts again.
	require.NoError(t, repo.Create(ctx, &models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "First message",
	}))

	msgs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}
