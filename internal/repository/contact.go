package repository

import (
	"context"

	"dev404/internal/models"

	"gorm.io/gorm"
)

// ContactRepository defines the interface for contact message data operations
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context) ([]*models.ContactMessage, error)
}

// contactRepository implements ContactRepository
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *contactRepository) List(ctx context.Context) ([]*models.ContactMessage, error) {
	var msgs []*models.ContactMessage
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&msgs).Error
	return msgs, err
}
