// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"dev404/internal/models"

	"gorm.io/gorm"
)

// SectionRepository defines the interface for section data operations
type SectionRepository interface {
	List(ctx context.Context) ([]*models.Section, error)
	GetByKey(ctx context.Context, key models.SectionKey) (*models.Section, error)
	Create(ctx context.Context, section *models.Section) error
	Update(ctx context.Context, section *models.Section) error
}

// sectionRepository implements SectionRepository
type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) List(ctx context.Context) ([]*models.Section, error) {
	var sections []*models.Section
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&sections).Error
	return sections, err
}

func (r *sectionRepository) GetByKey(ctx context.Context, key models.SectionKey) (*models.Section, error) {
	var section models.Section
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) Create(ctx context.Context, section *models.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

// Update saves the section wholesale. GORM refreshes updated_at on every Save,
// whether or not any field changed.
func (r *sectionRepository) Update(ctx context.Context, section *models.Section) error {
	return r.db.WithContext(ctx).Save(section).Error
}
