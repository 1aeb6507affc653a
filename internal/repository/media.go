package repository

import (
	"context"

	"dev404/internal/models"

	"gorm.io/gorm"
)

// MediaFilter narrows a media listing. A zero SectionKey matches every
// section; Featured narrows only when true, mirroring the public API where
// only the literal "true" applies the filter.
type MediaFilter struct {
	SectionKey models.SectionKey
	Featured   bool
}

// MediaRepository defines the interface for media item data operations
type MediaRepository interface {
	List(ctx context.Context, filter MediaFilter) ([]*models.MediaItem, error)
	GetByID(ctx context.Context, id uint) (*models.MediaItem, error)
	Create(ctx context.Context, item *models.MediaItem) error
	Update(ctx context.Context, item *models.MediaItem) error
	Delete(ctx context.Context, id uint) error
}

// mediaRepository implements MediaRepository
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) List(ctx context.Context, filter MediaFilter) ([]*models.MediaItem, error) {
	var items []*models.MediaItem
	q := r.db.WithContext(ctx).Model(&models.MediaItem{})
	if filter.SectionKey != "" {
		q = q.Where("section_key = ?", filter.SectionKey)
	}
	if filter.Featured {
		q = q.Where("featured = ?", true)
	}
	err := q.Order("sort_order ASC, created_at DESC").Find(&items).Error
	return items, err
}

func (r *mediaRepository) GetByID(ctx context.Context, id uint) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mediaRepository) Create(ctx context.Context, item *models.MediaItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *mediaRepository) Update(ctx context.Context, item *models.MediaItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes the item. Deleting an absent id reports ErrRecordNotFound so
// a second delete of the same id surfaces as not-found, not success.
func (r *mediaRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.MediaItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
