package repository

import (
	"context"
	"errors"
	"strings"

	"dev404/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateEmail indicates a signup already exists for the normalized email.
var ErrDuplicateEmail = errors.New("email already signed up")

// SignupRepository defines the interface for signup data operations
type SignupRepository interface {
	Create(ctx context.Context, signup *models.Signup) error
	List(ctx context.Context) ([]*models.Signup, error)
}

// signupRepository implements SignupRepository
type signupRepository struct {
	db *gorm.DB
}

// NewSignupRepository creates a new signup repository
func NewSignupRepository(db *gorm.DB) SignupRepository {
	return &signupRepository{db: db}
}

// Create inserts the signup in a single statement. There is no
// check-then-insert window: the unique index on email is the duplicate guard,
// and the store's uniqueness violation is mapped to ErrDuplicateEmail. Email
// is normalized to lowercase so uniqueness is case-insensitive.
func (r *signupRepository) Create(ctx context.Context, signup *models.Signup) error {
	signup.Email = strings.ToLower(strings.TrimSpace(signup.Email))
	err := r.db.WithContext(ctx).Create(signup).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *signupRepository) List(ctx context.Context) ([]*models.Signup, error) {
	var signups []*models.Signup
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&signups).Error
	return signups, err
}
