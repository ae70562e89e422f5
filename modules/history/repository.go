package history

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an evaluation is not found.
var ErrNotFound = errors.New("evaluation not found")

// Repository provides access to evaluation storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new evaluation repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new evaluation record.
func (r *Repository) Create(eval *Evaluation) error {
	if err := r.db.Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

// FindByID retrieves an evaluation by its ID.
func (r *Repository) FindByID(id string) (*Evaluation, error) {
	var eval Evaluation
	if err := r.db.First(&eval, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}
	return &eval, nil
}

// FindRecent retrieves the most recent evaluations, newest first.
func (r *Repository) FindRecent(limit int) ([]*Evaluation, error) {
	var evals []*Evaluation
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&evals).Error; err != nil {
		return nil, fmt.Errorf("failed to find evaluations: %w", err)
	}
	return evals, nil
}
