package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/models"
)

// ClassRepository provides read access to the class list. Classes are
// reference data; the application never mutates them.
type ClassRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	Count(ctx context.Context) (int64, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository constructs a class repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) List(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.WithContext(ctx).Order("name").Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Class{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
