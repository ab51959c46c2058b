package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/models"
)

// SegakRepository provides access to SEGAK fitness-test records.
type SegakRepository interface {
	Create(ctx context.Context, record *models.SegakRecord) error
	Update(ctx context.Context, record *models.SegakRecord) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (models.SegakRecord, error)
	List(ctx context.Context, className string) ([]models.SegakRecord, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.SegakRecord, error)
	LatestByStudent(ctx context.Context, studentID uint) (models.SegakRecord, error)
	Count(ctx context.Context) (int64, error)
}

type segakRepository struct {
	db *gorm.DB
}

// NewSegakRepository constructs a SEGAK record repository.
func NewSegakRepository(db *gorm.DB) SegakRepository {
	return &segakRepository{db: db}
}

func (r *segakRepository) Create(ctx context.Context, record *models.SegakRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *segakRepository) Update(ctx context.Context, record *models.SegakRecord) error {
	return r.db.WithContext(ctx).Model(&models.SegakRecord{ID: record.ID}).Updates(map[string]interface{}{
		"test_date":     record.TestDate,
		"step_test":     record.StepTest,
		"push_up":       record.PushUp,
		"sit_up":        record.SitUp,
		"sit_reach":     record.SitReach,
		"fitness_level": record.FitnessLevel,
	}).Error
}

func (r *segakRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SegakRecord{}, id).Error
}

func (r *segakRepository) GetByID(ctx context.Context, id uint) (models.SegakRecord, error) {
	var record models.SegakRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return models.SegakRecord{}, err
	}

	return record, nil
}

func (r *segakRepository) List(ctx context.Context, className string) ([]models.SegakRecord, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN students ON students.id = segak_records.student_id").
		Joins("JOIN classes ON classes.id = students.class_id").
		Preload("Student").Preload("Student.Class")

	if className != "" {
		query = query.Where("classes.name = ?", className).
			Order("students.name, segak_records.test_date DESC")
	} else {
		query = query.Order("classes.name, students.name, segak_records.test_date DESC")
	}

	var records []models.SegakRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *segakRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.SegakRecord, error) {
	var records []models.SegakRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("test_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *segakRepository) LatestByStudent(ctx context.Context, studentID uint) (models.SegakRecord, error) {
	var record models.SegakRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("test_date DESC").
		First(&record).Error
	if err != nil {
		return models.SegakRecord{}, err
	}

	return record, nil
}

func (r *segakRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SegakRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
