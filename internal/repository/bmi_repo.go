package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/models"
)

// BMIRepository provides access to BMI measurement records.
type BMIRepository interface {
	Create(ctx context.Context, record *models.BMIRecord) error
	Update(ctx context.Context, record *models.BMIRecord) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (models.BMIRecord, error)
	// List returns records joined with student and class. With an empty
	// filter it orders by class name, student name, record date descending;
	// with a filter it matches the class name exactly and orders by student
	// name, record date descending.
	List(ctx context.Context, className string) ([]models.BMIRecord, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.BMIRecord, error)
	LatestByStudent(ctx context.Context, studentID uint) (models.BMIRecord, error)
	Count(ctx context.Context) (int64, error)
}

type bmiRepository struct {
	db *gorm.DB
}

// NewBMIRepository constructs a BMI record repository.
func NewBMIRepository(db *gorm.DB) BMIRepository {
	return &bmiRepository{db: db}
}

func (r *bmiRepository) Create(ctx context.Context, record *models.BMIRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *bmiRepository) Update(ctx context.Context, record *models.BMIRecord) error {
	return r.db.WithContext(ctx).Model(&models.BMIRecord{ID: record.ID}).Updates(map[string]interface{}{
		"height":      record.HeightM,
		"weight":      record.WeightKg,
		"bmi_value":   record.BMIValue,
		"bmi_status":  record.BMIStatus,
		"record_date": record.RecordDate,
	}).Error
}

func (r *bmiRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.BMIRecord{}, id).Error
}

func (r *bmiRepository) GetByID(ctx context.Context, id uint) (models.BMIRecord, error) {
	var record models.BMIRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return models.BMIRecord{}, err
	}

	return record, nil
}

func (r *bmiRepository) List(ctx context.Context, className string) ([]models.BMIRecord, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN students ON students.id = bmi_records.student_id").
		Joins("JOIN classes ON classes.id = students.class_id").
		Preload("Student").Preload("Student.Class")

	if className != "" {
		query = query.Where("classes.name = ?", className).
			Order("students.name, bmi_records.record_date DESC")
	} else {
		query = query.Order("classes.name, students.name, bmi_records.record_date DESC")
	}

	var records []models.BMIRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *bmiRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.BMIRecord, error) {
	var records []models.BMIRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("record_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *bmiRepository) LatestByStudent(ctx context.Context, studentID uint) (models.BMIRecord, error) {
	var record models.BMIRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("record_date DESC").
		First(&record).Error
	if err != nil {
		return models.BMIRecord{}, err
	}

	return record, nil
}

func (r *bmiRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BMIRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
