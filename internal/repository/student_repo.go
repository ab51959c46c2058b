package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/models"
)

// StudentRepository provides access to the student roster and student
// login identities.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (models.Student, error)
	// List returns students joined with their class. With an empty filter
	// it returns every student ordered by class name then student name;
	// with a filter it returns the exact-matching class ordered by student
	// name only.
	List(ctx context.Context, className string) ([]models.Student, error)
	ListAllOrdered(ctx context.Context) ([]models.Student, error)
	GetUserByEmail(ctx context.Context, email string) (models.StudentUser, error)
	Count(ctx context.Context) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Model(&models.Student{ID: student.ID}).Updates(map[string]interface{}{
		"name":     student.Name,
		"gender":   student.Gender,
		"age":      student.Age,
		"class_id": student.ClassID,
	}).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Student{}, id).Error
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Preload("Class").First(&student, id).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) List(ctx context.Context, className string) ([]models.Student, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN classes ON classes.id = students.class_id").
		Preload("Class")

	if className != "" {
		query = query.Where("classes.name = ?", className).Order("students.name")
	} else {
		query = query.Order("classes.name, students.name")
	}

	var students []models.Student
	if err := query.Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

// ListAllOrdered returns every student ordered by name, used for the
// SEGAK entry form's student picker.
func (r *studentRepository) ListAllOrdered(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Preload("Class").Order("name").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) GetUserByEmail(ctx context.Context, email string) (models.StudentUser, error) {
	var user models.StudentUser
	if err := r.db.WithContext(ctx).Preload("Student").Where("email = ?", email).First(&user).Error; err != nil {
		return models.StudentUser{}, err
	}

	return user, nil
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
