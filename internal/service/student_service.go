package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/models"
	"github.com/sekolahfit/segak-api/internal/repository"
)

// StudentService manages the student roster.
type StudentService interface {
	Classes(ctx context.Context) ([]models.Class, error)
	Create(ctx context.Context, form dto.StudentForm) (models.Student, error)
	List(ctx context.Context, className string) ([]dto.StudentRow, error)
	Get(ctx context.Context, id uint) (models.Student, error)
	Update(ctx context.Context, id uint, form dto.StudentForm) error
	Delete(ctx context.Context, id uint) error
	// Names returns every student ordered by name, for record-entry forms.
	Names(ctx context.Context) ([]dto.StudentOption, error)
}

type studentService struct {
	students  repository.StudentRepository
	classes   repository.ClassRepository
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewStudentService constructs the roster service.
func NewStudentService(students repository.StudentRepository, classes repository.ClassRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		students:  students,
		classes:   classes,
		validate:  validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) Classes(ctx context.Context) ([]models.Class, error) {
	return s.classes.List(ctx)
}

func (s *studentService) Create(ctx context.Context, form dto.StudentForm) (models.Student, error) {
	form = s.clean(form)
	if err := s.validate.Struct(form); err != nil {
		return models.Student{}, err
	}

	student := models.Student{
		Name:    form.Name,
		Gender:  form.Gender,
		Age:     form.Age,
		ClassID: form.ClassID,
	}
	if err := s.students.Create(ctx, &student); err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Uint("student_id", student.ID).Msg("student created")
	return student, nil
}

func (s *studentService) List(ctx context.Context, className string) ([]dto.StudentRow, error) {
	students, err := s.students.List(ctx, className)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StudentRow, 0, len(students))
	for _, student := range students {
		rows = append(rows, dto.StudentRow{
			ID:        student.ID,
			Name:      student.Name,
			Gender:    student.Gender,
			Age:       student.Age,
			ClassName: student.Class.Name,
		})
	}
	return rows, nil
}

func (s *studentService) Get(ctx context.Context, id uint) (models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrNotFound
		}
		return models.Student{}, err
	}
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id uint, form dto.StudentForm) error {
	form = s.clean(form)
	if err := s.validate.Struct(form); err != nil {
		return err
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	student := models.Student{
		ID:      id,
		Name:    form.Name,
		Gender:  form.Gender,
		Age:     form.Age,
		ClassID: form.ClassID,
	}
	return s.students.Update(ctx, &student)
}

// Delete removes a student by identifier. A missing identifier is a silent
// no-op; the list pages treat deletes as idempotent.
func (s *studentService) Delete(ctx context.Context, id uint) error {
	return s.students.Delete(ctx, id)
}

func (s *studentService) Names(ctx context.Context) ([]dto.StudentOption, error) {
	students, err := s.students.ListAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]dto.StudentOption, 0, len(students))
	for _, student := range students {
		options = append(options, dto.StudentOption{
			ID:        student.ID,
			Name:      student.Name,
			Gender:    student.Gender,
			ClassName: student.Class.Name,
		})
	}
	return options, nil
}

func (s *studentService) clean(form dto.StudentForm) dto.StudentForm {
	form.Name = strings.TrimSpace(s.sanitizer.Sanitize(form.Name))
	form.Gender = strings.TrimSpace(s.sanitizer.Sanitize(form.Gender))
	return form
}
