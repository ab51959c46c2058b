package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/fitness"
	"github.com/sekolahfit/segak-api/internal/models"
	"github.com/sekolahfit/segak-api/internal/repository"
)

// SegakService manages SEGAK fitness-test records. The fitness level is
// derived with internal/fitness on every write.
type SegakService interface {
	Create(ctx context.Context, form dto.SegakCreateForm) (models.SegakRecord, error)
	List(ctx context.Context, className string) ([]dto.SegakRow, error)
	Get(ctx context.Context, id uint) (models.SegakRecord, error)
	Update(ctx context.Context, id uint, form dto.SegakEditForm) error
	Delete(ctx context.Context, id uint) error
}

type segakService struct {
	records  repository.SegakRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewSegakService constructs the SEGAK record service.
func NewSegakService(records repository.SegakRepository, validate *validator.Validate, logger zerolog.Logger) SegakService {
	return &segakService{
		records:  records,
		validate: validate,
		logger:   logger.With().Str("component", "segak_service").Logger(),
	}
}

func (s *segakService) Create(ctx context.Context, form dto.SegakCreateForm) (models.SegakRecord, error) {
	if err := s.validate.Struct(form); err != nil {
		return models.SegakRecord{}, err
	}

	testDate, err := parseDate(form.TestDate)
	if err != nil {
		return models.SegakRecord{}, err
	}

	record := models.SegakRecord{
		StudentID:    form.StudentID,
		TestDate:     testDate,
		StepTest:     form.StepTest,
		PushUp:       form.PushUp,
		SitUp:        form.SitUp,
		SitReach:     form.SitReach,
		FitnessLevel: fitness.ClassifyFitness(form.PushUp, form.SitUp, form.SitReach),
	}
	if err := s.records.Create(ctx, &record); err != nil {
		return models.SegakRecord{}, err
	}

	s.logger.Info().Uint("record_id", record.ID).Uint("student_id", record.StudentID).
		Str("fitness_level", record.FitnessLevel).Msg("segak record created")
	return record, nil
}

func (s *segakService) List(ctx context.Context, className string) ([]dto.SegakRow, error) {
	records, err := s.records.List(ctx, className)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.SegakRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, dto.SegakRow{
			ID:           rec.ID,
			StudentName:  rec.Student.Name,
			ClassName:    rec.Student.Class.Name,
			StepTest:     rec.StepTest,
			PushUp:       rec.PushUp,
			SitUp:        rec.SitUp,
			SitReach:     rec.SitReach,
			FitnessLevel: rec.FitnessLevel,
			TestDate:     formatDate(rec.TestDate),
		})
	}
	return rows, nil
}

func (s *segakService) Get(ctx context.Context, id uint) (models.SegakRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SegakRecord{}, ErrNotFound
		}
		return models.SegakRecord{}, err
	}
	return record, nil
}

func (s *segakService) Update(ctx context.Context, id uint, form dto.SegakEditForm) error {
	if err := s.validate.Struct(form); err != nil {
		return err
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	testDate, err := parseDate(form.TestDate)
	if err != nil {
		return err
	}

	record.TestDate = testDate
	record.StepTest = form.StepTest
	record.PushUp = form.PushUp
	record.SitUp = form.SitUp
	record.SitReach = form.SitReach
	record.FitnessLevel = fitness.ClassifyFitness(form.PushUp, form.SitUp, form.SitReach)

	return s.records.Update(ctx, &record)
}

// Delete removes a record by identifier; a missing identifier is a silent
// no-op.
func (s *segakService) Delete(ctx context.Context, id uint) error {
	return s.records.Delete(ctx, id)
}
