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

// BMIService manages BMI measurement records. Value and status are derived
// with internal/fitness on every write so create and edit can never drift.
type BMIService interface {
	Create(ctx context.Context, form dto.BMICreateForm) (models.BMIRecord, error)
	List(ctx context.Context, className string) ([]dto.BMIRow, error)
	Get(ctx context.Context, id uint) (models.BMIRecord, error)
	Update(ctx context.Context, id uint, form dto.BMIEditForm) error
	Delete(ctx context.Context, id uint) error
}

type bmiService struct {
	records  repository.BMIRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewBMIService constructs the BMI record service.
func NewBMIService(records repository.BMIRepository, validate *validator.Validate, logger zerolog.Logger) BMIService {
	return &bmiService{
		records:  records,
		validate: validate,
		logger:   logger.With().Str("component", "bmi_service").Logger(),
	}
}

// Create accepts height in centimeters and stores it in meters. Note that
// Update, matching the legacy entry form, takes height in meters directly.
func (s *bmiService) Create(ctx context.Context, form dto.BMICreateForm) (models.BMIRecord, error) {
	if err := s.validate.Struct(form); err != nil {
		return models.BMIRecord{}, err
	}

	recordDate, err := parseDate(form.RecordDate)
	if err != nil {
		return models.BMIRecord{}, err
	}

	heightM := form.HeightCm / 100
	bmi := fitness.ComputeBMI(heightM, form.WeightKg)

	record := models.BMIRecord{
		StudentID:  form.StudentID,
		RecordDate: recordDate,
		HeightM:    heightM,
		WeightKg:   form.WeightKg,
		BMIValue:   bmi,
		BMIStatus:  fitness.ClassifyBMI(bmi),
	}
	if err := s.records.Create(ctx, &record); err != nil {
		return models.BMIRecord{}, err
	}

	s.logger.Info().Uint("record_id", record.ID).Uint("student_id", record.StudentID).
		Float64("bmi", record.BMIValue).Msg("bmi record created")
	return record, nil
}

func (s *bmiService) List(ctx context.Context, className string) ([]dto.BMIRow, error) {
	records, err := s.records.List(ctx, className)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.BMIRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, dto.BMIRow{
			ID:          rec.ID,
			StudentName: rec.Student.Name,
			ClassName:   rec.Student.Class.Name,
			HeightM:     rec.HeightM,
			WeightKg:    rec.WeightKg,
			BMIValue:    rec.BMIValue,
			BMIStatus:   rec.BMIStatus,
			RecordDate:  formatDate(rec.RecordDate),
		})
	}
	return rows, nil
}

func (s *bmiService) Get(ctx context.Context, id uint) (models.BMIRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.BMIRecord{}, ErrNotFound
		}
		return models.BMIRecord{}, err
	}
	return record, nil
}

// Update interprets the submitted height as meters, the unit the record is
// stored in. This mirrors the legacy edit form, which re-displays the
// stored value and does not convert from centimeters the way Create does.
func (s *bmiService) Update(ctx context.Context, id uint, form dto.BMIEditForm) error {
	if err := s.validate.Struct(form); err != nil {
		return err
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	recordDate, err := parseDate(form.RecordDate)
	if err != nil {
		return err
	}

	bmi := fitness.ComputeBMI(form.HeightM, form.WeightKg)
	record.RecordDate = recordDate
	record.HeightM = form.HeightM
	record.WeightKg = form.WeightKg
	record.BMIValue = bmi
	record.BMIStatus = fitness.ClassifyBMI(bmi)

	return s.records.Update(ctx, &record)
}

// Delete removes a record by identifier; a missing identifier is a silent
// no-op, unlike Update which reports ErrNotFound.
func (s *bmiService) Delete(ctx context.Context, id uint) error {
	return s.records.Delete(ctx, id)
}
