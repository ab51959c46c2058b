package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/repository"
)

// ResultsService backs the teacher drill-down view: picking a class loads
// its students, picking a student loads that student's full history. Both
// selections are optional and an absent selection yields empty results.
type ResultsService interface {
	Results(ctx context.Context, className string, studentID uint) (dto.ResultsView, error)
}

type resultsService struct {
	students repository.StudentRepository
	bmi      repository.BMIRepository
	segak    repository.SegakRepository
	logger   zerolog.Logger
}

// NewResultsService constructs the drill-down service.
func NewResultsService(students repository.StudentRepository, bmi repository.BMIRepository, segak repository.SegakRepository, logger zerolog.Logger) ResultsService {
	return &resultsService{
		students: students,
		bmi:      bmi,
		segak:    segak,
		logger:   logger.With().Str("component", "results_service").Logger(),
	}
}

func (s *resultsService) Results(ctx context.Context, className string, studentID uint) (dto.ResultsView, error) {
	view := dto.ResultsView{}

	if className != "" {
		students, err := s.students.List(ctx, className)
		if err != nil {
			return dto.ResultsView{}, err
		}
		view.Students = make([]dto.StudentOption, 0, len(students))
		for _, student := range students {
			view.Students = append(view.Students, dto.StudentOption{
				ID:        student.ID,
				Name:      student.Name,
				Gender:    student.Gender,
				ClassName: student.Class.Name,
			})
		}
	}

	if studentID != 0 {
		student, err := s.students.GetByID(ctx, studentID)
		switch {
		case err == nil:
			profile := studentProfile(student)
			view.StudentInfo = &profile
		case errors.Is(err, gorm.ErrRecordNotFound):
			// An unknown selection renders an empty result set, not an error.
			return view, nil
		default:
			return dto.ResultsView{}, err
		}

		bmiRecords, err := s.bmi.ListByStudent(ctx, studentID)
		if err != nil {
			return dto.ResultsView{}, err
		}
		segakRecords, err := s.segak.ListByStudent(ctx, studentID)
		if err != nil {
			return dto.ResultsView{}, err
		}
		view.BMIHistory = toBMIHistory(bmiRecords)
		view.SegakHistory = toSegakHistory(segakRecords)
	}

	return view, nil
}
