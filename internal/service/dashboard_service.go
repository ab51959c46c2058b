package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/repository"
)

// DashboardService produces the read-only aggregation views: the teacher
// landing page and the student self-service pages. Student views are always
// scoped to the identifier taken from the caller's session, never from the
// request.
type DashboardService interface {
	TeacherDashboard(ctx context.Context, teacherID uint) (dto.TeacherDashboard, error)
	StudentDashboard(ctx context.Context, studentID uint) (dto.StudentDashboard, error)
	StudentPrint(ctx context.Context, studentID uint) (dto.StudentPrint, error)
}

type dashboardService struct {
	teachers repository.TeacherRepository
	students repository.StudentRepository
	classes  repository.ClassRepository
	bmi      repository.BMIRepository
	segak    repository.SegakRepository
	logger   zerolog.Logger
}

// NewDashboardService constructs the dashboard aggregator.
func NewDashboardService(
	teachers repository.TeacherRepository,
	students repository.StudentRepository,
	classes repository.ClassRepository,
	bmi repository.BMIRepository,
	segak repository.SegakRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		teachers: teachers,
		students: students,
		classes:  classes,
		bmi:      bmi,
		segak:    segak,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) TeacherDashboard(ctx context.Context, teacherID uint) (dto.TeacherDashboard, error) {
	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TeacherDashboard{}, ErrNotFound
		}
		return dto.TeacherDashboard{}, err
	}

	dashboard := dto.TeacherDashboard{TeacherName: teacher.Name}
	if dashboard.TotalStudents, err = s.students.Count(ctx); err != nil {
		return dto.TeacherDashboard{}, err
	}
	if dashboard.TotalBMI, err = s.bmi.Count(ctx); err != nil {
		return dto.TeacherDashboard{}, err
	}
	if dashboard.TotalSegak, err = s.segak.Count(ctx); err != nil {
		return dto.TeacherDashboard{}, err
	}
	if dashboard.TotalClasses, err = s.classes.Count(ctx); err != nil {
		return dto.TeacherDashboard{}, err
	}

	return dashboard, nil
}

func (s *dashboardService) StudentDashboard(ctx context.Context, studentID uint) (dto.StudentDashboard, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentDashboard{}, ErrNotFound
		}
		return dto.StudentDashboard{}, err
	}

	bmiRecords, err := s.bmi.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.StudentDashboard{}, err
	}
	segakRecords, err := s.segak.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.StudentDashboard{}, err
	}

	return dto.StudentDashboard{
		Profile:      studentProfile(student),
		BMIHistory:   toBMIHistory(bmiRecords),
		SegakHistory: toSegakHistory(segakRecords),
	}, nil
}

func (s *dashboardService) StudentPrint(ctx context.Context, studentID uint) (dto.StudentPrint, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentPrint{}, ErrNotFound
		}
		return dto.StudentPrint{}, err
	}

	view := dto.StudentPrint{Profile: studentProfile(student)}

	latestBMI, err := s.bmi.LatestByStudent(ctx, studentID)
	switch {
	case err == nil:
		row := bmiHistoryRow(latestBMI)
		view.LatestBMI = &row
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return dto.StudentPrint{}, err
	}

	latestSegak, err := s.segak.LatestByStudent(ctx, studentID)
	switch {
	case err == nil:
		row := segakHistoryRow(latestSegak)
		view.LatestSegak = &row
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return dto.StudentPrint{}, err
	}

	return view, nil
}
