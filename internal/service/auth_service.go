package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/crypto"
	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/models"
	"github.com/sekolahfit/segak-api/internal/repository"
)

// Identity describes an authenticated caller.
type Identity struct {
	ID   uint
	Role models.Role
	Name string
}

// AuthService resolves login credentials to an identity.
type AuthService interface {
	Authenticate(ctx context.Context, form dto.LoginForm) (Identity, error)
}

type authService struct {
	teachers repository.TeacherRepository
	students repository.StudentRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAuthService constructs the authentication service.
func NewAuthService(teachers repository.TeacherRepository, students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		teachers: teachers,
		students: students,
		validate: validate,
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

// Authenticate checks the teacher table first and the student-user table
// second. Every failure collapses into ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, form dto.LoginForm) (Identity, error) {
	if err := s.validate.Struct(form); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	teacher, err := s.teachers.GetByEmail(ctx, form.Email)
	switch {
	case err == nil:
		if crypto.CheckPassword(teacher.PasswordHash, form.Password) == nil {
			return Identity{ID: teacher.ID, Role: models.RoleTeacher, Name: teacher.Name}, nil
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Identity{}, err
	}

	user, err := s.students.GetUserByEmail(ctx, form.Email)
	switch {
	case err == nil:
		if crypto.CheckPassword(user.PasswordHash, form.Password) == nil {
			return Identity{ID: user.StudentID, Role: models.RoleStudent, Name: user.Student.Name}, nil
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Identity{}, err
	}

	s.logger.Debug().Str("email", form.Email).Msg("login rejected")
	return Identity{}, ErrInvalidCredentials
}
