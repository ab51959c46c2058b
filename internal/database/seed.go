package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/config"
	"github.com/sekolahfit/segak-api/internal/crypto"
	"github.com/sekolahfit/segak-api/internal/models"
)

// Seed inserts the out-of-band reference data the application never creates
// through its own handlers: the teacher account and the class list. Each is
// only inserted when its table is empty, so reboots are idempotent.
func Seed(db *gorm.DB, cfg config.Config, logger zerolog.Logger) error {
	log := logger.With().Str("component", "seed").Logger()

	if len(cfg.SeedClasses) > 0 {
		var classCount int64
		if err := db.Model(&models.Class{}).Count(&classCount).Error; err != nil {
			return fmt.Errorf("failed to count classes: %w", err)
		}
		if classCount == 0 {
			classes := make([]models.Class, 0, len(cfg.SeedClasses))
			for _, name := range cfg.SeedClasses {
				classes = append(classes, models.Class{Name: name})
			}
			if err := db.Create(&classes).Error; err != nil {
				return fmt.Errorf("failed to seed classes: %w", err)
			}
			log.Info().Int("classes", len(classes)).Msg("class list seeded")
		}
	}

	if cfg.SeedTeacherEmail != "" && cfg.SeedTeacherPassword != "" {
		var teacherCount int64
		if err := db.Model(&models.Teacher{}).Count(&teacherCount).Error; err != nil {
			return fmt.Errorf("failed to count teachers: %w", err)
		}
		if teacherCount == 0 {
			hash, err := crypto.HashPassword(cfg.SeedTeacherPassword)
			if err != nil {
				return fmt.Errorf("failed to hash seed teacher password: %w", err)
			}
			teacher := models.Teacher{
				Name:         cfg.SeedTeacherName,
				Email:        cfg.SeedTeacherEmail,
				PasswordHash: hash,
			}
			if err := db.Create(&teacher).Error; err != nil {
				return fmt.Errorf("failed to seed teacher account: %w", err)
			}
			log.Info().Str("email", teacher.Email).Msg("teacher account seeded")
		}
	}

	return nil
}
