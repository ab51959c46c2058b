package models

import (
	"time"

	"gorm.io/datatypes"
)

// SegakRecord is one SEGAK fitness-test result for a student. FitnessLevel
// is derived from the push-up, sit-up and sit-and-reach scores on every
// write; the step-test score is recorded but does not affect the level.
type SegakRecord struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	StudentID    uint           `gorm:"not null;index" json:"student_id"`
	Student      Student        `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	TestDate     datatypes.Date `gorm:"not null" json:"test_date"`
	StepTest     int            `gorm:"not null" json:"step_test"`
	PushUp       int            `gorm:"not null" json:"push_up"`
	SitUp        int            `gorm:"not null" json:"sit_up"`
	SitReach     float64        `gorm:"not null" json:"sit_reach"`
	FitnessLevel string         `gorm:"size:20;not null" json:"fitness_level"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
