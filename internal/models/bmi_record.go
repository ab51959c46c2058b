package models

import (
	"time"

	"gorm.io/datatypes"
)

// BMIRecord is one body-mass-index measurement for a student. Height is
// stored in meters; BMIValue and BMIStatus are derived from height and
// weight on every write, never supplied by the caller.
type BMIRecord struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	StudentID  uint           `gorm:"not null;index" json:"student_id"`
	Student    Student        `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	RecordDate datatypes.Date `gorm:"not null" json:"record_date"`
	HeightM    float64        `gorm:"column:height;not null" json:"height"`
	WeightKg   float64        `gorm:"column:weight;not null" json:"weight"`
	BMIValue   float64        `gorm:"not null" json:"bmi_value"`
	BMIStatus  string         `gorm:"size:20;not null" json:"bmi_status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
