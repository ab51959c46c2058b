package service

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/sekolahfit/segak-api/internal/dto"
	"github.com/sekolahfit/segak-api/internal/models"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (datatypes.Date, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, value)
	}
	return datatypes.Date(parsed), nil
}

func formatDate(value datatypes.Date) string {
	return time.Time(value).Format(dateLayout)
}

func toBMIHistory(records []models.BMIRecord) []dto.BMIHistoryRow {
	rows := make([]dto.BMIHistoryRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, bmiHistoryRow(rec))
	}
	return rows
}

func bmiHistoryRow(rec models.BMIRecord) dto.BMIHistoryRow {
	return dto.BMIHistoryRow{
		RecordDate: formatDate(rec.RecordDate),
		HeightM:    rec.HeightM,
		WeightKg:   rec.WeightKg,
		BMIValue:   rec.BMIValue,
		BMIStatus:  rec.BMIStatus,
	}
}

func toSegakHistory(records []models.SegakRecord) []dto.SegakHistoryRow {
	rows := make([]dto.SegakHistoryRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, segakHistoryRow(rec))
	}
	return rows
}

func segakHistoryRow(rec models.SegakRecord) dto.SegakHistoryRow {
	return dto.SegakHistoryRow{
		TestDate:     formatDate(rec.TestDate),
		StepTest:     rec.StepTest,
		PushUp:       rec.PushUp,
		SitUp:        rec.SitUp,
		SitReach:     rec.SitReach,
		FitnessLevel: rec.FitnessLevel,
	}
}

func studentProfile(student models.Student) dto.StudentProfile {
	return dto.StudentProfile{
		ID:        student.ID,
		Name:      student.Name,
		Gender:    student.Gender,
		Age:       student.Age,
		ClassName: student.Class.Name,
	}
}
