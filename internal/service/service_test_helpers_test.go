package service

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/models"
)

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	// cache=shared keeps every pooled connection on the same in-memory
	// database; the test name keeps databases separate between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Teacher{},
		&models.Class{},
		&models.Student{},
		&models.StudentUser{},
		&models.BMIRecord{},
		&models.SegakRecord{},
	))
	return db
}

func newValidate() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func seedClassAndStudent(t *testing.T, db *gorm.DB) (models.Class, models.Student) {
	t.Helper()
	class := models.Class{Name: "1 Amanah"}
	require.NoError(t, db.Create(&class).Error)
	student := models.Student{Name: "Zara", Gender: "F", Age: 10, ClassID: class.ID}
	require.NoError(t, db.Create(&student).Error)
	return class, student
}
