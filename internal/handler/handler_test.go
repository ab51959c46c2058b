package handler_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sekolahfit/segak-api/internal/config"
	"github.com/sekolahfit/segak-api/internal/crypto"
	"github.com/sekolahfit/segak-api/internal/handler"
	"github.com/sekolahfit/segak-api/internal/models"
	"github.com/sekolahfit/segak-api/internal/repository"
	"github.com/sekolahfit/segak-api/internal/router"
	"github.com/sekolahfit/segak-api/internal/service"
	"github.com/sekolahfit/segak-api/internal/session"
	"github.com/sekolahfit/segak-api/web"
)

// testApp assembles the full request pipeline against an in-memory
// database and Redis, mirroring the wiring in cmd/api.
type testApp struct {
	app      *fiber.App
	db       *gorm.DB
	sessions *session.Store
}

func newTestApp(t *testing.T) *testApp {
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

	mini := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	logger := zerolog.Nop()
	validate := validator.New(validator.WithRequiredStructEnabled())
	sessions := session.NewStore(redisClient, time.Hour, logger)

	teacherRepo := repository.NewTeacherRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	bmiRepo := repository.NewBMIRepository(db)
	segakRepo := repository.NewSegakRepository(db)

	authService := service.NewAuthService(teacherRepo, studentRepo, validate, logger)
	studentService := service.NewStudentService(studentRepo, classRepo, validate, logger)
	bmiService := service.NewBMIService(bmiRepo, validate, logger)
	segakService := service.NewSegakService(segakRepo, validate, logger)
	dashboardService := service.NewDashboardService(teacherRepo, studentRepo, classRepo, bmiRepo, segakRepo, logger)
	resultsService := service.NewResultsService(studentRepo, bmiRepo, segakRepo, logger)

	engine, err := web.NewEngine()
	require.NoError(t, err)

	app := fiber.New(fiber.Config{Views: engine})

	cfg := config.Config{AppName: "segak-test", AppEnv: "test"}
	router.Register(app, cfg, router.Dependencies{
		SessionStore:     sessions,
		Logger:           logger,
		AuthHandler:      handler.NewAuthHandler(authService, sessions, logger),
		StudentHandler:   handler.NewStudentHandler(studentService, logger),
		BMIHandler:       handler.NewBMIHandler(bmiService, studentService, logger),
		SegakHandler:     handler.NewSegakHandler(segakService, studentService, logger),
		DashboardHandler: handler.NewDashboardHandler(dashboardService, logger),
		ResultsHandler:   handler.NewResultsHandler(resultsService, studentService, logger),
	})

	return &testApp{app: app, db: db, sessions: sessions}
}

func (ta *testApp) seedTeacher(t *testing.T, email, password string) models.Teacher {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	teacher := models.Teacher{Name: "Cikgu Aminah", Email: email, PasswordHash: hash}
	require.NoError(t, ta.db.Create(&teacher).Error)
	return teacher
}

func (ta *testApp) seedClass(t *testing.T, name string) models.Class {
	t.Helper()
	class := models.Class{Name: name}
	require.NoError(t, ta.db.Create(&class).Error)
	return class
}

func (ta *testApp) seedStudent(t *testing.T, name string, classID uint) models.Student {
	t.Helper()
	student := models.Student{Name: name, Gender: "Male", Age: 10, ClassID: classID}
	require.NoError(t, ta.db.Create(&student).Error)
	return student
}

func (ta *testApp) seedStudentUser(t *testing.T, studentID uint, email, password string) models.StudentUser {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	user := models.StudentUser{StudentID: studentID, Email: email, PasswordHash: hash}
	require.NoError(t, ta.db.Create(&user).Error)
	return user
}

func (ta *testApp) seedBMI(t *testing.T, studentID uint, date string) models.BMIRecord {
	t.Helper()
	record := models.BMIRecord{
		StudentID:  studentID,
		RecordDate: testDate(t, date),
		HeightM:    1.5,
		WeightKg:   45,
		BMIValue:   20,
		BMIStatus:  "Normal",
	}
	require.NoError(t, ta.db.Create(&record).Error)
	return record
}

func (ta *testApp) seedSegak(t *testing.T, studentID uint, date string) models.SegakRecord {
	t.Helper()
	record := models.SegakRecord{
		StudentID:    studentID,
		TestDate:     testDate(t, date),
		StepTest:     20,
		PushUp:       20,
		SitUp:        20,
		SitReach:     10,
		FitnessLevel: "Good",
	}
	require.NoError(t, ta.db.Create(&record).Error)
	return record
}

// sessionCookie mints a live session directly in the store, bypassing the
// login form.
func (ta *testApp) sessionCookie(t *testing.T, userID uint, role models.Role, name string) *http.Cookie {
	t.Helper()
	token, err := ta.sessions.Create(context.Background(), session.Session{
		UserID: userID,
		Role:   role,
		Name:   name,
	})
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func (ta *testApp) get(t *testing.T, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ta *testApp) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func testDate(t *testing.T, value string) datatypes.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return datatypes.Date(parsed)
}
