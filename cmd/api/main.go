package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sekolahfit/segak-api/internal/config"
	"github.com/sekolahfit/segak-api/internal/database"
	"github.com/sekolahfit/segak-api/internal/handler"
	"github.com/sekolahfit/segak-api/internal/logger"
	"github.com/sekolahfit/segak-api/internal/middleware"
	"github.com/sekolahfit/segak-api/internal/models"
	"github.com/sekolahfit/segak-api/internal/repository"
	"github.com/sekolahfit/segak-api/internal/router"
	"github.com/sekolahfit/segak-api/internal/service"
	"github.com/sekolahfit/segak-api/internal/session"
	"github.com/sekolahfit/segak-api/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.AppEnv, cfg.LogFile)

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Teacher{},
		&models.Class{},
		&models.Student{},
		&models.StudentUser{},
		&models.BMIRecord{},
		&models.SegakRecord{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := database.Seed(db, cfg, appLogger); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	engine, err := web.NewEngine()
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	sessions := session.NewStore(redisClient, cfg.SessionTTL, appLogger)

	teacherRepo := repository.NewTeacherRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	bmiRepo := repository.NewBMIRepository(db)
	segakRepo := repository.NewSegakRepository(db)

	authService := service.NewAuthService(teacherRepo, studentRepo, validate, appLogger)
	studentService := service.NewStudentService(studentRepo, classRepo, validate, appLogger)
	bmiService := service.NewBMIService(bmiRepo, validate, appLogger)
	segakService := service.NewSegakService(segakRepo, validate, appLogger)
	dashboardService := service.NewDashboardService(teacherRepo, studentRepo, classRepo, bmiRepo, segakRepo, appLogger)
	resultsService := service.NewResultsService(studentRepo, bmiRepo, segakRepo, appLogger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		Views:        engine,
	})

	middleware.Register(app, middleware.Config{Logger: &appLogger})
	router.Register(app, cfg, router.Dependencies{
		SessionStore:     sessions,
		Logger:           appLogger,
		AuthHandler:      handler.NewAuthHandler(authService, sessions, appLogger),
		StudentHandler:   handler.NewStudentHandler(studentService, appLogger),
		BMIHandler:       handler.NewBMIHandler(bmiService, studentService, appLogger),
		SegakHandler:     handler.NewSegakHandler(segakService, studentService, appLogger),
		DashboardHandler: handler.NewDashboardHandler(dashboardService, appLogger),
		ResultsHandler:   handler.NewResultsHandler(resultsService, studentService, appLogger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
