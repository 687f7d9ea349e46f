// Package app builds the server's dependency graph once at startup and
// hands it to the HTTP layer.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"programador/internal/auth"
	"programador/internal/cache"
	"programador/internal/config"
	"programador/internal/db"
	"programador/internal/handler"
	"programador/internal/repository"
	"programador/internal/router"
	"programador/internal/service"
)

// App is the application context: every long-lived dependency lives here.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  *cache.Client
	JWT    *auth.JWTService
	Echo   *echo.Echo

	AuthService       service.AuthService
	CourseService     service.CourseService
	EnrollmentService service.EnrollmentService
}

// New connects to the configured database, migrates it and wires the API.
func New(cfg *config.Config) (*App, error) {
	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			return nil, err
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		return nil, err
	}

	return NewWithDB(cfg, gormDB)
}

// NewWithDB wires the API on an already migrated database.
func NewWithDB(cfg *config.Config, gormDB *gorm.DB) (*App, error) {
	hasher, err := auth.NewPasswordHasher(cfg.PasswordScheme)
	if err != nil {
		return nil, err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	courseService := service.NewCourseService(courseRepo, cacheClient)
	enrollmentService := service.NewEnrollmentService(userRepo, courseRepo, enrollmentRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.Register(
		e,
		jwtService,
		handler.NewAuthHandler(authService),
		handler.NewCourseHandler(courseService, enrollmentService),
	)

	return &App{
		Config:            cfg,
		DB:                gormDB,
		Cache:             cacheClient,
		JWT:               jwtService,
		Echo:              e,
		AuthService:       authService,
		CourseService:     courseService,
		EnrollmentService: enrollmentService,
	}, nil
}

// Start serves HTTP until the server is shut down.
func (a *App) Start() error {
	addr := ":" + a.Config.ServerPort
	if err := a.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server start: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server and releases connections.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Echo.Shutdown(ctx); err != nil {
		return err
	}
	if err := a.Cache.Close(); err != nil {
		log.Printf("close cache: %v", err)
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}
