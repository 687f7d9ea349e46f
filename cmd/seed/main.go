package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"programador/internal/cache"
	"programador/internal/config"
	"programador/internal/db"
	"programador/internal/repository"
	"programador/internal/seed"
	"programador/internal/service"
)

func main() {
	file := flag.String("file", "", "JSON file with [{\"codigo\":...,\"nome\":...}]")
	url := flag.String("url", "", "URL serving the same JSON array")
	flag.Parse()

	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Printf("Connected to database (%s)", cfg.DatabaseLocation())

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	courses := seed.DefaultCatalog
	switch {
	case *file != "":
		log.Printf("Reading courses from: %s", *file)
		courses, err = seed.LoadFile(*file)
	case *url != "":
		log.Printf("Fetching courses from: %s", *url)
		courses, err = seed.Fetch(ctx, &http.Client{Timeout: 30 * time.Second}, *url)
	default:
		log.Println("No source given, using the built-in catalog")
	}
	if err != nil {
		log.Fatalf("Failed to load courses: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	courseRepo := repository.NewCourseRepository(gormDB)
	courseService := service.NewCourseService(courseRepo, cacheClient)

	log.Println("Seeding courses into database...")
	created, skipped, err := seed.Courses(ctx, courseRepo, courseService, courses)
	if err != nil {
		log.Fatalf("Failed to seed courses: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New courses created: %d", created)
	log.Printf("  - Existing courses skipped: %d", skipped)
}
