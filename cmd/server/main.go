package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"programador/docs"
	"programador/internal/app"
	"programador/internal/config"
)

// @title Programador Enrollment API
// @version 1.0
// @description Course enrollment API with registration, JWT login, course listing and enrollment.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log.Println("Utilizando:")
	log.Printf("-> DATABASE: %s", cfg.DatabaseLocation())
	if cfg.JWTSecretGenerated {
		log.Println("-> JWT_SECRET_KEY: not set, generated a random key; tokens will not survive a restart")
	} else {
		log.Println("-> JWT_SECRET_KEY: from environment")
	}
	log.Printf("-> JWT_ACCESS_TOKEN_EXPIRES: %s", cfg.AccessTokenTTL)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", swaggerHost(cfg))

	go func() {
		if err := a.Start(); err != nil {
			log.Fatalf("%v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}

func swaggerHost(cfg *config.Config) string {
	if cfg.SwaggerHost != "" {
		return docs.SwaggerInfo.Host
	}
	return "localhost:" + cfg.ServerPort
}
