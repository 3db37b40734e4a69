package main

import (
	"net/http"

	_ "github.com/Loccar-Locadora/Loccar-Auth-API/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/auth"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/config"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/customer"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/db"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/handler"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/model"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/repository"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/router"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/service"
)

// @title Loccar Auth API
// @version 1.0
// @description Authentication and registration API for the Loccar rental platform.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logrus.Fatalf("database init: %v", err)
	}

	// Roles are reference data seeded by cmd/seed; auto-migrate only keeps
	// the schema in shape.
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.RefreshToken{},
		&model.AuditLog{},
	); err != nil {
		logrus.Fatalf("auto-migrate: %v", err)
	}

	authRepo := repository.NewAuthRepository(gormDB)
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	customerClient := customer.NewClient(cfg.CustomerAPIURL, cfg.CustomerAPITimeout)

	authService := service.NewAuthService(authRepo, tokenService, customerClient)
	authHandler := handler.NewAuthHandler(authService)

	router.Register(e, cfg, authHandler)

	if cfg.SwaggerHost != "" {
		logrus.Infof("swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("server start: %v", err)
	}
}
