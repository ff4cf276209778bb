package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oncall-roster-service/api"
	"oncall-roster-service/internal/config"
	"oncall-roster-service/internal/database"
	"oncall-roster-service/internal/handler"
	"oncall-roster-service/internal/repository"
	"oncall-roster-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// SQL queries
	queries := database.New(db)

	// Репозитории
	teamRepo := repository.NewTeamRepository(db, queries)
	memberRepo := repository.NewMemberRepository(db, queries)
	unavailabilityRepo := repository.NewUnavailabilityRepository(db, queries)
	planRepo := repository.NewPlanRepository(db, queries)
	statsRepo := repository.NewStatsRepository(queries)
	eventRepo := repository.NewEventRepository(queries)

	// Use Cases
	teamUC := usecase.NewTeamUseCase(teamRepo)
	memberUC := usecase.NewMemberUseCase(memberRepo, teamRepo, planRepo)
	unavailabilityUC := usecase.NewUnavailabilityUseCase(unavailabilityRepo, memberRepo, teamRepo)
	planUC := usecase.NewPlanUseCase(planRepo, memberRepo, unavailabilityRepo, teamRepo, eventRepo, logger)
	statsUC := usecase.NewStatsUseCase(statsRepo, memberRepo, planRepo, teamRepo)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(teamUC, memberUC, unavailabilityUC, planUC, statsUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
