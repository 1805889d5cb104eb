package main

import (
	"log"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/config"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/handler"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/jobs"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/middleware"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/notifier"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/repository"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/service"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/database"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Notifier: staff notifications from booking lifecycle events
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ consumer: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}
	notifier.New().Start(msgs)

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	// Service
	bookingSvc := service.NewBookingService(bookingRepo, publisher)

	// Daily pending-bookings reminder at 09:00
	c := cron.New()
	if _, err := c.AddJob("0 9 * * *", jobs.NewPendingSummary(bookingRepo, publisher)); err != nil {
		log.Fatalf("failed to schedule summary job: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Echo
	auth := middleware.NewAuth(cfg.JWTSecret, roleRepo)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(auth.Resolve)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "table-booking"})
	})

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, auth.RequireAdmin)
	handler.NewAuthHandler(roleRepo).RegisterRoutes(e, auth.RequireAdmin)

	log.Printf("Table-booking service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
