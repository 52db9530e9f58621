package main

import (
	"context"
	"log"
	"time"

	"github.com/DiogoFabricioAG/connect2/config"
	"github.com/DiogoFabricioAG/connect2/internal/handler"
	"github.com/DiogoFabricioAG/connect2/internal/middleware"
	"github.com/DiogoFabricioAG/connect2/internal/repository"
	"github.com/DiogoFabricioAG/connect2/internal/service"
	"github.com/DiogoFabricioAG/connect2/pkg/database"
	"github.com/DiogoFabricioAG/connect2/pkg/lock"
	"github.com/DiogoFabricioAG/connect2/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Redis is optional: without it the start lease falls back to an
	// in-process lock, which is fine for a single instance.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("[Redis] unavailable (%v), using in-process start lock", err)
			redisClient = nil
		}
		cancel()
	}
	locks := lock.New(redisClient, 5*time.Minute)

	rng := service.NewRand(time.Now().UnixNano())

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	participantRepo := repository.NewRoomParticipantRepository(db)

	// Services
	eventSvc := service.NewEventService(eventRepo, guestRepo, roomRepo, publisher, rng)
	guestSvc := service.NewGuestService(guestRepo, eventRepo)
	starterSvc := service.NewStarterService(eventRepo, guestRepo, roomRepo, participantRepo, locks, publisher, rng)

	// Echo
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

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "connect2"})
	})

	api := e.Group("/api/v1")
	handler.NewEventHandler(eventSvc).RegisterRoutes(api)
	handler.NewGuestHandler(guestSvc).RegisterRoutes(api)
	handler.NewStartHandler(starterSvc).RegisterRoutes(api)

	log.Printf("Connect2 API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
