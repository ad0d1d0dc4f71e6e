package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-reservation-calendar/internal/config"
	"github.com/iliyamo/hotel-reservation-calendar/internal/database"
	"github.com/iliyamo/hotel-reservation-calendar/internal/handler"
	"github.com/iliyamo/hotel-reservation-calendar/internal/middleware"
	"github.com/iliyamo/hotel-reservation-calendar/internal/queue"
	"github.com/iliyamo/hotel-reservation-calendar/internal/repository"
	"github.com/iliyamo/hotel-reservation-calendar/internal/router"
	queue_publisher "github.com/iliyamo/hotel-reservation-calendar/internal/service"
)

func main() {
	_ = godotenv.Load() // load .env when present; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional; a nil client disables rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting disabled")
	}

	repo := repository.NewReservationRepo(db)
	reservations := handler.NewReservationHandler(repo, queue_publisher.PublishReservationEvent)
	cal := handler.NewCalendarHandler(repo)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, reservations, cal, middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))

	// Audit consumer runs for the life of the process and reconnects on
	// broker failures.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
