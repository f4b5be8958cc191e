package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/config"
	"hotelBooker/internal/http-server/handlers/booking/cancelBooking"
	"hotelBooker/internal/http-server/handlers/booking/createBooking"
	"hotelBooker/internal/http-server/handlers/booking/listBookings"
	"hotelBooker/internal/http-server/handlers/booking/updateBooking"
	"hotelBooker/internal/http-server/handlers/room/checkAvailability"
	"hotelBooker/internal/http-server/handlers/room/listRooms"
	"hotelBooker/internal/http-server/handlers/room/roomBookings"
	"hotelBooker/internal/http-server/middleware/mwlogger"
	"hotelBooker/internal/lib/logger/handlers/slogpretty"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/mq"
	"hotelBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting hotel booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	events, mqConn := setupPublisher(cfg, log)

	manager, err := booking.New(storage, booking.DateRangeChecker{}, booking.RealClock{}, log)
	if err != nil {
		log.Error("failed to init booking manager", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/bookings", createBooking.New(log, manager, events))
	router.Get("/bookings", listBookings.New(log, manager))
	router.Put("/bookings/{id}", updateBooking.New(log, manager))
	router.Delete("/bookings/{id}", cancelBooking.New(log, manager, events))
	router.Get("/rooms", listRooms.New(log, manager))
	router.Get("/rooms/{id}/bookings", roomBookings.New(log, manager))
	router.Get("/rooms/{id}/availability", checkAvailability.New(log, manager))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if mqConn != nil {
		if err = mqConn.Close(); err != nil {
			log.Error("failed to close mq connection", sl.Err(err))
		}
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

// BookingEvents is the union of the publisher interfaces the handlers consume.
type BookingEvents interface {
	createBooking.EventPublisher
	cancelBooking.EventPublisher
}

func setupPublisher(cfg *config.Config, log *slog.Logger) (BookingEvents, *amqp.Connection) {
	if cfg.MQ.URL == "" {
		log.Info("mq url is empty, booking events disabled")
		return mq.NopPublisher{}, nil
	}

	conn, ch, err := mq.SetupConn(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		log.Error("failed to connect to mq", sl.Err(err))
		os.Exit(1)
	}

	log.Info("mq publisher enabled", slog.String("exchange", cfg.MQ.Exchange))

	return mq.NewPublisher(ch, cfg.MQ.Exchange), conn
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		// Неизвестное окружение не должно оставить приложение без логгера
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
