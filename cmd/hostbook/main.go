package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hostbook/internal/app/commands"
	availabilityapp "hostbook/internal/app/handlers/availability"
	bookingapp "hostbook/internal/app/handlers/booking"
	propertyapp "hostbook/internal/app/handlers/property"
	"hostbook/internal/app/policies"
	"hostbook/internal/app/queries"
	domainavailability "hostbook/internal/domain/availability"
	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/infra/broker/kafka"
	"hostbook/internal/infra/config"
	"hostbook/internal/infra/db/mongo"
	ginserver "hostbook/internal/infra/http/gin"
	"hostbook/internal/infra/obs"
	"hostbook/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	bookings, blocked, ready, cleanup, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage init failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	publisher, closePublisher := buildPublisher(cfg, logger)
	defer closePublisher()

	clock := policies.SystemClock{}

	commandBus := commands.NewInMemoryBus()
	commands.Register(commandBus, bookingapp.CreateBookingCommand{}.Key(), &bookingapp.CreateBookingHandler{
		Bookings: bookings, Blocked: blocked, Publisher: publisher,
	})
	commands.Register(commandBus, bookingapp.RemoveBookingCommand{}.Key(), &bookingapp.RemoveBookingHandler{
		Bookings: bookings, Publisher: publisher,
	})
	commands.Register(commandBus, availabilityapp.BlockDatesCommand{}.Key(), &availabilityapp.BlockDatesHandler{
		Bookings: bookings, Blocked: blocked, Publisher: publisher,
	})
	commands.Register(commandBus, availabilityapp.ReleaseBlockCommand{}.Key(), &availabilityapp.ReleaseBlockHandler{
		Blocked: blocked, Publisher: publisher,
	})

	queryBus := queries.NewInMemoryBus()
	queries.Register(queryBus, availabilityapp.GetMonthQuery{}.Key(), &availabilityapp.GetMonthHandler{
		Bookings: bookings, Blocked: blocked,
	})
	queries.Register(queryBus, bookingapp.ListBucketsQuery{}.Key(), &bookingapp.ListBucketsHandler{
		Bookings: bookings,
	})
	queries.Register(queryBus, propertyapp.GetOverviewQuery{}.Key(), &propertyapp.GetOverviewHandler{
		Bookings: bookings,
	})

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: ready}, ginserver.Handlers{
		Calendar: ginserver.CalendarHandler{Queries: queryBus, Clock: clock},
		Booking:  ginserver.BookingHandler{Commands: commandBus, Queries: queryBus, Clock: clock},
		Blocked:  ginserver.BlockedHandler{Commands: commandBus, Clock: clock},
		Property: ginserver.PropertyHandler{Queries: queryBus, Clock: clock},
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func buildStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (domainbooking.Repository, domainavailability.BlockedRepository, func() error, func(), error) {
	if cfg.StorageMode == config.StorageMongo {
		client, err := mongo.New(cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		ready := func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
			defer cancel()
			return client.Ping(pingCtx)
		}
		cleanup := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
			defer cancel()
			if err := client.Close(closeCtx); err != nil {
				logger.Warn("mongo disconnect failed", "error", err)
			}
		}
		return mongo.NewBookingRepository(client.DB), mongo.NewBlockedRepository(client.DB), ready, cleanup, nil
	}

	bookings := memory.NewBookingRepository()
	blocked := memory.NewBlockedRepository()
	if cfg.FixturesPath != "" {
		if err := memory.LoadFixtures(ctx, cfg.FixturesPath, bookings, blocked); err != nil {
			logger.Warn("fixtures load failed", "error", err, "path", cfg.FixturesPath)
		}
	}
	return bookings, blocked, func() error { return nil }, func() {}, nil
}

func buildPublisher(cfg config.Config, logger *slog.Logger) (policies.EventPublisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		return policies.NopPublisher{}, func() {}
	}
	producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
	if err != nil {
		logger.Warn("kafka producer init failed, events disabled", "error", err)
		return policies.NopPublisher{}, func() {}
	}
	logger.Info("kafka event publishing enabled", "brokers", cfg.KafkaBrokers)
	cleanup := func() {
		if err := producer.Close(); err != nil {
			logger.Warn("kafka producer close failed", "error", err)
		}
	}
	return kafka.EventPublisher{Producer: producer, TopicPrefix: cfg.KafkaTopicPrefix}, cleanup
}
