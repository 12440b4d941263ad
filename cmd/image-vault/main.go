package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "imageVault/docs"
	"imageVault/internal/config"
	"imageVault/internal/fetcher"
	"imageVault/internal/http-server/handlers/version/getCurrent"
	"imageVault/internal/http-server/handlers/version/getHistory"
	"imageVault/internal/http-server/handlers/version/markCurrent"
	"imageVault/internal/http-server/handlers/version/requestVersion"
	"imageVault/internal/http-server/middleware/mwlogger"
	"imageVault/internal/kafka/consumer"
	"imageVault/internal/kafka/producer"
	"imageVault/internal/lib/logger/handlers/slogpretty"
	"imageVault/internal/lib/logger/sl"
	"imageVault/internal/pipeline"
	"imageVault/internal/storage/postgres"
	"imageVault/internal/uploader"
	"imageVault/internal/uploader/local"
	s3up "imageVault/internal/uploader/s3"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// @title        Image Vault API
// @version      1.0
// @description  Version ledger for NFT subject images: fetch, dedupe, store, track the current version.
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting image vault", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	blobs, err := setupBlobStorage(cfg)
	if err != nil {
		log.Error("failed to init blob storage", sl.Err(err))
		os.Exit(1)
	}

	kafkaProducer, err := producer.NewProducer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka producer", sl.Err(err))
		os.Exit(1)
	}

	kafkaConsumer, err := consumer.NewConsumer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka consumer", sl.Err(err))
		os.Exit(1)
	}

	imageFetcher := fetcher.New(cfg.Fetcher.Timeout)

	vault := pipeline.New(log, storage, imageFetcher, blobs, kafkaProducer)

	go kafkaConsumer.ReadMessages(context.Background(), vault.ProcessMessage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	if cfg.Storage.Backend == "local" {
		router.Handle("/blobs/*", http.StripPrefix("/blobs/", http.FileServer(http.Dir(cfg.Storage.LocalRoot))))
	}

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Post("/subjects/{subjectID}/images", requestVersion.New(log, vault))
	router.Get("/subjects/{subjectID}/images", getHistory.New(log, storage))
	router.Get("/subjects/{subjectID}/images/current", getCurrent.New(log, storage))
	router.Put("/subjects/{subjectID}/images/{recordID}/current", markCurrent.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err = srv.ListenAndServe(); err != nil {
		log.Error("failed to start server", sl.Err(err))
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close database", slog.String("error", err.Error()))
	}

	log.Info("postgres connection closed")

	if err = kafkaProducer.Close(); err != nil {
		log.Error("failed to close kafka producer", slog.String("error", err.Error()))
	}

	if err = kafkaConsumer.Close(); err != nil {
		log.Error("failed to close kafka consumer", slog.String("error", err.Error()))
	}

	log.Info("kafka connection closed")
}

func setupBlobStorage(cfg *config.Config) (uploader.BlobStorage, error) {
	switch cfg.Storage.Backend {
	case "s3":
		return s3up.New(context.Background(), cfg.Storage.S3)
	default:
		return local.New(cfg.Storage.LocalRoot, cfg.Storage.BaseURL), nil
	}
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
