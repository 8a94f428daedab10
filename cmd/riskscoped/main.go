// Command riskscoped is the Riskscope HTTP service.
// It serves the assessment and algorithm catalogue API and a health check.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/riskscope/riskscope/internal/api"
	"github.com/riskscope/riskscope/internal/history"
	"github.com/riskscope/riskscope/internal/platform"
	"github.com/riskscope/riskscope/internal/store"
	"github.com/riskscope/riskscope/pkg/scoring"
)

type config struct {
	Port             string
	DatabaseURL      string
	StorageBackend   string
	LocalStoragePath string
	S3               store.S3Config
	GCSBucket        string
	APIKey           string
	Dev              bool
}

func loadConfig() config {
	return config{
		Port:             envOrDefault("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		StorageBackend:   os.Getenv("STORAGE_BACKEND"),
		LocalStoragePath: envOrDefault("LOCAL_STORAGE_PATH", "/tmp/riskscope-data"),
		S3: store.S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    os.Getenv("S3_REGION"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
		GCSBucket: os.Getenv("GCS_BUCKET"),
		APIKey:    os.Getenv("API_KEY"),
		Dev:       os.Getenv("RISKSCOPE_DEV") == "1",
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newStorage picks the blob storage backend. An empty backend disables
// blob storage.
func newStorage(ctx context.Context, cfg config) (store.StorageClient, error) {
	switch cfg.StorageBackend {
	case "":
		return nil, nil
	case "local":
		return store.NewLocalStorage(cfg.LocalStoragePath), nil
	case "s3":
		if cfg.S3.Bucket == "" {
			return nil, errors.New("S3_BUCKET is required for the s3 backend")
		}
		return store.NewS3Storage(ctx, cfg.S3)
	case "gcs":
		if cfg.GCSBucket == "" {
			return nil, errors.New("GCS_BUCKET is required for the gcs backend")
		}
		return store.NewGCSStorage(ctx, cfg.GCSBucket)
	}
	return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want local, s3 or gcs)", cfg.StorageBackend)
}

func main() {
	cfg := loadConfig()

	logger, err := newLogger(cfg.Dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// History is optional; without a database the service keeps only its cache.
	var hist api.HistoryStore
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("open database", zap.Error(err))
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			logger.Fatal("ping database", zap.Error(err))
		}
		if err := platform.AutoMigrate(db); err != nil {
			logger.Fatal("migrate database", zap.Error(err))
		}
		hist = history.NewService(db)
		logger.Info("assessment history enabled")
	}

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("configure storage", zap.Error(err))
	}
	if storage != nil {
		logger.Info("blob storage enabled", zap.String("backend", cfg.StorageBackend))
	}

	handler := api.NewHandler(
		scoring.NewEngine(scoring.DefaultFactors()...),
		hist,
		storage,
		api.NewAssessmentCacheFromEnv(),
		logger,
	)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, api.APIKeyAuth(cfg.APIKey))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.RequestLogger(logger)(api.CORS(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting riskscoped", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
