package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/config"
	"github.com/peoplemetrics/kpi-engine/pkg/database"
	"github.com/peoplemetrics/kpi-engine/pkg/docintel"
	"github.com/peoplemetrics/kpi-engine/pkg/extraction"
	"github.com/peoplemetrics/kpi-engine/pkg/handlers"
	"github.com/peoplemetrics/kpi-engine/pkg/llm"
	"github.com/peoplemetrics/kpi-engine/pkg/logging"
	"github.com/peoplemetrics/kpi-engine/pkg/middleware"
	"github.com/peoplemetrics/kpi-engine/pkg/repositories"
	"github.com/peoplemetrics/kpi-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("database", logging.SanitizeConnectionString(cfg.Database.ConnectionString())),
		zap.String("docintel_endpoint", cfg.DocIntel.Endpoint),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model))

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// golang-migrate wants database/sql; open a short-lived stdlib handle
	// alongside the pool just for the migration run.
	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Warn("Failed to close migration connection", zap.Error(err))
	}

	llmClient, err := llm.NewFromProvider(cfg.LLM.Provider, &llm.Config{
		Endpoint: cfg.LLM.Endpoint,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	analyzer, err := docintel.NewClient(docintel.Config{
		Endpoint:     cfg.DocIntel.Endpoint,
		APIKey:       cfg.DocIntel.APIKey,
		APIVersion:   cfg.DocIntel.APIVersion,
		PollInterval: cfg.DocIntel.PollInterval,
		PollTimeout:  cfg.DocIntel.PollTimeout,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create document intelligence client", zap.Error(err))
	}

	extractor := extraction.NewSchemaExtractor(llmClient, cfg.LLM.Temperature, logger)
	kpiRepo := repositories.NewKPIRepository(db.Pool, logger)
	ingestion := services.NewIngestionService(analyzer, extractor, kpiRepo, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewDocumentHandler(ingestion, cfg.MaxUploadBytes, logger).RegisterRoutes(mux)
	handlers.NewKPIDataHandler(kpiRepo, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := net.JoinHostPort(cfg.BindAddr, cfg.Port)
	logger.Info("Starting kpi-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
