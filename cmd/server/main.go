package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelledger-service/internal/domain/repository"
	"travelledger-service/internal/infrastructure/config"
	"travelledger-service/internal/infrastructure/persistence"
	storeRepo "travelledger-service/internal/interface/repository"
	"travelledger-service/internal/interface/rest"
	"travelledger-service/internal/usecase"
	"travelledger-service/pkg/logger"
	"travelledger-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Travel Ledger Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Currency reference data lives in PostgreSQL; optional
	var currencyRepository repository.CurrencyRepository
	if cfg.PostgresDSN != "" {
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		currencyRepository = storeRepo.NewGormCurrencyRepository(gormDB)
	}

	// Set up store, engine and ledger
	m := metrics.NewMetrics("travelledger")
	store := storeRepo.NewMongoDocumentStore(db)
	aggregator := usecase.NewAggregator(store, log, m)
	ledger := usecase.NewLedger(store, currencyRepository, log)

	// Pull the first snapshot; the service still starts if the store is down
	if err := aggregator.Refresh(ctx); err != nil {
		log.Error("Initial refresh failed", "error", err)
	}

	// Refresh on a fixed interval in a goroutine
	go func() {
		refreshTicker := time.NewTicker(cfg.RefreshInterval)
		defer refreshTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Refresh loop stopped")
				return
			case <-refreshTicker.C:
				if err := aggregator.Refresh(ctx); err != nil {
					log.Error("Scheduled refresh failed", "error", err)
				}
			}
		}
	}()

	// Set up HTTP server
	mux := http.NewServeMux()
	rest.NewHandler(aggregator, ledger, cfg.FeedSize, log, m).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := persistence.Disconnect(mongoClient); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Travel Ledger Service stopped")
}
