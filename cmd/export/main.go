package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"travelledger-service/internal/infrastructure/config"
	"travelledger-service/internal/infrastructure/oauth"
	"travelledger-service/internal/infrastructure/persistence"
	storeRepo "travelledger-service/internal/interface/repository"

	"travelledger-service/internal/interface/export"
	"travelledger-service/internal/usecase"
	"travelledger-service/pkg/logger"
)

// One-shot exporter: fetch a fresh snapshot, write it as a CSV file, and
// optionally push it to a Google spreadsheet when OAuth credentials are
// configured.
func main() {
	var (
		outName  = flag.String("out", "", "output CSV filename (default travel-ledger-<date>.csv in EXPORT_DIR)")
		toSheets = flag.Bool("sheets", false, "also push the export to a new Google spreadsheet")
	)
	flag.Parse()

	log := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx := context.Background()

	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer persistence.Disconnect(mongoClient)
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	store := storeRepo.NewMongoDocumentStore(db)
	aggregator := usecase.NewAggregator(store, log, nil)

	if err := aggregator.Refresh(ctx); err != nil {
		log.Fatal("Refresh failed", "error", err)
	}
	table := usecase.ExportAll(aggregator.CurrentSnapshot())

	name := *outName
	if name == "" {
		name = fmt.Sprintf("travel-ledger-%s.csv", time.Now().Format("20060102"))
	}
	path := filepath.Join(cfg.ExportDir, name)
	if err := export.WriteCSVFile(path, table); err != nil {
		log.Fatal("CSV export failed", "error", err)
	}
	log.Info("CSV written", "path", path, "rows", len(table.Rows))

	if !*toSheets {
		return
	}
	if cfg.GoogleClientID == "" || cfg.GoogleRefreshToken == "" {
		log.Fatal("Sheets export requires GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REFRESH_TOKEN")
	}

	googleOAuth := oauth.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRefreshToken, log)
	exporter, err := export.NewSheetsExporter(ctx, googleOAuth.GetTokenSource(ctx), log)
	if err != nil {
		log.Fatal("Failed to create Sheets exporter", "error", err)
	}

	spreadsheetID, err := exporter.Export(ctx, cfg.SpreadsheetTitle, table)
	if err != nil {
		log.Fatal("Sheets export failed", "error", err)
	}
	log.Info("Spreadsheet created", "spreadsheetId", spreadsheetID)
}
