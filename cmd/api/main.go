package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/orbitlabs/orbit-inventory/internal/config"
	"github.com/orbitlabs/orbit-inventory/internal/middlewares"
	"github.com/orbitlabs/orbit-inventory/internal/modules/inventory"
	"github.com/orbitlabs/orbit-inventory/internal/spreadsheet"
)

func main() {
	cfg := config.Load()
	logg := config.NewLogger(cfg.LogLevel)
	ctx := context.Background()

	var (
		catalogRepo     inventory.CatalogRepository
		stockRepo       inventory.StockRepository
		transactionRepo inventory.TransactionRepository
	)

	switch cfg.StoreBackend {
	case "sheets":
		if cfg.SpreadsheetID == "" {
			logg.Fatal("SPREADSHEET_ID is required for the sheets backend")
		}
		doc, err := spreadsheet.NewGoogleDocument(ctx, cfg.CredentialsFile, cfg.SpreadsheetID)
		if err != nil {
			logg.WithError(err).Fatal("failed to open Google Sheets document")
		}
		catalogRepo, stockRepo, transactionRepo = inventory.NewSheetRepositories(doc)

	case "excel":
		doc, err := spreadsheet.OpenExcelDocument(cfg.ExcelFile)
		if err != nil {
			logg.WithError(err).Fatal("failed to open workbook")
		}
		defer doc.Close()
		catalogRepo, stockRepo, transactionRepo = inventory.NewSheetRepositories(doc)

	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logg.WithError(err).Fatal("failed to open database")
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logg.WithError(err).Fatal("failed to reach database")
		}
		if err := inventory.EnsureSchema(ctx, db); err != nil {
			logg.WithError(err).Fatal("failed to create schema")
		}
		catalogRepo = inventory.NewCatalogPostgresRepository(db)
		stockRepo = inventory.NewStockPostgresRepository(db)
		transactionRepo = inventory.NewTransactionPostgresRepository(db)

	default:
		logg.WithField("backend", cfg.StoreBackend).Fatal("unknown STORE_BACKEND")
	}

	service := inventory.NewService(catalogRepo, stockRepo, transactionRepo, logg)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middlewares.RequestLogger(logg))

	handler := inventory.NewHandler(service, logg)
	handler.RegisterRoutes(router)
	handler.RegisterUI(router)

	logg.WithFields(logrus.Fields{
		"port":    cfg.ServerPort,
		"backend": cfg.StoreBackend,
	}).Info("orbit inventory server starting")
	if err := http.ListenAndServe(":"+cfg.ServerPort, router); err != nil {
		logg.WithError(err).Fatal("server stopped")
	}
}
