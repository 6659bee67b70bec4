package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/enildoa/sp-back/internal/config"
	"github.com/enildoa/sp-back/internal/database"
	spHttp "github.com/enildoa/sp-back/internal/http"
	measureHandler "github.com/enildoa/sp-back/internal/http/measure"
	"github.com/enildoa/sp-back/internal/measure"
	measureStore "github.com/enildoa/sp-back/internal/measure/store"
	"github.com/enildoa/sp-back/internal/recognition"
	"github.com/enildoa/sp-back/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	files, err := storage.NewDir(cfg.Files.Dir, cfg.App.BaseURL)
	if err != nil {
		slog.Error("failed to set up file storage", "error", err)
		os.Exit(1)
	}

	recognizer := recognition.NewClient(recognition.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})

	measureService := measure.NewService(measureStore.New(db), recognizer, files)
	measureH := measureHandler.NewHandler(measureService)

	router := spHttp.New(measureH, files.Root())

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
