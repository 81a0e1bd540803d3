package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/config"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/database"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
	graphStore "github.com/Aaditya-Golash/elections-doc-explorer/internal/graph/store"
	electionsHttp "github.com/Aaditya-Golash/elections-doc-explorer/internal/http"
	graphHandler "github.com/Aaditya-Golash/elections-doc-explorer/internal/http/graph"
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

	graphService := graph.NewService(graphStore.New(db))
	graphH := graphHandler.NewHandler(graphService, cfg.Graph.DefaultLimit)

	router := electionsHttp.New(graphH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
