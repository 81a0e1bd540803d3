package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/config"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/database"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
	graphStore "github.com/Aaditya-Golash/elections-doc-explorer/internal/graph/store"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/importer"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/pipeline"
)

func main() {
	var (
		file = flag.String("file", "", "Path to the disbursements CSV (defaults to INGEST_FILE)")
		yes  = flag.Bool("yes", false, "Skip the confirmation prompt")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *file == "" {
		*file = cfg.Ingest.File
	}

	if !*yes && !confirmRebuild(cfg.DB.Name) {
		slog.Info("aborted")
		return
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

	f, err := os.Open(*file)
	if err != nil {
		slog.Error("failed to open input file", "file", *file, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	pipelineService := pipeline.NewService(
		importer.NewService(),
		graph.NewService(graphStore.New(db)),
	)

	result, err := pipelineService.Run(context.Background(), importer.Format(cfg.Ingest.Format), f)
	if err != nil {
		slog.Error("build failed", "error", err)
		os.Exit(1)
	}

	slog.Info("graph built",
		"file", *file,
		"loaded", result.Loaded,
		"rejected", result.Rejected,
		"entities", result.Entities,
		"edges", result.Edges,
	)
}

// confirmRebuild asks before wiping the existing graph. A build always
// starts from a clean store.
func confirmRebuild(dbName string) bool {
	confirmed := false

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Rebuild the spending graph?").
			Description("This discards all entities and edges in " + dbName + ".").
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		return false
	}

	return confirmed
}
