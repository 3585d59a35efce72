package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/docstream/docstream/constants"
	"github.com/docstream/docstream/internal/async"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/export"
	"github.com/docstream/docstream/internal/extraction/anthropic"
	"github.com/docstream/docstream/internal/ingest"
	"github.com/docstream/docstream/internal/normalize"
	"github.com/docstream/docstream/internal/pipeline"
	repo "github.com/docstream/docstream/internal/repository"
	"github.com/docstream/docstream/internal/storage"
)

func main() {
	var (
		dir     = flag.String("dir", "", "directory to process documents from (required)")
		email   = flag.String("email", "", "account email the documents belong to (required)")
		out     = flag.String("out", "", "output file path (defaults to <parent>/docstream-export.<format>)")
		format  = flag.String("format", "csv", "export format: csv, json or xlsx")
		workers = flag.Int("workers", 4, "number of concurrent extraction workers")
	)
	flag.Parse()

	if *dir == "" || *email == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir and --email are required")
		os.Exit(1)
	}
	switch *format {
	case "csv", "json", "xlsx":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *format)
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "docstream-export."+*format)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	constants.SetFreeTierLimit(cfg.Plans.FreeMonthlyLimit)

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	store, err := storage.NewStore(cfg.Storage.UploadDir, cfg.Storage.MaxFileSizeMB, logger)
	if err != nil {
		logger.Error("failed to initialize upload storage", "error", err)
		os.Exit(1)
	}

	usersRepo := repo.NewUserRepository(entc, logger)
	documentsRepo := repo.NewDocumentRepository(entc, logger)
	usageRepo := repo.NewUsageRepository(entc, logger)

	user, created, err := usersRepo.GetOrCreateByEmail(ctx, *email, "")
	if err != nil {
		logger.Error("failed to get or create user", "email", *email, "error", err)
		os.Exit(1)
	}
	logger.Info("using account", "user_id", user.ID, "email", user.Email, "created", created)

	extractor := anthropic.NewClient(anthropic.Config{
		APIKey:    cfg.Extraction.APIKey,
		Model:     cfg.Extraction.Model,
		MaxTokens: cfg.Extraction.MaxTokens,
		Timeout:   cfg.Extraction.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(
		store, usersRepo, documentsRepo, usageRepo,
		extractor, normalize.New(logger), logger,
	)

	paths, stats, err := ingest.ScanDirectory(*dir, true)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("directory scan complete",
		"scanned", stats.Scanned, "matched", stats.Matched, "skipped", stats.Skipped)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(*workers),
		async.WithQueueSize(len(paths)+1),
		async.WithProcessTimeout(3*time.Minute),
	)
	for _, path := range paths {
		_ = queue.Enqueue(ctx, async.Job{
			UserID:      user.ID,
			Path:        path,
			SubmittedAt: time.Now(),
		})
	}
	queue.Shutdown(ctx)

	exporter := export.NewService(documentsRepo, logger)
	var data []byte
	switch *format {
	case "csv":
		data, err = exporter.ExportCSV(ctx, user.ID)
	case "json":
		data, err = exporter.ExportJSON(ctx, user.ID)
	case "xlsx":
		data, err = exporter.ExportXLSX(ctx, user.ID)
	}
	if err != nil {
		logger.Error("failed to export documents", "format", *format, "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_matched", stats.Matched, "output_file", *out)
	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files matched: %d\n", stats.Matched)
	fmt.Printf("- Output: %s\n", *out)
}
