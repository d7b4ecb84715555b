package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"graphile-codegen/internal/config"
	"graphile-codegen/internal/inference"
	"graphile-codegen/internal/logging"
	"graphile-codegen/internal/naming"
	"graphile-codegen/internal/render"
	"graphile-codegen/internal/schemafilter"
	"graphile-codegen/internal/schemasource"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := run(); err != nil {
		slog.Error("codegen error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	pflag.Bool("version", false, "Print version and exit")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if showVersion, _ := pflag.CommandLine.GetBool("version"); showVersion {
		fmt.Printf("graphile-codegen %s (%s)\n", Version, Commit)
		return nil
	}

	logging.Setup(cfg.Logging)

	validationResult := cfg.Validate()
	for _, warn := range validationResult.Warnings {
		slog.Warn("configuration warning",
			slog.String("field", warn.Field),
			slog.String("message", warn.Message),
			slog.String("hint", warn.Hint),
		)
	}
	if validationResult.HasErrors() {
		for _, err := range validationResult.Errors {
			slog.Error("configuration error",
				slog.String("field", err.Field),
				slog.String("message", err.Message),
				slog.String("hint", err.Hint),
			)
		}
		return fmt.Errorf("configuration validation failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := schemasource.Fetch(ctx, cfg.Source)
	if err != nil {
		return err
	}

	tables := inference.InferTables(ctx, doc, naming.New(cfg.Naming))
	tables = schemafilter.Apply(tables, cfg.Filters)

	if len(tables) == 0 {
		return fmt.Errorf("no tables could be inferred from the schema; is this a PostGraphile-style API?")
	}

	slog.Info("inference complete",
		slog.Int("tables", len(tables)),
		slog.String("format", cfg.Output.Format),
	)

	return render.WriteFile(cfg.Output.Path, tables, cfg.Output.Format, cfg.Output.NoColor)
}
