package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/meltforce/ftracker/internal/config"
	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var errNonFinite = errors.New("workout result is not finite (zero duration?)")

func main() {
	packagesPath := flag.String("packages", "", "YAML or JSON file with sensor packages (default: bundled demo packages)")
	lang := flag.String("lang", "", "summary language: en or ru (default: FTRACKER_SUMMARY_LANGUAGE, then en)")
	verbose := flag.Bool("v", false, "debug logging (overrides FTRACKER_LOG_LEVEL)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("ftracker", Version)
		return
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ftracker: %v\n", err)
		os.Exit(1)
	}
	if *lang != "" {
		cfg.Summary.Language = *lang
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	// Summaries go to stdout; logs stay on stderr.
	log := cfg.NewLoggerTo(os.Stderr)

	language, err := workout.ParseLanguage(cfg.Summary.Language)
	if err != nil {
		log.Error("invalid language", "error", err)
		os.Exit(1)
	}

	pkgs := ingest.DemoPackages()
	if *packagesPath != "" {
		pkgs, err = ingest.LoadFile(*packagesPath)
		if err != nil {
			log.Error("failed to load packages", "path", *packagesPath, "error", err)
			os.Exit(1)
		}
	}

	if err := run(context.Background(), os.Stdout, pkgs, language, log); err != nil {
		log.Error("workout failed", "error", err)
		os.Exit(1)
	}
}

// run writes one summary line per package to w. It stops at the first
// package that fails to build or computes to Inf/NaN; lines before it are
// still written.
func run(ctx context.Context, w io.Writer, pkgs []ingest.Package, lang workout.Language, log *slog.Logger) error {
	proc := ingest.NewProcessor(lang, log)
	summaries, stats, err := proc.Process(ctx, pkgs)
	log.Info("packages processed",
		"received", stats.PackagesReceived,
		"computed", stats.PackagesComputed,
		"non_finite", stats.NonFinite,
		"total_calories", fmt.Sprintf("%.3f", stats.TotalCalories),
	)

	for i, s := range summaries {
		if !s.Result.Finite() {
			return fmt.Errorf("package %d: %w", i+1, errNonFinite)
		}
		fmt.Fprintln(w, s.Message)
	}
	return err
}
