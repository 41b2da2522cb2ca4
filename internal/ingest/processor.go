package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meltforce/ftracker/internal/observability"
	"github.com/meltforce/ftracker/internal/workout"
)

// Summary pairs a computed result with its rendered message.
type Summary struct {
	Package Package
	Result  workout.Result
	Message string
}

// Processor turns packages into summaries.
type Processor struct {
	lang workout.Language
	log  *slog.Logger
}

// NewProcessor creates a Processor rendering messages in lang.
func NewProcessor(lang workout.Language, log *slog.Logger) *Processor {
	return &Processor{lang: lang, log: log}
}

// Process builds every package in order. The first package that fails to
// build stops processing; the summaries computed so far are returned with the
// error.
func (p *Processor) Process(ctx context.Context, pkgs []Package) ([]Summary, *Stats, error) {
	stats := &Stats{PackagesReceived: len(pkgs), ByType: make(map[string]int)}
	summaries := make([]Summary, 0, len(pkgs))

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return summaries, stats, err
		}

		res, err := workout.Build(pkg.Type, pkg.Data)
		if err != nil {
			observability.RecordWorkoutError(err)
			stats.FailedAt = i + 1
			stats.Message = err.Error()
			return summaries, stats, fmt.Errorf("package %d: %w", i+1, err)
		}
		observability.RecordWorkoutComputed(res)

		stats.PackagesComputed++
		stats.ByType[pkg.Type]++
		if res.Finite() {
			stats.TotalCalories += res.CaloriesKcal
		} else {
			stats.NonFinite++
			p.log.Warn("non-finite workout result", "package", i+1, "type", pkg.Type, "duration_h", res.DurationH)
		}

		summaries = append(summaries, Summary{
			Package: pkg,
			Result:  res,
			Message: workout.Format(res, p.lang),
		})
		p.log.Debug("package computed", "package", i+1, "type", pkg.Type, "calories", res.CaloriesKcal)
	}

	return summaries, stats, nil
}
