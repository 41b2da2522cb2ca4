package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/workout"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func lines(buf *bytes.Buffer) []string {
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// TestRunDemo verifies the demo packages print three summary lines.
func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := run(context.Background(), &buf, ingest.DemoPackages(), workout.English, discardLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := lines(&buf)
	if len(got) != 3 {
		t.Fatalf("lines = %d, want 3: %q", len(got), buf.String())
	}
	if !strings.Contains(got[1], "Calories burned: 797.805.") {
		t.Errorf("running line = %q", got[1])
	}
}

// TestRunUnsupportedTypeKeepsEarlierLines verifies lines before a failing
// package are written and the error is returned.
func TestRunUnsupportedTypeKeepsEarlierLines(t *testing.T) {
	pkgs := []ingest.Package{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "XYZ", Data: []float64{1, 2, 3}},
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	}

	var buf bytes.Buffer
	err := run(context.Background(), &buf, pkgs, workout.English, discardLogger())
	if !errors.Is(err, workout.ErrUnsupportedWorkoutType) {
		t.Fatalf("err = %v, want ErrUnsupportedWorkoutType", err)
	}
	got := lines(&buf)
	if len(got) != 1 || !strings.HasPrefix(got[0], "Workout type: Running;") {
		t.Errorf("output = %q, want the running line only", buf.String())
	}
}

// TestRunZeroDurationFails verifies a zero-duration package ends the run
// with an error instead of printing Inf.
func TestRunZeroDurationFails(t *testing.T) {
	pkgs := []ingest.Package{
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
		{Type: "RUN", Data: []float64{15000, 0, 75}},
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	}

	var buf bytes.Buffer
	err := run(context.Background(), &buf, pkgs, workout.English, discardLogger())
	if !errors.Is(err, errNonFinite) {
		t.Fatalf("err = %v, want errNonFinite", err)
	}
	if !strings.Contains(err.Error(), "package 2") {
		t.Errorf("err = %q, want package index", err)
	}
	got := lines(&buf)
	if len(got) != 1 || !strings.HasPrefix(got[0], "Workout type: SportsWalking;") {
		t.Errorf("output = %q, want the walking line only", buf.String())
	}
	if strings.Contains(buf.String(), "Inf") {
		t.Errorf("output contains Inf: %q", buf.String())
	}
}
