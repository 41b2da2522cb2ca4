package mcp

import (
	"context"
	"errors"

	"github.com/meltforce/ftracker/internal/models"
	"github.com/meltforce/ftracker/internal/observability"
	"github.com/meltforce/ftracker/internal/workout"
)

// ErrNonFinite is returned when a package computes to Inf or NaN, typically
// because its duration is zero.
var ErrNonFinite = errors.New("workout result is not finite")

// Calculator abstracts where MCP tools compute workouts. Both Local
// (in-process) and HTTPClient (remote ftracker server) satisfy it.
type Calculator interface {
	Compute(ctx context.Context, req models.ComputeRequest, lang workout.Language) (*models.ComputeResponse, error)
	WorkoutTypes(ctx context.Context) ([]models.WorkoutType, error)
}

// Local computes workouts in-process.
type Local struct{}

// Compile-time check: Local satisfies Calculator.
var _ Calculator = Local{}

func (Local) Compute(_ context.Context, req models.ComputeRequest, lang workout.Language) (*models.ComputeResponse, error) {
	res, err := workout.Build(req.Type, req.Data)
	if err != nil {
		observability.RecordWorkoutError(err)
		return nil, err
	}
	observability.RecordWorkoutComputed(res)
	if !res.Finite() {
		return nil, ErrNonFinite
	}
	resp := models.NewComputeResponse(res, lang)
	return &resp, nil
}

func (Local) WorkoutTypes(_ context.Context) ([]models.WorkoutType, error) {
	return models.WorkoutTypes(), nil
}
