package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/ftracker/internal/models"
	"github.com/meltforce/ftracker/internal/workout"
)

var toolComputeWorkout = mcp.NewTool("compute_workout",
	mcp.WithDescription("Compute distance (km), average speed (km/h) and calories (kcal) for one sensor package, and render the summary line."),
	mcp.WithString("type", mcp.Required(), mcp.Description("Workout type code"), mcp.Enum("SWM", "RUN", "WLK")),
	mcp.WithArray("data", mcp.Required(),
		mcp.Description("Positional values. SWM: action, duration_h, weight_kg, pool_length_m, pool_laps. RUN: action, duration_h, weight_kg. WLK: action, duration_h, weight_kg, height_cm."),
		mcp.Items(map[string]any{"type": "number"}),
	),
	mcp.WithString("language", mcp.Description("Summary language. Defaults to the server setting."), mcp.Enum("en", "ru")),
)

var toolListWorkoutTypes = mcp.NewTool("list_workout_types",
	mcp.WithDescription("List supported workout type codes and the positional fields each one takes."),
)

// numbers converts a JSON array argument into float64 values.
func numbers(v any) ([]float64, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("data must be an array of numbers")
	}
	out := make([]float64, 0, len(raw))
	for i, item := range raw {
		switch n := item.(type) {
		case float64:
			out = append(out, n)
		case int:
			out = append(out, float64(n))
		default:
			return nil, fmt.Errorf("data[%d] is %T, want number", i, item)
		}
	}
	return out, nil
}

func (h *handlers) computeWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError("type parameter is required"), nil
	}
	data, err := numbers(req.GetArguments()["data"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lang := h.lang
	if s := req.GetString("language", ""); s != "" {
		lang, err = workout.ParseLanguage(s)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	resp, err := h.calc.Compute(ctx, models.ComputeRequest{Type: code, Data: data}, lang)
	if err != nil {
		h.log.Warn("mcp compute_workout", "type", code, "error", err)
		return mcp.NewToolResultError("compute failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkoutTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	types, err := h.calc.WorkoutTypes(ctx)
	if err != nil {
		h.log.Error("mcp list_workout_types", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(types)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
