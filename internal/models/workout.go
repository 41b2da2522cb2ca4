// Package models holds the JSON shapes shared by the HTTP API and its clients.
package models

import "github.com/meltforce/ftracker/internal/workout"

// ComputeRequest is one sensor package as posted to the API.
type ComputeRequest struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

// ComputeResponse is a computed workout with its rendered summary.
type ComputeResponse struct {
	TypeCode     string  `json:"type_code"`
	WorkoutType  string  `json:"workout_type"`
	DurationH    float64 `json:"duration_h"`
	DistanceKm   float64 `json:"distance_km"`
	SpeedKmh     float64 `json:"speed_kmh"`
	CaloriesKcal float64 `json:"calories_kcal"`
	Message      string  `json:"message"`
}

// NewComputeResponse renders r in lang. The caller must check r.Finite()
// first since JSON has no encoding for Inf or NaN.
func NewComputeResponse(r workout.Result, lang workout.Language) ComputeResponse {
	return ComputeResponse{
		TypeCode:     r.Kind.Code(),
		WorkoutType:  r.TypeName,
		DurationH:    r.DurationH,
		DistanceKm:   r.DistanceKm,
		SpeedKmh:     r.SpeedKmh,
		CaloriesKcal: r.CaloriesKcal,
		Message:      workout.Format(r, lang),
	}
}

// WorkoutType describes one supported variant and its positional fields.
type WorkoutType struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Arity  int      `json:"arity"`
	Fields []string `json:"fields"`
}

// WorkoutTypes lists every supported variant.
func WorkoutTypes() []WorkoutType {
	kinds := workout.Kinds()
	out := make([]WorkoutType, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, WorkoutType{
			Code:   k.Code(),
			Name:   k.Name(),
			Arity:  k.Arity(),
			Fields: k.Fields(),
		})
	}
	return out
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
