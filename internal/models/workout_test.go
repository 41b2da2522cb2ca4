package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/meltforce/ftracker/internal/workout"
)

// TestNewComputeResponse verifies the response copies every result field and
// renders the message in the requested language.
func TestNewComputeResponse(t *testing.T) {
	res, err := workout.Build("RUN", []float64{15000, 1, 75})
	if err != nil {
		t.Fatal(err)
	}

	resp := NewComputeResponse(res, workout.English)
	if resp.TypeCode != "RUN" || resp.WorkoutType != "Running" {
		t.Errorf("type = %q/%q, want RUN/Running", resp.TypeCode, resp.WorkoutType)
	}
	if resp.DistanceKm != res.DistanceKm || resp.CaloriesKcal != res.CaloriesKcal {
		t.Errorf("response numbers differ from result: %+v vs %+v", resp, res)
	}
	if !strings.HasSuffix(resp.Message, "Calories burned: 797.805.") {
		t.Errorf("message = %q", resp.Message)
	}

	ru := NewComputeResponse(res, workout.Russian)
	if !strings.HasPrefix(ru.Message, "Тип тренировки: Бег;") {
		t.Errorf("ru message = %q", ru.Message)
	}
}

// TestComputeResponseJSON verifies the wire field names.
func TestComputeResponseJSON(t *testing.T) {
	data, err := json.Marshal(ComputeResponse{TypeCode: "SWM", CaloriesKcal: 336})
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"type_code":"SWM"`, `"calories_kcal":336`, `"speed_kmh"`, `"message"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON %s missing %s", data, key)
		}
	}
}

// TestWorkoutTypes verifies the catalog order and arities.
func TestWorkoutTypes(t *testing.T) {
	types := WorkoutTypes()
	if len(types) != 3 {
		t.Fatalf("types = %d, want 3", len(types))
	}
	want := []struct {
		code  string
		arity int
	}{{"SWM", 5}, {"RUN", 3}, {"WLK", 4}}
	for i, w := range want {
		if types[i].Code != w.code || types[i].Arity != w.arity || len(types[i].Fields) != w.arity {
			t.Errorf("types[%d] = %+v, want %s/%d", i, types[i], w.code, w.arity)
		}
	}
}
