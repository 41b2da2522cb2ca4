// Package observability exposes Prometheus collectors for the calculator.
package observability

import (
	"errors"

	"github.com/meltforce/ftracker/internal/workout"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutsComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Name:      "workouts_computed_total",
		Help:      "Number of sensor packages computed, by workout type code.",
	}, []string{"type"})
	workoutErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Name:      "workout_errors_total",
		Help:      "Number of sensor packages rejected, by reason.",
	}, []string{"reason"})
	workoutCalories = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ftracker",
		Name:      "workout_calories_kcal",
		Help:      "Calories burned per computed workout.",
		Buckets:   []float64{50, 100, 200, 400, 800, 1600, 3200},
	}, []string{"type"})
)

// Error reasons used as the reason label.
const (
	ReasonUnsupportedType = "unsupported_type"
	ReasonArity           = "arity"
	ReasonNonFinite       = "non_finite"
	ReasonInvalidInput    = "invalid_input"
)

func init() {
	prometheus.MustRegister(workoutsComputed, workoutErrors, workoutCalories)
}

// RecordWorkoutComputed counts a computed result. Non-finite results are
// counted as errors and kept out of the calorie histogram.
func RecordWorkoutComputed(res workout.Result) {
	code := res.Kind.Code()
	workoutsComputed.WithLabelValues(code).Inc()
	if !res.Finite() {
		workoutErrors.WithLabelValues(ReasonNonFinite).Inc()
		return
	}
	workoutCalories.WithLabelValues(code).Observe(res.CaloriesKcal)
}

// RecordWorkoutError counts a rejected package.
func RecordWorkoutError(err error) {
	workoutErrors.WithLabelValues(Reason(err)).Inc()
}

// Reason maps a build error to its metric label.
func Reason(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnsupportedWorkoutType):
		return ReasonUnsupportedType
	case errors.Is(err, workout.ErrArity):
		return ReasonArity
	}
	return ReasonInvalidInput
}
