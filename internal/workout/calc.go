package workout

import "math"

const (
	MetersInKm    = 1000
	MinutesInHour = 60
	KmhInMs       = 0.278
	CmInM         = 100

	// Length of one step (running, walking) or one stroke (swimming), meters.
	StepLengthM   = 0.65
	StrokeLengthM = 1.38

	runningSpeedMultiplier = 18
	runningSpeedShift      = 1.79

	walkingWeightCoef = 0.035
	walkingSpeedCoef  = 0.029

	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

// Sample is one package of raw sensor readings.
type Sample struct {
	Kind      Kind
	Action    float64 // steps or strokes
	DurationH float64
	WeightKg  float64

	HeightCm float64 // RaceWalking only

	PoolLengthM float64 // Swimming only
	PoolLaps    float64 // Swimming only
}

// Result holds the values derived from a Sample.
type Result struct {
	Kind         Kind
	TypeName     string
	DurationH    float64
	DistanceKm   float64
	SpeedKmh     float64
	CaloriesKcal float64
}

// Finite reports whether every numeric field is a finite number.
// A zero duration yields Inf or NaN, which JSON cannot carry.
func (r Result) Finite() bool {
	for _, v := range []float64{r.DurationH, r.DistanceKm, r.SpeedKmh, r.CaloriesKcal} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func stepLength(k Kind) float64 {
	if k == Swimming {
		return StrokeLengthM
	}
	return StepLengthM
}

// Distance returns the covered distance in km, derived from the action count.
func Distance(s Sample) float64 {
	return s.Action * stepLength(s.Kind) / MetersInKm
}

// MeanSpeed returns the average speed in km/h. Swimming speed comes from the
// pool length and lap count rather than the stroke count.
func MeanSpeed(s Sample) float64 {
	if s.Kind == Swimming {
		return s.PoolLengthM * s.PoolLaps / MetersInKm / s.DurationH
	}
	return Distance(s) / s.DurationH
}

// Calories returns the energy spent in kcal.
func Calories(s Sample) float64 {
	speed := MeanSpeed(s)
	switch s.Kind {
	case Running:
		return (runningSpeedMultiplier*speed + runningSpeedShift) *
			s.WeightKg / MetersInKm * s.DurationH * MinutesInHour
	case RaceWalking:
		speedMs := speed * KmhInMs
		durationMin := s.DurationH * MinutesInHour
		heightM := s.HeightCm / CmInM
		return (walkingWeightCoef*s.WeightKg +
			(speedMs*speedMs/heightM)*walkingSpeedCoef*s.WeightKg) * durationMin
	case Swimming:
		return (speed + swimmingSpeedShift) * swimmingWeightMultiplier * s.WeightKg * s.DurationH
	}
	return 0
}

// Compute derives the full Result for s. Zero durations are not rejected:
// the IEEE-754 Inf/NaN values are carried into the Result.
func Compute(s Sample) Result {
	return Result{
		Kind:         s.Kind,
		TypeName:     s.Kind.Name(),
		DurationH:    s.DurationH,
		DistanceKm:   Distance(s),
		SpeedKmh:     MeanSpeed(s),
		CaloriesKcal: Calories(s),
	}
}
