package workout

// ReadPackage unpacks positional sensor values into a Sample.
//
//	SWM: action, duration, weight, pool length, pool laps
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//
// Counts are kept as reported; fractional lap counts from the sensor are
// not rounded.
func ReadPackage(code string, values []float64) (Sample, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return Sample{}, err
	}
	if len(values) != kind.Arity() {
		return Sample{}, &ArityError{Kind: kind, Want: kind.Arity(), Got: len(values)}
	}

	s := Sample{
		Kind:      kind,
		Action:    values[0],
		DurationH: values[1],
		WeightKg:  values[2],
	}
	switch kind {
	case Swimming:
		s.PoolLengthM = values[3]
		s.PoolLaps = values[4]
	case RaceWalking:
		s.HeightCm = values[3]
	}
	return s, nil
}

// Build reads a sensor package and computes its Result.
func Build(code string, values []float64) (Result, error) {
	s, err := ReadPackage(code, values)
	if err != nil {
		return Result{}, err
	}
	return Compute(s), nil
}
