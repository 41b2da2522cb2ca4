// Package workout computes distance, mean speed and calories for a single
// sensor package and renders the summary line shown to the user.
package workout

import "fmt"

// Kind identifies a supported workout variant.
type Kind int

const (
	Swimming Kind = iota + 1
	Running
	RaceWalking
)

var kinds = []Kind{Swimming, Running, RaceWalking}

// Kinds returns every supported variant in sensor code order (SWM, RUN, WLK).
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Code returns the sensor type code for k.
func (k Kind) Code() string {
	switch k {
	case Swimming:
		return "SWM"
	case Running:
		return "RUN"
	case RaceWalking:
		return "WLK"
	}
	return ""
}

// Name returns the display name used in summaries.
func (k Kind) Name() string {
	switch k {
	case Swimming:
		return "Swimming"
	case Running:
		return "Running"
	case RaceWalking:
		return "SportsWalking"
	}
	return ""
}

// Fields lists the positional values a package of this kind carries, in order.
func (k Kind) Fields() []string {
	switch k {
	case Swimming:
		return []string{"action", "duration_h", "weight_kg", "pool_length_m", "pool_laps"}
	case Running:
		return []string{"action", "duration_h", "weight_kg"}
	case RaceWalking:
		return []string{"action", "duration_h", "weight_kg", "height_cm"}
	}
	return nil
}

// Arity is the number of positional values expected by ReadPackage.
func (k Kind) Arity() int {
	return len(k.Fields())
}

func (k Kind) String() string {
	if name := k.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a sensor type code to its Kind.
func ParseKind(code string) (Kind, error) {
	for _, k := range kinds {
		if k.Code() == code {
			return k, nil
		}
	}
	return 0, &UnsupportedTypeError{Code: code}
}
