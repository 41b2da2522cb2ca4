package workout

import "fmt"

// Language selects the summary template.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

// ParseLanguage validates a language tag. An empty tag means English.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case "", English:
		return English, nil
	case Russian:
		return Russian, nil
	}
	return "", fmt.Errorf("unsupported summary language %q", s)
}

var russianNames = map[Kind]string{
	Swimming:    "Плавание",
	Running:     "Бег",
	RaceWalking: "Спортивная ходьба",
}

// FormatSummary renders r with the English template.
func FormatSummary(r Result) string {
	return Format(r, English)
}

// Format renders r in the given language. All four numbers are printed
// fixed-point with three decimals.
func Format(r Result, lang Language) string {
	if lang == Russian {
		name := russianNames[r.Kind]
		if name == "" {
			name = r.TypeName
		}
		return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; "+
			"Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
			name, r.DurationH, r.DistanceKm, r.SpeedKmh, r.CaloriesKcal)
	}
	return fmt.Sprintf("Workout type: %s; Duration: %.3f h.; Distance: %.3f km; "+
		"Average speed: %.3f km/h; Calories burned: %.3f.",
		r.TypeName, r.DurationH, r.DistanceKm, r.SpeedKmh, r.CaloriesKcal)
}
