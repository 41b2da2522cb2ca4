package workout

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSummaryDemoPackages(t *testing.T) {
	tests := []struct {
		code   string
		values []float64
		want   string
	}{
		{
			code:   "SWM",
			values: []float64{720, 1, 80, 25, 40},
			want:   "Workout type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Average speed: 1.000 km/h; Calories burned: 336.000.",
		},
		{
			code:   "RUN",
			values: []float64{15000, 1, 75},
			want:   "Workout type: Running; Duration: 1.000 h.; Distance: 9.750 km; Average speed: 9.750 km/h; Calories burned: 797.805.",
		},
		{
			code:   "WLK",
			values: []float64{9000, 1, 75, 180},
			want:   "Workout type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Average speed: 5.850 km/h; Calories burned: 349.252.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			res, err := Build(tt.code, tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatSummary(res))
		})
	}
}

var threeDecimals = regexp.MustCompile(`^Workout type: \w+; Duration: -?\d+\.\d{3} h\.; Distance: -?\d+\.\d{3} km; Average speed: -?\d+\.\d{3} km/h; Calories burned: -?\d+\.\d{3}\.$`)

func TestFormatSummaryAlwaysThreeDecimals(t *testing.T) {
	for _, v := range []float64{0, 1, 0.0004, 0.0005, 12345678.9, 1e9, 3} {
		r := Result{Kind: Running, TypeName: "Running", DurationH: v, DistanceKm: v, SpeedKmh: v, CaloriesKcal: v}
		got := FormatSummary(r)
		assert.Regexp(t, threeDecimals, got)
		assert.NotContains(t, got, ",")
	}
}

func TestFormatRussian(t *testing.T) {
	res, err := Build("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	want := "Тип тренировки: Плавание; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000."
	assert.Equal(t, want, Format(res, Russian))
}

func TestFormatNonFinite(t *testing.T) {
	r := Result{Kind: Running, TypeName: "Running", DurationH: 0, DistanceKm: 9.75, SpeedKmh: math.Inf(1), CaloriesKcal: math.NaN()}
	got := FormatSummary(r)
	assert.Contains(t, got, "Average speed: +Inf km/h")
	assert.Contains(t, got, "Calories burned: NaN.")
}

func TestParseLanguage(t *testing.T) {
	lang, err := ParseLanguage("")
	require.NoError(t, err)
	assert.Equal(t, English, lang)

	lang, err = ParseLanguage("ru")
	require.NoError(t, err)
	assert.Equal(t, Russian, lang)

	_, err = ParseLanguage("de")
	assert.Error(t, err)
}
