package ingest

// Stats holds the outcome of processing a list of packages.
type Stats struct {
	PackagesReceived int            `json:"packages_received"`
	PackagesComputed int            `json:"packages_computed"`
	ByType           map[string]int `json:"by_type,omitempty"`
	NonFinite        int            `json:"non_finite,omitempty"`
	TotalCalories    float64        `json:"total_calories_kcal"`
	FailedAt         int            `json:"failed_at,omitempty"`
	Message          string         `json:"message,omitempty"`
}
