// Package config defines dashboard configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers a YAML file and environment on top.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects "text" or "json" log lines.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at the evaluation JSON document. Empty uses the embedded sample.
	DatasetPath string `koanf:"dataset_path"`

	// Locale is a BCP 47 tag used for timestamps and numbers, e.g. "en-US".
	Locale string `koanf:"locale"`

	// Timezone is an IANA zone name used when formatting evaluation times.
	Timezone string `koanf:"timezone"`

	// Title and Subtitle are shown in the dashboard header.
	Title    string `koanf:"title"`
	Subtitle string `koanf:"subtitle"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// CriteriaLabels and OverallLabels override display labels per score key.
	CriteriaLabels map[string]string `koanf:"criteria_labels"`
	OverallLabels  map[string]string `koanf:"overall_labels"`

	// CriteriaWeights maps criteria keys to weights for the leaderboard's weighted total.
	CriteriaWeights map[string]float64 `koanf:"criteria_weights"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		Locale:              "en-US",
		Timezone:            "Local",
		Title:               "Hackathon Evaluation Dashboard",
		Subtitle:            "Google Technologies Open Domain Hackathon",
		MaxLeaderboardLimit: 100,
		CriteriaLabels:      map[string]string{},
		OverallLabels:       map[string]string{},
		CriteriaWeights:     map[string]float64{},
	}
}
