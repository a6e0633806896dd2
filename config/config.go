package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultKGAPIURL is the public Knowledge Graph Search API endpoint.
	DefaultKGAPIURL = "https://kgsearch.googleapis.com/v1/entities:search"
)

type Config struct {
	// Server
	Port string
	Host string

	// Knowledge Graph upstream
	KGAPIKey      string
	KGAPIURL      string
	KGResultLimit int

	// Inbound auth. Empty token disables the check.
	APIToken       string
	AllowedOrigins string

	RateLimitPerMinute     int
	UpstreamTimeoutSeconds int

	// Classification type sets
	RecognizedTypes []string
	AmbiguousTypes  []string
	NicheTypes      []string

	// Scoring tunables
	Scoring ScoringConfig
}

// ScoringConfig collects every numeric constant of the scoring policy so
// deployments can recalibrate without a code change.
type ScoringConfig struct {
	// CalibrationCeiling is the raw upstream score treated as gold-standard
	// confidence. Upstream scores are unbounded and swing by orders of
	// magnitude with query popularity.
	CalibrationCeiling float64
	// NichePenalty multiplies the base score when the matched entity's types
	// miss the niche set.
	NichePenalty float64
	// AmbiguousCap is the highest score an ambiguous classification can reach.
	AmbiguousCap int
	// RawCap keeps a raw score alone from earning a perfect 100.
	RawCap float64
	// Fallbacks apply when upstream gives no confidence signal.
	VerifiedFallback  int
	AmbiguousFallback int
	// Band thresholds: score > BandHigh is "high", score < BandLow is "low".
	BandHigh int
	BandLow  int
}

func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		Host:                   getEnv("HOST", "0.0.0.0"),
		KGAPIKey:               getEnv("KG_API_KEY", ""),
		KGAPIURL:               getEnv("KG_API_URL", DefaultKGAPIURL),
		KGResultLimit:          getEnvInt("KG_RESULT_LIMIT", 5),
		APIToken:               getEnv("API_TOKEN", ""),
		AllowedOrigins:         getEnv("ALLOWED_ORIGINS", "*"),
		RateLimitPerMinute:     getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		UpstreamTimeoutSeconds: getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10),

		RecognizedTypes: getEnvList("RECOGNIZED_TYPES",
			"Organization,Corporation,LocalBusiness,RealEstateAgent,HomeAndConstructionBusiness"),
		AmbiguousTypes: getEnvList("AMBIGUOUS_TYPES", "Book,Thing"),
		NicheTypes: getEnvList("NICHE_TYPES",
			"RealEstateAgent,RealEstateListing,HomeAndConstructionBusiness,Residence"),

		Scoring: ScoringConfig{
			CalibrationCeiling: getEnvFloat("SCORE_CALIBRATION_CEILING", 600),
			NichePenalty:       getEnvFloat("SCORE_NICHE_PENALTY", 0.6),
			AmbiguousCap:       getEnvInt("SCORE_AMBIGUOUS_CAP", 45),
			RawCap:             getEnvFloat("SCORE_RAW_CAP", 98),
			VerifiedFallback:   getEnvInt("SCORE_VERIFIED_FALLBACK", 70),
			AmbiguousFallback:  getEnvInt("SCORE_AMBIGUOUS_FALLBACK", 30),
			BandHigh:           getEnvInt("SCORE_BAND_HIGH", 70),
			BandLow:            getEnvInt("SCORE_BAND_LOW", 50),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	var cleaned []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
