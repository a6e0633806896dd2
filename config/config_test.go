package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// getEnv treats empty as unset, so blanking the keys shields the test
	// from whatever the host environment carries.
	for _, key := range []string{
		"PORT", "KG_API_URL", "KG_RESULT_LIMIT",
		"SCORE_CALIBRATION_CEILING", "SCORE_NICHE_PENALTY",
		"SCORE_AMBIGUOUS_CAP", "SCORE_BAND_HIGH", "RECOGNIZED_TYPES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.KGAPIURL != DefaultKGAPIURL {
		t.Errorf("KGAPIURL = %q, want %q", cfg.KGAPIURL, DefaultKGAPIURL)
	}
	if cfg.KGResultLimit != 5 {
		t.Errorf("KGResultLimit = %d, want 5", cfg.KGResultLimit)
	}
	if cfg.Scoring.CalibrationCeiling != 600 {
		t.Errorf("CalibrationCeiling = %v, want 600", cfg.Scoring.CalibrationCeiling)
	}
	if cfg.Scoring.NichePenalty != 0.6 {
		t.Errorf("NichePenalty = %v, want 0.6", cfg.Scoring.NichePenalty)
	}
	if cfg.Scoring.AmbiguousCap != 45 {
		t.Errorf("AmbiguousCap = %d, want 45", cfg.Scoring.AmbiguousCap)
	}
	if cfg.Scoring.BandHigh != 70 {
		t.Errorf("BandHigh = %d, want 70", cfg.Scoring.BandHigh)
	}

	wantRecognized := []string{"Organization", "Corporation", "LocalBusiness", "RealEstateAgent", "HomeAndConstructionBusiness"}
	if len(cfg.RecognizedTypes) != len(wantRecognized) {
		t.Fatalf("RecognizedTypes = %v, want %v", cfg.RecognizedTypes, wantRecognized)
	}
	for i, want := range wantRecognized {
		if cfg.RecognizedTypes[i] != want {
			t.Errorf("RecognizedTypes[%d] = %q, want %q", i, cfg.RecognizedTypes[i], want)
		}
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KG_API_KEY", "my-key")
	t.Setenv("KG_RESULT_LIMIT", "10")
	t.Setenv("SCORE_CALIBRATION_CEILING", "1000")
	t.Setenv("RECOGNIZED_TYPES", "Organization, LocalBusiness ,,")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.KGAPIKey != "my-key" {
		t.Errorf("KGAPIKey = %q, want my-key", cfg.KGAPIKey)
	}
	if cfg.KGResultLimit != 10 {
		t.Errorf("KGResultLimit = %d, want 10", cfg.KGResultLimit)
	}
	if cfg.Scoring.CalibrationCeiling != 1000 {
		t.Errorf("CalibrationCeiling = %v, want 1000", cfg.Scoring.CalibrationCeiling)
	}
	if len(cfg.RecognizedTypes) != 2 || cfg.RecognizedTypes[1] != "LocalBusiness" {
		t.Errorf("RecognizedTypes = %v, want trimmed two-element list", cfg.RecognizedTypes)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("KG_RESULT_LIMIT", "not-a-number")
	t.Setenv("SCORE_NICHE_PENALTY", "lots")

	cfg := Load()

	if cfg.KGResultLimit != 5 {
		t.Errorf("KGResultLimit = %d, want default 5", cfg.KGResultLimit)
	}
	if cfg.Scoring.NichePenalty != 0.6 {
		t.Errorf("NichePenalty = %v, want default 0.6", cfg.Scoring.NichePenalty)
	}
}
