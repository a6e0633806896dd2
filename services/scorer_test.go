package services

import (
	"testing"

	"brand-visibility-service/config"
	"brand-visibility-service/models"
)

func testScoring() config.ScoringConfig {
	return config.ScoringConfig{
		CalibrationCeiling: 600,
		NichePenalty:       0.6,
		AmbiguousCap:       45,
		RawCap:             98,
		VerifiedFallback:   70,
		AmbiguousFallback:  30,
		BandHigh:           70,
		BandLow:            50,
	}
}

func testScorer() *Scorer {
	return NewScorer(testScoring(), []string{
		"RealEstateAgent", "RealEstateListing", "HomeAndConstructionBusiness", "Residence",
	})
}

func TestScorer_Score(t *testing.T) {
	scorer := testScorer()

	tests := []struct {
		name        string
		status      models.Status
		result      *models.EntityResult
		expectScore int
		expectBand  string
	}{
		{
			name:        "invisible always scores zero",
			status:      models.StatusInvisible,
			result:      nil,
			expectScore: 0,
			expectBand:  BandLow,
		},
		{
			name:   "verified without raw score uses fallback",
			status: models.StatusVerified,
			result: &models.EntityResult{
				Name:  "Acme Corp",
				Types: []string{"Organization"},
			},
			expectScore: 70,
			expectBand:  BandMedium,
		},
		{
			name:   "ambiguous without raw score uses fallback",
			status: models.StatusAmbiguous,
			result: &models.EntityResult{
				Name:  "Acme (topic)",
				Types: []string{"Thing"},
			},
			expectScore: 30,
			expectBand:  BandLow,
		},
		{
			name:   "non-niche verified takes the penalty",
			status: models.StatusVerified,
			result: &models.EntityResult{
				Name:        "Acme Shop",
				Types:       []string{"LocalBusiness"},
				ResultScore: float64Ptr(300),
			},
			// 300/600*100 = 50, penalized to 30
			expectScore: 30,
			expectBand:  BandLow,
		},
		{
			name:   "niche verified at ceiling hits the raw cap",
			status: models.StatusVerified,
			result: &models.EntityResult{
				Name:        "Acme Realty",
				Types:       []string{"RealEstateAgent"},
				ResultScore: float64Ptr(600),
			},
			expectScore: 98,
			expectBand:  BandHigh,
		},
		{
			name:   "raw score above ceiling still capped below 100",
			status: models.StatusVerified,
			result: &models.EntityResult{
				Name:        "Acme Realty",
				Types:       []string{"RealEstateAgent"},
				ResultScore: float64Ptr(4200),
			},
			expectScore: 98,
			expectBand:  BandHigh,
		},
		{
			name:   "ambiguous with strong raw score is capped at 45",
			status: models.StatusAmbiguous,
			result: &models.EntityResult{
				Name:        "Acme (topic)",
				Types:       []string{"Thing", "RealEstateListing"},
				ResultScore: float64Ptr(600),
			},
			expectScore: 45,
			expectBand:  BandLow,
		},
		{
			name:   "verified with zero raw score stays a scored result",
			status: models.StatusVerified,
			result: &models.EntityResult{
				Name:        "Acme Corp",
				Types:       []string{"Organization"},
				ResultScore: float64Ptr(0),
			},
			expectScore: 0,
			expectBand:  BandLow,
		},
		{
			name:   "mid-range niche verified lands in medium band",
			status: models.StatusVerified,
			result: &models.EntityResult{
				Name:        "Acme Homes",
				Types:       []string{"HomeAndConstructionBusiness"},
				ResultScore: float64Ptr(360),
			},
			// 360/600*100 = 60, niche match, no penalty
			expectScore: 60,
			expectBand:  BandMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, band := scorer.Score(tt.status, tt.result)

			if score != tt.expectScore {
				t.Errorf("Score() = %d, want %d", score, tt.expectScore)
			}
			if band != tt.expectBand {
				t.Errorf("Score() band = %q, want %q", band, tt.expectBand)
			}
			if score < 0 || score > 100 {
				t.Errorf("Score() = %d, out of [0,100]", score)
			}
		})
	}
}

func TestScorer_MonotonicInRawScore(t *testing.T) {
	scorer := testScorer()

	previous := -1
	for raw := 0.0; raw <= 1200; raw += 25 {
		result := &models.EntityResult{
			Name:        "Acme Shop",
			Types:       []string{"LocalBusiness"},
			ResultScore: float64Ptr(raw),
		}
		score, _ := scorer.Score(models.StatusVerified, result)
		if score < previous {
			t.Fatalf("score dropped from %d to %d at raw=%v", previous, score, raw)
		}
		previous = score
	}
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := testScorer()

	result := &models.EntityResult{
		Name:        "Acme Realty",
		Types:       []string{"RealEstateAgent"},
		ResultScore: float64Ptr(412.5),
	}

	firstScore, firstBand := scorer.Score(models.StatusVerified, result)
	secondScore, secondBand := scorer.Score(models.StatusVerified, result)

	if firstScore != secondScore || firstBand != secondBand {
		t.Errorf("Score() not deterministic: (%d,%q) vs (%d,%q)",
			firstScore, firstBand, secondScore, secondBand)
	}
}

func TestScorer_AmbiguousNeverExceedsCap(t *testing.T) {
	scorer := testScorer()

	for raw := 0.0; raw <= 2400; raw += 100 {
		result := &models.EntityResult{
			Name:        "Acme (topic)",
			Types:       []string{"Thing"},
			ResultScore: float64Ptr(raw),
		}
		score, _ := scorer.Score(models.StatusAmbiguous, result)
		if score > 45 {
			t.Fatalf("ambiguous score %d exceeds cap at raw=%v", score, raw)
		}
	}
}
