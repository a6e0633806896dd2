package services

import (
	"math"

	"brand-visibility-service/config"
	"brand-visibility-service/models"
)

// Band labels for presentation. They pick the warning copy shown to the user
// and carry no further semantics.
const (
	BandHigh   = "high"
	BandMedium = "medium"
	BandLow    = "low"
)

// Scorer derives the bounded 0-100 display score from a classification and
// the raw upstream confidence. Pure and stateless: the same inputs always
// produce the same score.
type Scorer struct {
	cfg        config.ScoringConfig
	nicheTypes map[string]bool
}

// NewScorer creates a scorer from the configured tunables and niche type set.
func NewScorer(cfg config.ScoringConfig, nicheTypes []string) *Scorer {
	return &Scorer{
		cfg:        cfg,
		nicheTypes: toTypeSet(nicheTypes),
	}
}

// Score computes the display score and its presentation band.
//
// An invisible brand always scores 0. When upstream gave no confidence value
// the fixed fallbacks apply. Otherwise the raw score is normalized against the
// calibration ceiling and capped below 100: a raw score alone never earns a
// perfect mark, that is reserved for entities that also land in the niche
// type set. Entities categorized outside the niche take the penalty multiplier,
// and ambiguous classifications are capped so they never look more confident
// than the weakest verified entity. A verified entity with a raw score of 0
// still returns its result details upstream of here; it scores 0 without being
// collapsed into ai-invisible.
func (s *Scorer) Score(status models.Status, result *models.EntityResult) (int, string) {
	if status == models.StatusInvisible || result == nil {
		return 0, s.band(0)
	}

	if result.ResultScore == nil {
		switch status {
		case models.StatusAmbiguous:
			score := min(s.cfg.AmbiguousFallback, s.cfg.AmbiguousCap)
			return score, s.band(score)
		default:
			return s.cfg.VerifiedFallback, s.band(s.cfg.VerifiedFallback)
		}
	}

	base := *result.ResultScore / s.cfg.CalibrationCeiling * 100
	if base > s.cfg.RawCap {
		base = s.cfg.RawCap
	}

	if !intersects(result.Types, s.nicheTypes) {
		base *= s.cfg.NichePenalty
	}

	score := int(math.Round(base))
	if status == models.StatusAmbiguous && score > s.cfg.AmbiguousCap {
		score = s.cfg.AmbiguousCap
	}

	score = clamp(score, 0, 100)
	return score, s.band(score)
}

func (s *Scorer) band(score int) string {
	switch {
	case score > s.cfg.BandHigh:
		return BandHigh
	case score < s.cfg.BandLow:
		return BandLow
	default:
		return BandMedium
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
