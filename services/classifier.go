package services

import (
	"brand-visibility-service/kgraph"
	"brand-visibility-service/models"
)

// Classifier maps a ranked candidate list to one of the three audit statuses.
type Classifier struct {
	recognizedTypes map[string]bool
	ambiguousTypes  map[string]bool
}

// NewClassifier creates a classifier from the configured type sets.
func NewClassifier(recognizedTypes, ambiguousTypes []string) *Classifier {
	return &Classifier{
		recognizedTypes: toTypeSet(recognizedTypes),
		ambiguousTypes:  toTypeSet(ambiguousTypes),
	}
}

// Classify scans the candidates in upstream order, twice: first for a
// recognized entity type, then for an ambiguous one. Running the verified scan
// over the whole list before falling back means a generic top hit never masks
// a real business match further down. Returns StatusInvisible with a nil
// result when neither scan matches.
func (cl *Classifier) Classify(query string, candidates []kgraph.Candidate) (models.Status, *models.EntityResult) {
	if len(candidates) == 0 {
		return models.StatusInvisible, nil
	}

	if match := firstMatch(candidates, cl.isRecognizedType); match != nil {
		return models.StatusVerified, normalizeCandidate(query, match)
	}

	if match := firstMatch(candidates, cl.isAmbiguousType); match != nil {
		return models.StatusAmbiguous, normalizeCandidate(query, match)
	}

	return models.StatusInvisible, nil
}

func (cl *Classifier) isRecognizedType(c kgraph.Candidate) bool {
	return intersects(c.Types, cl.recognizedTypes)
}

func (cl *Classifier) isAmbiguousType(c kgraph.Candidate) bool {
	return intersects(c.Types, cl.ambiguousTypes)
}

// firstMatch returns the first candidate satisfying the predicate, preserving
// upstream ranking.
func firstMatch(candidates []kgraph.Candidate, predicate func(kgraph.Candidate) bool) *kgraph.Candidate {
	for i := range candidates {
		if predicate(candidates[i]) {
			return &candidates[i]
		}
	}
	return nil
}

func normalizeCandidate(query string, c *kgraph.Candidate) *models.EntityResult {
	name := c.Name
	if name == "" {
		name = query
	}

	return &models.EntityResult{
		Name:        name,
		EntityID:    c.EntityID,
		Types:       c.Types,
		Description: c.Description,
		URL:         c.URL,
		ResultScore: c.ResultScore,
		Location:    c.Location,
	}
}

func toTypeSet(types []string) map[string]bool {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

func intersects(types []string, set map[string]bool) bool {
	for _, t := range types {
		if set[t] {
			return true
		}
	}
	return false
}
