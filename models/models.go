package models

// Status is the classification of a brand name after one knowledge graph search.
type Status string

const (
	// StatusVerified means a candidate matched the recognized entity type set.
	StatusVerified Status = "machine-verified"
	// StatusAmbiguous means the name only matched a generic topic type.
	StatusAmbiguous Status = "ambiguous"
	// StatusInvisible means the knowledge graph returned nothing usable.
	StatusInvisible Status = "ai-invisible"
)

// SearchRequest is the incoming audit request.
type SearchRequest struct {
	Query string `json:"query"`
}

// EntityResult is the normalized candidate selected by the classifier.
// ResultScore keeps the upstream's unbounded native scale; a nil value means
// upstream gave no confidence signal for this candidate.
type EntityResult struct {
	Name        string   `json:"name"`
	EntityID    string   `json:"entityId,omitempty"`
	Types       []string `json:"types"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	ResultScore *float64 `json:"resultScore,omitempty"`
	Location    string   `json:"location,omitempty"`
}

// SearchResponse is the verdict returned to the caller. Result is present only
// for machine-verified and ambiguous statuses.
type SearchResponse struct {
	Status       Status        `json:"status"`
	Result       *EntityResult `json:"result,omitempty"`
	DisplayScore int           `json:"displayScore"`
	Band         string        `json:"band"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
