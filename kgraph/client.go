package kgraph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/apex/log"
)

// Client handles knowledge graph search API interactions. The API key stays
// server-side: it is injected as a query parameter on the outbound call and
// never appears in errors or logs.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limit      int
}

// NewClient creates a knowledge graph search client.
func NewClient(baseURL, apiKey string, limit int, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limit:      limit,
	}
}

// Candidate is one entity returned by the knowledge graph search, already
// normalized from the wire format. Types preserves upstream order. A nil
// ResultScore means upstream attached no confidence value.
type Candidate struct {
	EntityID    string
	Name        string
	Types       []string
	Description string
	URL         string
	ResultScore *float64
	Location    string
}

// UpstreamError reports a non-success status from the knowledge graph API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("knowledge graph search returned status %d", e.StatusCode)
}

// MalformedResponseError reports an upstream body that could not be decoded.
type MalformedResponseError struct {
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed knowledge graph response: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// typeList tolerates the upstream "@type" field arriving as either a single
// string or an array of strings.
type typeList []string

func (t *typeList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = typeList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = typeList(many)
	return nil
}

// redactKey scrubs the key query parameter from transport errors. url.Error
// embeds the full request URL, credential included, in its message.
func redactKey(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		params := u.Query()
		if params.Has("key") {
			params.Set("key", "REDACTED")
			u.RawQuery = params.Encode()
			urlErr.URL = u.String()
		}
	}
	return urlErr
}

type wireSearchResponse struct {
	ItemListElement []wireSearchResult `json:"itemListElement"`
}

type wireSearchResult struct {
	Result      wireEntity `json:"result"`
	ResultScore *float64   `json:"resultScore"`
}

type wireEntity struct {
	ID                  string   `json:"@id"`
	Name                string   `json:"name"`
	Types               typeList `json:"@type"`
	Description         string   `json:"description"`
	URL                 string   `json:"url"`
	DetailedDescription struct {
		ArticleBody string `json:"articleBody"`
		URL         string `json:"url"`
	} `json:"detailedDescription"`
	Address struct {
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
	} `json:"address"`
}

// Search performs one entity search and returns the ranked candidate list in
// upstream order. Missing optional fields on any candidate are tolerated.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(c.limit))
	params.Set("indent", "false")
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", redactKey(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("knowledge graph request failed: %w", redactKey(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.WithFields(log.Fields{
			"status": resp.StatusCode,
			"query":  query,
		}).Errorf("knowledge graph search failed: %s", string(body))
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var wire wireSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, &MalformedResponseError{Cause: err}
	}

	candidates := make([]Candidate, 0, len(wire.ItemListElement))
	for _, element := range wire.ItemListElement {
		entity := element.Result

		description := entity.Description
		if description == "" {
			description = entity.DetailedDescription.ArticleBody
		}

		entityURL := entity.URL
		if entityURL == "" {
			entityURL = entity.DetailedDescription.URL
		}

		candidates = append(candidates, Candidate{
			EntityID:    entity.ID,
			Name:        entity.Name,
			Types:       []string(entity.Types),
			Description: description,
			URL:         entityURL,
			ResultScore: element.ResultScore,
			Location:    entity.Address.AddressLocality,
		})
	}

	return candidates, nil
}
