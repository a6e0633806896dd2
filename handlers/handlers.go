package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"brand-visibility-service/config"
	"brand-visibility-service/kgraph"
	"brand-visibility-service/models"
	"brand-visibility-service/services"
	"brand-visibility-service/utils"
	"brand-visibility-service/version"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// EntitySearcher is the upstream knowledge graph dependency of the handler.
type EntitySearcher interface {
	Search(ctx context.Context, query string) ([]kgraph.Candidate, error)
}

type SearchHandler struct {
	config     *config.Config
	searcher   EntitySearcher
	classifier *services.Classifier
	scorer     *services.Scorer
}

func NewSearchHandler(cfg *config.Config, searcher EntitySearcher, classifier *services.Classifier, scorer *services.Scorer) *SearchHandler {
	return &SearchHandler{
		config:     cfg,
		searcher:   searcher,
		classifier: classifier,
		scorer:     scorer,
	}
}

// HealthCheck returns service health status
func (h *SearchHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "brand-visibility-service",
		"version": version.Get("brand-visibility-service"),
	})
}

// Search audits one brand name against the knowledge graph and returns the
// classification verdict with its display score.
func (h *SearchHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Query is required"})
		return
	}

	query := utils.TrimQuery(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Query is required"})
		return
	}

	if h.config.KGAPIKey == "" {
		log.Error("KG_API_KEY not configured")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Server misconfigured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(),
		time.Duration(h.config.UpstreamTimeoutSeconds)*time.Second)
	defer cancel()

	candidates, err := h.searcher.Search(ctx, query)
	if err != nil {
		h.handleSearchError(c, query, err)
		return
	}

	status, result := h.classifier.Classify(query, candidates)
	score, band := h.scorer.Score(status, result)

	log.WithFields(log.Fields{
		"query":      query,
		"status":     status,
		"score":      score,
		"band":       band,
		"candidates": len(candidates),
	}).Info("search.complete")

	c.JSON(http.StatusOK, models.SearchResponse{
		Status:       status,
		Result:       result,
		DisplayScore: score,
		Band:         band,
	})
}

// handleSearchError maps upstream failures onto the error contract. All
// failures are terminal for the request; nothing is retried.
func (h *SearchHandler) handleSearchError(c *gin.Context, query string, err error) {
	var upstreamErr *kgraph.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.WithFields(log.Fields{
			"query":  query,
			"status": upstreamErr.StatusCode,
		}).Error("search.upstream_error")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: upstreamErr.Error()})
		return
	}

	var malformedErr *kgraph.MalformedResponseError
	if errors.As(err, &malformedErr) {
		log.Errorf("Malformed upstream response for %q: %v", query, err)
		c.JSON(http.StatusInternalServerError,
			models.ErrorResponse{Error: utils.CleanErrorMessage(malformedErr.Error())})
		return
	}

	log.Errorf("Entity search failed for %q: %v", query, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Entity search failed"})
}
