// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/ncd/config"
	"github.com/katalvlaran/ncd/converters"
	"github.com/katalvlaran/ncd/logger"
	"github.com/katalvlaran/ncd/pipeline"
	"github.com/katalvlaran/ncd/store"
)

// maxListLimit caps GET /v1/runs?limit.
const maxListLimit = 500

// DetectRequest is the body of POST /v1/detect. Detection fields that are
// absent keep their defaults.
type DetectRequest struct {
	Graph     converters.GraphDocument `json:"graph"`
	Detection config.Detection         `json:"detection"`
}

// RunResponse is a persisted run as returned by /v1/runs.
type RunResponse struct {
	ID          string          `json:"id"`
	Algorithm   string          `json:"algorithm"`
	Params      json.RawMessage `json:"params,omitempty"`
	Vertices    int             `json:"vertices"`
	Edges       int             `json:"edges"`
	Count       int             `json:"count"`
	Modularity  float64         `json:"modularity"`
	Assignments map[string]int  `json:"assignments,omitempty"`
	Communities [][]string      `json:"communities,omitempty"`
	DurationMS  int64           `json:"duration_ms"`
	CreatedAt   time.Time       `json:"created_at"`
}

// newRunResponse converts a record. Assignments are omitted when brief.
func newRunResponse(rec *store.Record, brief bool) RunResponse {
	resp := RunResponse{
		ID:         rec.ID,
		Algorithm:  rec.Algorithm,
		Vertices:   rec.Vertices,
		Edges:      rec.Edges,
		Count:      rec.Count,
		Modularity: rec.Modularity,
		DurationMS: rec.Duration.Milliseconds(),
		CreatedAt:  rec.CreatedAt,
	}
	if rec.Params != "" && json.Valid([]byte(rec.Params)) {
		resp.Params = json.RawMessage(rec.Params)
	}
	if !brief {
		doc := pipeline.RecordDocument(rec)
		resp.Assignments = doc.Assignments
		resp.Communities = doc.Communities
	}

	return resp
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleDetect runs one detection on the posted graph.
func (s *Server) handleDetect(c *gin.Context) {
	req := DetectRequest{Detection: config.DefaultDetection()}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRequest, err)
		return
	}
	g, err := converters.FromDocument(req.Graph)
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRequest, err)
		return
	}

	run, err := s.runner.Run(c.Request.Context(), g, req.Detection)
	switch {
	case err == nil:
	case run != nil:
		// fitted but not persisted
		s.log.Error("run not persisted", slog.String("run_id", run.ID), logger.Err(err))
		respondError(c, http.StatusInternalServerError, msgInternal, err)
		return
	case errors.Is(err, config.ErrInvalid), errors.Is(err, pipeline.ErrUnknownAlgorithm):
		respondError(c, http.StatusBadRequest, msgInvalidRequest, err)
		return
	default:
		respondError(c, http.StatusUnprocessableEntity, msgDetectFailed, err)
		return
	}

	c.JSON(http.StatusOK, run.Document())
}

// handleGetRun returns one stored run.
func (s *Server) handleGetRun(c *gin.Context) {
	if s.runner.Store == nil {
		respondError(c, http.StatusServiceUnavailable, msgNoHistory, nil)
		return
	}
	rec, err := s.runner.Store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, msgNotFound, err)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternal, err)
		return
	}

	c.JSON(http.StatusOK, newRunResponse(rec, false))
}

// handleListRuns returns the most recent runs without assignments.
func (s *Server) handleListRuns(c *gin.Context) {
	if s.runner.Store == nil {
		respondError(c, http.StatusServiceUnavailable, msgNoHistory, nil)
		return
	}
	limit := store.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxListLimit {
			respondError(c, http.StatusBadRequest, msgInvalidRequest,
				errors.New("limit must be an integer in [1, 500]"))
			return
		}
		limit = n
	}

	recs, err := s.runner.Store.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternal, err)
		return
	}
	out := make([]RunResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, newRunResponse(rec, true))
	}

	c.JSON(http.StatusOK, gin.H{"runs": out})
}
