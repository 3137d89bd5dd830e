// SPDX-License-Identifier: MIT

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncd/builder"
	"github.com/katalvlaran/ncd/converters"
	"github.com/katalvlaran/ncd/metrics"
	"github.com/katalvlaran/ncd/pipeline"
	"github.com/katalvlaran/ncd/server"
	"github.com/katalvlaran/ncd/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memStore is an in-memory store.Store ordered by insertion.
type memStore struct {
	mu      sync.Mutex
	order   []string
	records map[string]*store.Record
	listErr error
}

func newMemStore() *memStore { return &memStore{records: map[string]*store.Record{}} }

func (m *memStore) Save(_ context.Context, rec *store.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return nil
}

func (m *memStore) Get(_ context.Context, id string) (*store.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.records[id]; ok {
		return rec, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) List(_ context.Context, limit int) ([]*store.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*store.Record
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[m.order[i]])
	}
	return out, nil
}

func (m *memStore) Close() error { return nil }

type fixture struct {
	srv   *server.Server
	store *memStore
	reg   *prometheus.Registry
}

func newFixture(t *testing.T, withStore bool) *fixture {
	t.Helper()
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	f := &fixture{reg: reg}
	runner := &pipeline.Runner{Recorder: rec}
	if withStore {
		f.store = newMemStore()
		runner.Store = f.store
	}
	f.srv = server.New(runner, reg, nil)
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(w, req)
	return w
}

func ringBody(t *testing.T, detection map[string]interface{}) []byte {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.RingOfCliques(3, 4))
	require.NoError(t, err)
	body := map[string]interface{}{"graph": converters.ToDocument(g)}
	if detection != nil {
		body["detection"] = detection
	}
	out, err := json.Marshal(body)
	require.NoError(t, err)
	return out
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, false)
	w := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestDetect(t *testing.T) {
	f := newFixture(t, true)

	t.Run("defaults", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/detect", ringBody(t, nil))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var doc converters.ResultDocument
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "louvain", doc.Algorithm)
		assert.Equal(t, 3, doc.Count)
		assert.Len(t, doc.Assignments, 12)
		assert.NotEmpty(t, doc.RunID)

		_, err := f.store.Get(context.Background(), doc.RunID)
		assert.NoError(t, err)
	})

	t.Run("partial detection keeps defaults", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/detect", ringBody(t, map[string]interface{}{
			"algorithm": "lpa",
			"lpa":       map[string]interface{}{"mode": "semi"},
		}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var doc converters.ResultDocument
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "lpa", doc.Algorithm)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/detect", []byte(`{"graph":`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad edge", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/detect", []byte(`{"graph":{"edges":[{"from":"","to":"a"}]}}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/detect", ringBody(t, map[string]interface{}{"algorithm": "infomap"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp server.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Message, "infomap")
	})

	t.Run("empty graph", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/detect", []byte(`{"graph":{"edges":[]}}`))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("negative weight", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/detect",
			[]byte(`{"graph":{"edges":[{"from":"a","to":"b","weight":-1}]}}`))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestRuns(t *testing.T) {
	f := newFixture(t, true)
	var ids []string
	for i := 0; i < 3; i++ {
		w := f.do(t, http.MethodPost, "/v1/detect", ringBody(t, nil))
		require.Equal(t, http.StatusOK, w.Code)
		var doc converters.ResultDocument
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		ids = append(ids, doc.RunID)
	}

	t.Run("get", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/v1/runs/"+ids[0], nil)
		require.Equal(t, http.StatusOK, w.Code)

		var run server.RunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
		assert.Equal(t, ids[0], run.ID)
		assert.Equal(t, 12, run.Vertices)
		assert.Len(t, run.Communities, 3)
		assert.Contains(t, string(run.Params), `"algorithm":"louvain"`)
	})

	t.Run("missing", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/v1/runs/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/v1/runs?limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Runs []server.RunResponse `json:"runs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Runs, 2)
		assert.Equal(t, ids[2], body.Runs[0].ID)
		assert.Nil(t, body.Runs[0].Assignments)
	})

	t.Run("bad limit", func(t *testing.T) {
		for _, q := range []string{"0", "-1", "x", "501"} {
			w := f.do(t, http.MethodGet, "/v1/runs?limit="+q, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		f.store.listErr = errors.New("locked")
		defer func() { f.store.listErr = nil }()
		w := f.do(t, http.MethodGet, "/v1/runs", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRuns_NoStore(t *testing.T) {
	f := newFixture(t, false)
	assert.Equal(t, http.StatusServiceUnavailable, f.do(t, http.MethodGet, "/v1/runs", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, f.do(t, http.MethodGet, "/v1/runs/x", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, false)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/v1/detect", ringBody(t, nil)).Code)
	f.do(t, http.MethodGet, "/v1/runs/x", nil)

	w := f.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	var lines []string
	for _, l := range strings.Split(body, "\n") {
		if strings.HasPrefix(l, "ncd_detections_total") || strings.HasPrefix(l, "ncd_http_requests_total") {
			lines = append(lines, l)
		}
	}
	sort.Strings(lines)
	assert.Equal(t, []string{
		`ncd_detections_total{algorithm="louvain",status="ok"} 1`,
		`ncd_http_requests_total{method="GET",path="/v1/runs/:id",status="503"} 1`,
		`ncd_http_requests_total{method="POST",path="/v1/detect",status="200"} 1`,
	}, lines)
}
