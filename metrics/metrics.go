// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instruments for detection runs and the
// HTTP surface. A nil *Recorder is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status label values for DetectionsTotal.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder holds the registered collectors.
type Recorder struct {
	detections   *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	communities  *prometheus.GaugeVec
	modularity   *prometheus.GaugeVec
	httpRequests *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		detections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ncd_detections_total",
				Help: "Total number of community detection runs.",
			},
			[]string{"algorithm", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ncd_detection_duration_seconds",
				Help:    "Wall time of a detection run.",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"algorithm"},
		),
		communities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ncd_communities",
				Help: "Number of communities found by the last successful run.",
			},
			[]string{"algorithm"},
		),
		modularity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ncd_modularity",
				Help: "Modularity of the partition found by the last successful run.",
			},
			[]string{"algorithm"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ncd_http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
	}

	for _, c := range []prometheus.Collector{r.detections, r.duration, r.communities, r.modularity, r.httpRequests} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveDetection records a successful run.
func (r *Recorder) ObserveDetection(algorithm string, d time.Duration, count int, modularity float64) {
	if r == nil {
		return
	}
	r.detections.WithLabelValues(algorithm, StatusOK).Inc()
	r.duration.WithLabelValues(algorithm).Observe(d.Seconds())
	r.communities.WithLabelValues(algorithm).Set(float64(count))
	r.modularity.WithLabelValues(algorithm).Set(modularity)
}

// ObserveFailure records a failed run.
func (r *Recorder) ObserveFailure(algorithm string, d time.Duration) {
	if r == nil {
		return
	}
	r.detections.WithLabelValues(algorithm, StatusError).Inc()
	r.duration.WithLabelValues(algorithm).Observe(d.Seconds())
}

// ObserveRequest counts one HTTP request. path should be the route pattern.
func (r *Recorder) ObserveRequest(method, path, status string) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, path, status).Inc()
}
