// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"delivery-service/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the HTTP and range-check metrics of the service.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	RangeChecks   *prometheus.CounterVec
	RangeDistance prometheus.Histogram
}

// NewCollector registers the collectors against reg, defaulting to the
// global registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	checks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_range_checks_total",
		Help: "Delivery range checks, labeled by outcome.",
	}, []string{"outcome"})
	distance := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "delivery_range_distance_meters",
		Help:    "Vendor to customer distance of successful range checks.",
		Buckets: []float64{250, 500, 1000, 2000, 5000, 10000, 20000, 50000},
	})

	for name, c := range map[string]prometheus.Collector{
		"http_requests_total":            requests,
		"http_request_duration_seconds":  durations,
		"delivery_range_checks_total":    checks,
		"delivery_range_distance_meters": distance,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register %s: %w", name, err)
		}
	}

	return &Collector{
		gatherer:      gatherer,
		HTTPRequests:  requests,
		HTTPDurations: durations,
		RangeChecks:   checks,
		RangeDistance: distance,
	}, nil
}

// ObserveRequest records one handled HTTP request
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDurations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveRangeCheck records the outcome of a range check
func (c *Collector) ObserveRangeCheck(check models.RangeCheck, err error) {
	if c == nil {
		return
	}

	var notFound *models.LocationNotFoundError
	switch {
	case errors.As(err, &notFound):
		c.RangeChecks.WithLabelValues("location_not_found").Inc()
	case err != nil:
		c.RangeChecks.WithLabelValues("error").Inc()
	case check.InRange:
		c.RangeChecks.WithLabelValues("in_range").Inc()
		c.RangeDistance.Observe(float64(check.DistanceMeters))
	default:
		c.RangeChecks.WithLabelValues("out_of_range").Inc()
		c.RangeDistance.Observe(float64(check.DistanceMeters))
	}
}

// Handler exposes the registered collectors
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
