// Package observability exposes the tracker's Prometheus collectors.
package observability

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "exercise_tracker"

var (
	usersRegistered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "users",
		Name:      "registered_total",
		Help:      "Users successfully registered.",
	})
	exercisesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "exercises",
		Name:      "logged_total",
		Help:      "Exercise entries successfully stored.",
	})
	lastExerciseGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "exercises",
		Name:      "last_logged_timestamp_seconds",
		Help:      "Unix timestamp of the most recently stored exercise entry.",
	})
	logResultSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "log",
		Name:      "result_entries",
		Help:      "Entries returned per log query.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 500},
	})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status class.",
	}, []string{"method", "route", "status"})
	httpRequestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "HTTP requests currently being served.",
	})
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method, route and status class.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(
		usersRegistered,
		exercisesLogged,
		lastExerciseGauge,
		logResultSize,
		httpRequestsTotal,
		httpRequestsInFlight,
		httpRequestDuration,
	)
}

func RecordUserRegistered() {
	usersRegistered.Inc()
}

// RecordExerciseLogged counts an entry and moves the last-logged watermark.
func RecordExerciseLogged(ts time.Time) {
	exercisesLogged.Inc()
	if ts.IsZero() {
		return
	}
	lastExerciseGauge.Set(float64(ts.Unix()))
}

func RecordLogQuery(entries int) {
	logResultSize.Observe(float64(entries))
}

// RegisterPoolMetrics exposes pool statistics, read on every scrape.
// Registering the same pool metrics twice is not an error.
func RegisterPoolMetrics(reg prometheus.Registerer, pool *pgxpool.Pool) error {
	gauges := map[string]func(*pgxpool.Stat) float64{
		"acquired_connections": func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) },
		"idle_connections":     func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) },
		"total_connections":    func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) },
		"max_connections":      func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) },
	}

	for name, read := range gauges {
		read := read
		gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      name,
			Help:      "pgx pool " + name + ".",
		}, func() float64 { return read(pool.Stat()) })

		if err := reg.Register(gauge); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}

	return nil
}

// HTTPRequestStarted marks a request in flight; call the returned func when done.
func HTTPRequestStarted() func() {
	httpRequestsInFlight.Inc()
	return httpRequestsInFlight.Dec
}

// ObserveHTTPRequest records one finished request. route is the matched route
// template, never the raw path.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	labels := []string{method, route, fmt.Sprintf("%dxx", status/100)}
	httpRequestsTotal.WithLabelValues(labels...).Inc()
	httpRequestDuration.WithLabelValues(labels...).Observe(elapsed.Seconds())
}
