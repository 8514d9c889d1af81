package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder captures telemetry for the service recording workflow.
type Recorder interface {
	RecordService(kind string, duration time.Duration, err error)
	RecordReminderRegenerated(kind string, completed int64)
	RecordDocumentUpload(sizeBytes int64, err error)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordService(string, time.Duration, error) {}
func (Nop) RecordReminderRegenerated(string, int64) {}
func (Nop) RecordDocumentUpload(int64, error) {}

// PrometheusRecorder exports workflow and HTTP metrics to Prometheus.
type PrometheusRecorder struct {
	serviceDuration    *prometheus.HistogramVec
	serviceFailures    *prometheus.CounterVec
	remindersCreated   *prometheus.CounterVec
	remindersCompleted *prometheus.CounterVec
	uploadBytes        prometheus.Counter
	uploadFailures     prometheus.Counter
	httpDuration       *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the collectors on reg, reusing collectors
// that are already registered under the same name.
func NewPrometheusRecorder(namespace string, reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if namespace == "" {
		namespace = "servicelog"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &PrometheusRecorder{
		serviceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "record_service_duration_seconds",
			Help:      "Latency of the service recording transaction.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		serviceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_service_failures_total",
			Help:      "Service recordings that were rolled back.",
		}, []string{"kind"}),
		remindersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_created_total",
			Help:      "Reminders generated by recorded services.",
		}, []string{"kind"}),
		remindersCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_superseded_total",
			Help:      "Open reminders completed because a newer service was recorded.",
		}, []string{"kind"}),
		uploadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_uploaded_bytes_total",
			Help:      "Cumulative size of stored documents.",
		}),
		uploadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_upload_failures_total",
			Help:      "Rejected or failed document uploads.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	if err := register(reg, &r.serviceDuration); err != nil {
		return nil, err
	}
	if err := register(reg, &r.serviceFailures); err != nil {
		return nil, err
	}
	if err := register(reg, &r.remindersCreated); err != nil {
		return nil, err
	}
	if err := register(reg, &r.remindersCompleted); err != nil {
		return nil, err
	}
	if err := register(reg, &r.uploadBytes); err != nil {
		return nil, err
	}
	if err := register(reg, &r.uploadFailures); err != nil {
		return nil, err
	}
	if err := register(reg, &r.httpDuration); err != nil {
		return nil, err
	}
	return r, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c *C) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				*c = existing
				return nil
			}
		}
		return fmt.Errorf("register metric: %w", err)
	}
	return nil
}

func (r *PrometheusRecorder) RecordService(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.serviceDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if err != nil {
		r.serviceFailures.WithLabelValues(kind).Inc()
	}
}

func (r *PrometheusRecorder) RecordReminderRegenerated(kind string, completed int64) {
	if r == nil {
		return
	}
	r.remindersCreated.WithLabelValues(kind).Inc()
	if completed > 0 {
		r.remindersCompleted.WithLabelValues(kind).Add(float64(completed))
	}
}

func (r *PrometheusRecorder) RecordDocumentUpload(sizeBytes int64, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.uploadFailures.Inc()
		return
	}
	r.uploadBytes.Add(float64(sizeBytes))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware observes request latency labelled by the matched mux route template.
func (r *PrometheusRecorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		route := "unmatched"
		if current := mux.CurrentRoute(req); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		r.httpDuration.WithLabelValues(req.Method, route, strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
	})
}

var _ Recorder = (*PrometheusRecorder)(nil)
var _ Recorder = Nop{}
