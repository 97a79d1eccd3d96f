package observability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_analyses_total",
			Help: "Total number of resume analyses by domain and source",
		},
		[]string{"domain", "source"},
	)
	AnalysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resume_analysis_duration_seconds",
			Help:    "Resume analysis duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"source"},
	)

	ExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_extractions_total",
			Help: "Total number of document text extractions by format and outcome",
		},
		[]string{"format", "outcome"},
	)

	// Scoring outcome distributions
	TotalScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resume_total_score",
			Help:    "Distribution of total resume scores ([0,100])",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
	SectionScoreHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resume_section_score",
			Help:    "Distribution of per-section scores ([0,10])",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		[]string{"section"},
	)
	ScoreDriftGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "resume_score_drift",
			Help: "Absolute drift of the recent average total score from baseline per domain",
		},
		[]string{"domain"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(AnalysesTotal)
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(ExtractionsTotal)
	prometheus.MustRegister(TotalScoreHistogram)
	prometheus.MustRegister(SectionScoreHistogram)
	prometheus.MustRegister(ScoreDriftGauge)
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			// fallback when route pattern is unavailable
			route = r.URL.Path
		}
		method := r.Method
		status := ww.Status()
		HTTPRequestsTotal.WithLabelValues(route, method, http.StatusText(status)).Inc()
		HTTPRequestDuration.WithLabelValues(route, method).Observe(dur)
	})
}

// ObserveAnalysis records one completed analysis and its resulting total score.
func ObserveAnalysis(domain, source string, totalScore float64, dur time.Duration) {
	AnalysesTotal.WithLabelValues(domain, source).Inc()
	AnalysisDuration.WithLabelValues(source).Observe(dur.Seconds())
	if totalScore >= 0 && totalScore <= 100 {
		TotalScoreHistogram.Observe(totalScore)
	}
}

// ObserveSectionScore records a per-section score.
func ObserveSectionScore(section string, score float64) {
	if score >= 0 && score <= 10 {
		SectionScoreHistogram.WithLabelValues(section).Observe(score)
	}
}

// ObserveExtraction records a text extraction attempt by document format.
func ObserveExtraction(format string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	ExtractionsTotal.WithLabelValues(format, outcome).Inc()
}
