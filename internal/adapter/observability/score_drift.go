package observability

import (
	"log/slog"
	"sync"
)

const (
	defaultDriftWindow    = 20
	defaultDriftThreshold = 10.0
)

// ScoreDriftMonitor tracks recent total scores per domain against a baseline.
// Keyword tables can change at runtime, so a sustained shift in a domain's
// average score usually means the catalog moved under it.
type ScoreDriftMonitor struct {
	mu        sync.RWMutex
	baselines map[string]float64
	recent    map[string][]float64
	window    int
	threshold float64
}

// NewScoreDriftMonitor creates a monitor with the given rolling window size
// and drift threshold in total-score points.
func NewScoreDriftMonitor(window int, threshold float64) *ScoreDriftMonitor {
	if window <= 0 {
		window = defaultDriftWindow
	}
	if threshold <= 0 {
		threshold = defaultDriftThreshold
	}
	return &ScoreDriftMonitor{
		baselines: make(map[string]float64),
		recent:    make(map[string][]float64),
		window:    window,
		threshold: threshold,
	}
}

// SetBaseline pins the expected average total score for a domain.
func (m *ScoreDriftMonitor) SetBaseline(domain string, score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baselines[domain] = score
}

// Record adds one observed total score. The first full window establishes
// the baseline unless one was pinned; after that, drift beyond the threshold
// is logged and exported.
func (m *ScoreDriftMonitor) Record(domain string, score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scores := append(m.recent[domain], score)
	if len(scores) > m.window {
		scores = scores[1:]
	}
	m.recent[domain] = scores

	if len(scores) < m.window {
		return
	}

	avg := mean(scores)
	baseline, ok := m.baselines[domain]
	if !ok {
		m.baselines[domain] = avg
		slog.Info("score drift baseline established",
			slog.String("domain", domain),
			slog.Float64("baseline", avg))
		return
	}

	drift := avg - baseline
	if drift < 0 {
		drift = -drift
	}
	ScoreDriftGauge.WithLabelValues(domain).Set(drift)
	if drift > m.threshold {
		slog.Warn("score drift detected",
			slog.String("domain", domain),
			slog.Float64("drift", drift),
			slog.Float64("baseline", baseline),
			slog.Float64("threshold", m.threshold))
	}
}

// Drift returns the current absolute drift from baseline for a domain.
func (m *ScoreDriftMonitor) Drift(domain string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	baseline, ok := m.baselines[domain]
	if !ok {
		return 0
	}
	scores := m.recent[domain]
	if len(scores) == 0 {
		return 0
	}
	drift := mean(scores) - baseline
	if drift < 0 {
		drift = -drift
	}
	return drift
}

// Baseline returns the pinned or self-established baseline for a domain.
func (m *ScoreDriftMonitor) Baseline(domain string) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	score, ok := m.baselines[domain]
	return score, ok
}

// Recent returns a copy of the recorded scores for a domain.
func (m *ScoreDriftMonitor) Recent(domain string) []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scores := make([]float64, len(m.recent[domain]))
	copy(scores, m.recent[domain])
	return scores
}

// Reset clears all baselines and recorded scores.
func (m *ScoreDriftMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.baselines = make(map[string]float64)
	m.recent = make(map[string][]float64)
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
