package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/LeJavaPython/TelemetryHealthCare/internal/database"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/healthkit"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/report"
)

// SampleSource supplies the raw samples for one monitoring cycle.
// Implementations belong to the calling application: a health store
// export bridge in production, fixtures in tests.
type SampleSource interface {
	FetchSamples(ctx context.Context) (heartRate, variability []healthkit.Sample, err error)
}

// RunStatus summarizes the outcome of the latest monitoring cycle.
type RunStatus struct {
	At             time.Time
	Succeeded      bool
	Skipped        bool // not enough data yet; will retry next cycle
	Error          string
	ReportID       string
	Classification string
}

// Monitor re-runs the pipeline on fresh samples each cycle and persists
// every report. Safe for one scheduler goroutine plus concurrent status
// readers.
type Monitor struct {
	analyzer *Analyzer
	source   SampleSource
	repo     *report.Repository
	db       *database.DB
	log      zerolog.Logger

	mu      sync.RWMutex
	lastRun *RunStatus
}

// New wires a monitor from an analyzer, a sample source, and a report
// repository. The database handle is optional and only feeds the health
// snapshot's consistency check.
func New(analyzer *Analyzer, source SampleSource, repo *report.Repository, db *database.DB, log zerolog.Logger) *Monitor {
	return &Monitor{
		analyzer: analyzer,
		source:   source,
		repo:     repo,
		db:       db,
		log:      log.With().Str("component", "rhythm_monitor").Logger(),
	}
}

// Name implements Job.
func (m *Monitor) Name() string {
	return "rhythm_monitor"
}

// Run implements Job: one full monitoring cycle. A window that does not
// hold enough samples yet is not a failure; the cycle is skipped and the
// next one retries with whatever has accumulated since.
func (m *Monitor) Run() error {
	ctx := context.Background()

	heartRate, variability, err := m.source.FetchSamples(ctx)
	if err != nil {
		m.recordRun(RunStatus{At: time.Now(), Error: err.Error()})
		return fmt.Errorf("failed to fetch samples: %w", err)
	}

	result, err := m.analyzer.Analyze(heartRate, variability)
	if err != nil {
		var insufficient *healthkit.InsufficientDataError
		if errors.As(err, &insufficient) {
			m.log.Warn().
				Int("observed", insufficient.Observed).
				Int("required", insufficient.Required).
				Msg("Not enough data for this cycle, retrying next run")
			m.recordRun(RunStatus{At: time.Now(), Skipped: true, Error: err.Error()})
			return nil
		}
		m.recordRun(RunStatus{At: time.Now(), Error: err.Error()})
		return err
	}

	id, err := m.repo.Save(result)
	if err != nil {
		m.recordRun(RunStatus{At: time.Now(), Error: err.Error()})
		return err
	}

	m.recordRun(RunStatus{
		At:             time.Now(),
		Succeeded:      true,
		ReportID:       id,
		Classification: result.RhythmClassification,
	})
	return nil
}

// LastRun returns the most recent cycle outcome, nil before the first
// cycle.
func (m *Monitor) LastRun() *RunStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lastRun == nil {
		return nil
	}
	status := *m.lastRun
	return &status
}

func (m *Monitor) recordRun(status RunStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRun = &status
}
