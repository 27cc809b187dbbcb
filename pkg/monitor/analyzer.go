// Package monitor runs the rhythm classification pipeline: once per call
// through the Analyzer, or continuously on a cron schedule with report
// history, trend summaries, and a runtime health surface.
package monitor

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/healthkit"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/inference"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/report"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/rhythm"
)

// Analyzer runs the full classification pipeline over one pair of raw
// sample lists: validate, window, extract features, classify, report.
// Every stage is pure; the classifier is loaded once and only read, so
// one Analyzer is safe for concurrent use.
type Analyzer struct {
	validator  *healthkit.Validator
	windower   *healthkit.Windower
	extractor  *rhythm.FeatureExtractor
	reporter   *report.Reporter
	classifier inference.Classifier

	windowLength time.Duration
	log          zerolog.Logger
}

// NewAnalyzer wires the pipeline stages around a loaded classifier.
func NewAnalyzer(classifier inference.Classifier, windowLength time.Duration, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		validator:    healthkit.NewValidator(log),
		windower:     healthkit.NewWindower(log),
		extractor:    rhythm.NewFeatureExtractor(log),
		reporter:     report.NewReporter(log),
		classifier:   classifier,
		windowLength: windowLength,
		log:          log.With().Str("component", "rhythm_analyzer").Logger(),
	}
}

// Analyze produces one report from raw heart rate and variability
// samples. The caller gets either a complete report or a typed error,
// never a partial report. The classifier is not consulted until the
// window has passed every data check.
func (a *Analyzer) Analyze(heartRate, variability []healthkit.Sample) (report.Report, error) {
	primary, err := a.validator.Validate(heartRate, healthkit.SignalHeartRate)
	if err != nil {
		return report.Report{}, err
	}
	secondary, err := a.validator.Validate(variability, healthkit.SignalVariability)
	if err != nil {
		return report.Report{}, err
	}

	window, err := a.windower.Window(primary, secondary, a.windowLength)
	if err != nil {
		return report.Report{}, err
	}

	features, err := a.extractor.Extract(window)
	if err != nil {
		return report.Report{}, err
	}

	prediction := inference.Classify(a.classifier, features.Values())
	result := a.reporter.Build(prediction, features)

	a.log.Info().
		Str("classification", result.RhythmClassification).
		Float64("confidence", result.ConfidenceScore).
		Int("heart_rate_samples", features.SampleCountPrimary).
		Int("hrv_samples", features.SampleCountSecondary).
		Msg("Rhythm analysis complete")

	return result, nil
}
