package report

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/inference"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/rhythm"
)

const (
	// At or above this confidence the interpretation drops its hedging.
	highConfidenceThreshold = 0.8
	// Below this confidence an irregular call asks for ECG confirmation.
	confirmConfidenceThreshold = 0.7
	// Below this quality score the report adds data hygiene advice.
	lowQualityThreshold = 0.5
)

// Reporter maps a prediction and its feature snapshot onto the final
// structured report. A pure rule table: identical inputs produce
// identical reports, recommendations included.
type Reporter struct {
	log zerolog.Logger
}

// NewReporter creates a reporter.
func NewReporter(log zerolog.Logger) *Reporter {
	return &Reporter{
		log: log.With().Str("component", "reporter").Logger(),
	}
}

// Build assembles the report for one prediction.
func (r *Reporter) Build(prediction inference.Prediction, features rhythm.FeatureVector) Report {
	report := Report{
		Timestamp:            features.WindowEnd,
		RhythmClassification: prediction.Label,
		ConfidenceScore:      prediction.Confidence,
		IrregularProbability: irregularProbability(prediction.Distribution),
		HeartRateMetrics: HeartRateMetrics{
			MeanHeartRate:        features.MeanRate,
			HeartRateVariability: features.RateStdDev,
			PNN50:                features.VariabilityProxy,
		},
		DataQuality: DataQuality{
			QualityScore:     features.DataQualityScore,
			HeartRateSamples: features.SampleCountPrimary,
			HRVSamples:       features.SampleCountSecondary,
		},
		ClinicalInterpretation: interpret(prediction.Label, prediction.Confidence, features.MeanRate),
		Recommendations:        recommend(prediction.Label, prediction.Confidence, features.DataQualityScore),
	}

	r.log.Info().
		Str("classification", report.RhythmClassification).
		Float64("confidence", report.ConfidenceScore).
		Float64("quality_score", report.DataQuality.QualityScore).
		Msg("Report built")

	return report
}

// irregularProbability extracts the probability mass assigned away from
// the normal class. Index 0 is the normal class in every shipped label
// table.
func irregularProbability(distribution []float64) float64 {
	if len(distribution) == 2 {
		return distribution[1]
	}
	if len(distribution) > 0 {
		return 1 - distribution[0]
	}
	return 0
}

// interpret selects one of four fixed templates on (label, confidence).
func interpret(label string, confidence, meanRate float64) string {
	if label == ClassificationNormal {
		if confidence >= highConfidenceThreshold {
			return fmt.Sprintf("High confidence normal rhythm detected. Heart rate %.0f BPM within normal range.", meanRate)
		}
		return fmt.Sprintf("Likely normal rhythm, but consider additional monitoring. Heart rate %.0f BPM.", meanRate)
	}

	if confidence >= highConfidenceThreshold {
		return fmt.Sprintf("High confidence irregular rhythm detected. Heart rate %.0f BPM. Recommend medical evaluation.", meanRate)
	}
	return fmt.Sprintf("Possible irregular rhythm detected. Heart rate %.0f BPM. Consider further assessment.", meanRate)
}

// recommend appends advice in fixed priority order: follow-up on an
// irregular call first, then data hygiene, then general wellness.
func recommend(label string, confidence, quality float64) []string {
	var recs []string

	if label == ClassificationIrregular {
		recs = append(recs,
			"Consult with a healthcare provider about irregular rhythm detection",
			"Continue regular monitoring with Apple Watch",
		)
		if confidence < confirmConfidenceThreshold {
			recs = append(recs, "Consider additional ECG recordings for confirmation")
		}
	}

	if quality < lowQualityThreshold {
		recs = append(recs,
			"Improve data quality by ensuring proper Apple Watch fit",
			"Take readings during rest periods for better accuracy",
		)
	}

	recs = append(recs,
		"Maintain regular physical activity as recommended by your doctor",
		"Continue monitoring trends over time",
	)

	return recs
}
