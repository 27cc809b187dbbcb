// Package report turns a classification outcome into the structured
// rhythm report handed to callers, and persists report history.
package report

import "time"

// Classification labels as they appear in reports. Index 0 of a binary
// label table is always the normal class.
const (
	ClassificationNormal    = "Normal"
	ClassificationIrregular = "Irregular"
)

// HeartRateMetrics is the raw metric snapshot embedded in a report.
// HeartRateVariability carries the heart rate standard deviation over
// the window, not an RR-interval measurement.
type HeartRateMetrics struct {
	MeanHeartRate        float64 `json:"mean_heart_rate"`
	HeartRateVariability float64 `json:"heart_rate_variability"`
	PNN50                float64 `json:"pnn50"`
}

// DataQuality is the quality snapshot embedded in a report.
type DataQuality struct {
	QualityScore     float64 `json:"quality_score"`
	HeartRateSamples int     `json:"heart_rate_samples"`
	HRVSamples       int     `json:"hrv_samples"`
}

// Report is the terminal pipeline artifact: a flat, serializable record
// of one analysis. Timestamp is the end of the analyzed window, so
// identical inputs always produce identical reports.
type Report struct {
	Timestamp              time.Time        `json:"timestamp"`
	RhythmClassification   string           `json:"rhythm_classification"`
	ConfidenceScore        float64          `json:"confidence_score"`
	IrregularProbability   float64          `json:"irregular_probability"`
	HeartRateMetrics       HeartRateMetrics `json:"heart_rate_metrics"`
	DataQuality            DataQuality      `json:"data_quality"`
	ClinicalInterpretation string           `json:"clinical_interpretation"`
	Recommendations        []string         `json:"recommendations"`
}
