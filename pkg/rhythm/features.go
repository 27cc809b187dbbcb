package rhythm

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/formulas"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/healthkit"
)

// VariabilityEstimator names the curve that produced the variability
// proxy. The two curves saturate at different ceilings, so the choice
// changes calibration and is recorded alongside the value.
type VariabilityEstimator string

const (
	EstimatorRMSSDCurve      VariabilityEstimator = "rmssd_curve"
	EstimatorRateStdDevCurve VariabilityEstimator = "rate_stddev_curve"
)

// FeatureVector is the fixed-arity input handed to the classifier, built
// exactly once per window and never mutated afterwards.
type FeatureVector struct {
	MeanRate         float64
	RateStdDev       float64
	VariabilityProxy float64

	DataQualityScore     float64
	SampleCountPrimary   int
	SampleCountSecondary int

	Estimator VariabilityEstimator
	WindowEnd time.Time
}

// Values returns the model-input features in their fixed order: mean
// rate, rate standard deviation, variability proxy.
func (f FeatureVector) Values() []float64 {
	return []float64{f.MeanRate, f.RateStdDev, f.VariabilityProxy}
}

// FeatureExtractor turns a windowed pair of signal series into one
// feature vector. Stateless across calls.
type FeatureExtractor struct {
	log zerolog.Logger
}

// NewFeatureExtractor creates a feature extractor.
func NewFeatureExtractor(log zerolog.Logger) *FeatureExtractor {
	return &FeatureExtractor{
		log: log.With().Str("component", "feature_extractor").Logger(),
	}
}

// Extract computes the feature vector for one window. The window must
// hold at least healthkit.MinPrimarySamples heart rate samples.
func (e *FeatureExtractor) Extract(w healthkit.Window) (FeatureVector, error) {
	if w.Primary.Len() < healthkit.MinPrimarySamples {
		return FeatureVector{}, &healthkit.InsufficientDataError{
			Observed:     w.Primary.Len(),
			Required:     healthkit.MinPrimarySamples,
			WindowLength: w.End.Sub(w.Start),
		}
	}

	heartRate := w.Primary.Values()
	variability := w.Secondary.Values()

	meanRate := formulas.Mean(heartRate)
	// Sample standard deviation; model calibration fixes this convention.
	rateStdDev := formulas.StdDev(heartRate)
	proxy, estimator := variabilityProxy(w.Secondary, rateStdDev)

	features := FeatureVector{
		MeanRate:             meanRate,
		RateStdDev:           rateStdDev,
		VariabilityProxy:     proxy,
		DataQualityScore:     ScoreQuality(heartRate, variability),
		SampleCountPrimary:   w.Primary.Len(),
		SampleCountSecondary: w.Secondary.Len(),
		Estimator:            estimator,
		WindowEnd:            w.End,
	}

	e.log.Debug().
		Float64("mean_rate", features.MeanRate).
		Float64("rate_stddev", features.RateStdDev).
		Float64("variability_proxy", features.VariabilityProxy).
		Str("estimator", string(features.Estimator)).
		Float64("quality_score", features.DataQualityScore).
		Msg("Extracted feature vector")

	return features, nil
}

// variabilityProxy picks the RMSSD curve when the window holds any RMSSD
// samples, otherwise falls back to the heart rate dispersion curve.
func variabilityProxy(secondary healthkit.SignalSeries, rateStdDev float64) (float64, VariabilityEstimator) {
	var rmssd []float64
	for _, s := range secondary.Samples {
		if s.MetricKind == healthkit.MetricRMSSD {
			rmssd = append(rmssd, s.Value)
		}
	}

	if len(rmssd) > 0 {
		return estimatePNN50FromRMSSD(formulas.Mean(rmssd)), EstimatorRMSSDCurve
	}
	return estimatePNN50FromRateStdDev(rateStdDev), EstimatorRateStdDevCurve
}
