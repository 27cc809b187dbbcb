package rhythm

import "math"

// True pNN50 needs beat-to-beat RR intervals, which summary exports do
// not carry. These curves approximate it from the metrics that are
// available; treat the output as a proxy, never as a measurement.
const (
	// Saturating curve over the mean RMSSD in the window
	rmssdCurveScale    = 150.0
	rmssdCurveExponent = 1.5
	rmssdProxyCeiling  = 0.6

	// Fallback curve over heart rate dispersion, with a lower ceiling to
	// reflect the weaker evidence
	rateStdDevCurveScale   = 50.0
	rateStdDevProxyCeiling = 0.4
)

// estimatePNN50FromRMSSD maps the mean RMSSD reading onto a pNN50
// estimate in [0, 0.6].
func estimatePNN50FromRMSSD(rmssdMean float64) float64 {
	curve := math.Pow(rmssdMean/rmssdCurveScale, rmssdCurveExponent)
	return math.Min(rmssdProxyCeiling, math.Max(0.0, curve))
}

// estimatePNN50FromRateStdDev maps heart rate dispersion onto a pNN50
// estimate in [0, 0.4]. Used only when the window holds no RMSSD samples.
func estimatePNN50FromRateStdDev(rateStdDev float64) float64 {
	return math.Min(rateStdDevProxyCeiling, math.Max(0.0, rateStdDev/rateStdDevCurveScale))
}
