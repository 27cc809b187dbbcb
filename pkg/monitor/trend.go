package monitor

import (
	"github.com/rs/zerolog"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/formulas"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/report"
)

const (
	trendShortPeriod = 5
	trendLongPeriod  = 20
)

// TrendSummary describes drift across recent reports. Moving averages
// are nil when no report history exists yet.
type TrendSummary struct {
	Reports int

	// Short and long moving averages of the mean heart rate
	MeanRateSMA *float64
	MeanRateEMA *float64

	// Exponential moving average of the irregular probability
	IrregularEMA *float64

	// Fraction of the summarized reports classified irregular
	IrregularShare float64
}

// TrendAnalyzer summarizes persisted report history. Read-side only: the
// summary never feeds back into inference.
type TrendAnalyzer struct {
	repo *report.Repository
	log  zerolog.Logger
}

// NewTrendAnalyzer creates a trend analyzer over the report repository.
func NewTrendAnalyzer(repo *report.Repository, log zerolog.Logger) *TrendAnalyzer {
	return &TrendAnalyzer{
		repo: repo,
		log:  log.With().Str("component", "trend_analyzer").Logger(),
	}
}

// Summarize computes moving averages over at most limit recent reports.
func (t *TrendAnalyzer) Summarize(limit int) (TrendSummary, error) {
	stored, err := t.repo.ListRecent(limit)
	if err != nil {
		return TrendSummary{}, err
	}

	summary := TrendSummary{Reports: len(stored)}
	if len(stored) == 0 {
		return summary, nil
	}

	// ListRecent is newest first; the indicators expect chronological
	// order.
	rates := make([]float64, 0, len(stored))
	irregular := make([]float64, 0, len(stored))
	irregularCount := 0
	for i := len(stored) - 1; i >= 0; i-- {
		r := stored[i].Report
		rates = append(rates, r.HeartRateMetrics.MeanHeartRate)
		irregular = append(irregular, r.IrregularProbability)
		if r.RhythmClassification == report.ClassificationIrregular {
			irregularCount++
		}
	}

	summary.MeanRateSMA = formulas.CalculateSMA(rates, trendShortPeriod)
	summary.MeanRateEMA = formulas.CalculateEMA(rates, trendLongPeriod)
	summary.IrregularEMA = formulas.CalculateEMA(irregular, trendShortPeriod)
	summary.IrregularShare = float64(irregularCount) / float64(len(stored))

	t.log.Debug().
		Int("reports", summary.Reports).
		Float64("irregular_share", summary.IrregularShare).
		Msg("Summarized report trends")

	return summary, nil
}
