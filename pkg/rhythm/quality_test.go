package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func constantSeries(n int, value float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return values
}

func TestScoreQuality_PerfectWindow(t *testing.T) {
	// Plenty of steady heart rate samples plus ample variability data.
	score := ScoreQuality(constantSeries(60, 68), constantSeries(6, 45))
	assert.Equal(t, 1.0, score)
}

func TestScoreQuality_EmptyWindow(t *testing.T) {
	assert.Equal(t, 0.0, ScoreQuality(nil, nil))
}

func TestScoreQuality_SingleSampleSkipsStability(t *testing.T) {
	// One sample: no count tier reached and no defined coefficient of
	// variation, so nothing contributes.
	assert.Equal(t, 0.0, ScoreQuality([]float64{70}, nil))
}

func TestScoreQuality_Tiers(t *testing.T) {
	testCases := []struct {
		name        string
		heartRate   []float64
		variability []float64
		expected    float64
	}{
		{
			name:      "acceptable count, steady signal",
			heartRate: constantSeries(20, 70),
			expected:  0.2 + 0.3,
		},
		{
			name:      "good count, steady signal",
			heartRate: constantSeries(50, 70),
			expected:  0.4 + 0.3,
		},
		{
			name:        "one variability sample",
			heartRate:   constantSeries(20, 70),
			variability: []float64{42},
			expected:    0.2 + 0.1 + 0.3,
		},
		{
			name:        "ample variability samples",
			heartRate:   constantSeries(20, 70),
			variability: constantSeries(5, 42),
			expected:    0.2 + 0.3 + 0.3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreQuality(tc.heartRate, tc.variability)
			assert.InDelta(t, tc.expected, score, 1e-9)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestScoreQuality_MonotonicInSampleCount(t *testing.T) {
	variability := constantSeries(6, 45)

	previous := 0.0
	for _, n := range []int{5, 15, 25, 45, 55, 100} {
		score := ScoreQuality(constantSeries(n, 70), variability)
		assert.GreaterOrEqual(t, score, previous, "score dropped at %d samples", n)
		previous = score
	}
}

func TestScoreQuality_RewardsStability(t *testing.T) {
	steady := constantSeries(20, 70)

	// Alternating extremes: coefficient of variation well above 0.5.
	wild := make([]float64, 20)
	for i := range wild {
		if i%2 == 0 {
			wild[i] = 40
		} else {
			wild[i] = 160
		}
	}

	steadyScore := ScoreQuality(steady, nil)
	wildScore := ScoreQuality(wild, nil)

	assert.InDelta(t, 0.5, steadyScore, 1e-9)
	assert.InDelta(t, 0.2, wildScore, 1e-9)
	assert.Greater(t, steadyScore, wildScore)
}
