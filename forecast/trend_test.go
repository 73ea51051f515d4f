package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTrendLinearSeries(t *testing.T) {
	points := []Point{
		{2016, 10}, {2017, 20}, {2018, 30}, {2019, 40}, {2020, 50},
	}
	fit, err := FitTrend(points, 2026)
	require.NoError(t, err)

	// The curve covers every year from the first observation to the target.
	assert.Equal(t, 2016, fit.Years[0])
	assert.Equal(t, 2026, fit.Years[len(fit.Years)-1])

	// A perfectly linear series leaves the changepoint deltas at zero, so
	// the extrapolation continues the observed slope.
	v, ok := fit.At(2026)
	require.True(t, ok)
	assert.InDelta(t, 110.0, v, 1.0)
}

func TestFitTrendClampsAtZero(t *testing.T) {
	points := []Point{
		{2016, 40}, {2017, 30}, {2018, 20}, {2019, 10}, {2020, 0},
	}
	fit, err := FitTrend(points, 2030)
	require.NoError(t, err)

	v, ok := fit.At(2030)
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestFitTrendTwoObservations(t *testing.T) {
	// The smallest fittable series has no interior changepoints and reduces
	// to a plain line.
	fit, err := FitTrend([]Point{{2019, 5}, {2020, 15}}, 2022)
	require.NoError(t, err)

	v, ok := fit.At(2022)
	require.True(t, ok)
	assert.InDelta(t, 35.0, v, 1e-6)
}

func TestFitTrendNeedsTwoYears(t *testing.T) {
	_, err := FitTrend([]Point{{2020, 7}}, 2026)
	assert.Error(t, err)
}

func TestFitTrendMissingYear(t *testing.T) {
	fit, err := FitTrend([]Point{{2019, 5}, {2020, 15}}, 2022)
	require.NoError(t, err)

	_, ok := fit.At(2030)
	assert.False(t, ok)
}
