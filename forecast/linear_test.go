package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLinearPerfectLine(t *testing.T) {
	points := []Point{
		{2016, 10}, {2017, 20}, {2018, 30}, {2019, 40}, {2020, 50},
	}
	fit, err := FitLinear(points)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, fit.Slope, 1e-9)
	assert.InDelta(t, 110.0, fit.Predict(2026), 1e-6)
}

func TestFitLinearClampsAtZero(t *testing.T) {
	points := []Point{
		{2016, 50}, {2017, 40}, {2018, 30}, {2019, 20}, {2020, 10},
	}
	fit, err := FitLinear(points)
	require.NoError(t, err)

	// Slope -10/yr crosses zero at 2021; far targets clamp to the floor.
	assert.Equal(t, 0.0, fit.Predict(2030))
}

func TestFitLinearNeedsTwoYears(t *testing.T) {
	_, err := FitLinear([]Point{{2020, 7}})
	assert.Error(t, err)

	// Repeated observations of one year still count as a single year.
	_, err = FitLinear([]Point{{2020, 7}, {2020, 9}})
	assert.Error(t, err)
}
