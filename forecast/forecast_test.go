package forecast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() func(string) []Point {
	data := map[string][]Point{
		"Chemistry": {{2016, 10}, {2017, 20}, {2018, 30}, {2019, 40}, {2020, 50}},
		"Physics":   {{2016, 5}, {2017, 5}, {2018, 5}, {2019, 5}, {2020, 5}},
		"Sparse":    {{2020, 3}},
	}
	return func(subject string) []Point { return data[subject] }
}

func collectWarnings(warnings *[]string) Warnf {
	return func(format string, a ...interface{}) {
		*warnings = append(*warnings, fmt.Sprintf(format, a...))
	}
}

func TestRunLinear(t *testing.T) {
	var warnings []string
	results := Run([]string{"Chemistry", "Physics"}, 2026, KindLinear, testSeries(), collectWarnings(&warnings))

	require.Len(t, results, 2)
	assert.Empty(t, warnings)

	assert.Equal(t, "Chemistry", results[0].Subject)
	assert.Equal(t, 110, results[0].Predicted)
	assert.Equal(t, KindLinear, results[0].Kind)
	assert.NotNil(t, results[0].Linear)
	assert.Nil(t, results[0].Trend)

	assert.Equal(t, "Physics", results[1].Subject)
	assert.Equal(t, 5, results[1].Predicted)
}

func TestRunTrend(t *testing.T) {
	var warnings []string
	results := Run([]string{"Chemistry"}, 2026, KindTrend, testSeries(), collectWarnings(&warnings))

	require.Len(t, results, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, KindTrend, results[0].Kind)
	assert.NotNil(t, results[0].Trend)
	assert.Nil(t, results[0].Linear)
	assert.GreaterOrEqual(t, results[0].Predicted, 0)
}

func TestRunSkipsSparseSubjects(t *testing.T) {
	var warnings []string
	results := Run([]string{"Sparse", "Chemistry"}, 2026, KindLinear, testSeries(), collectWarnings(&warnings))

	// The one-year subject is warned about and excluded; the rest proceed.
	require.Len(t, results, 1)
	assert.Equal(t, "Chemistry", results[0].Subject)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Sparse")
}

func TestRunUnknownSubject(t *testing.T) {
	var warnings []string
	results := Run([]string{"Alchemy"}, 2026, KindLinear, testSeries(), collectWarnings(&warnings))

	assert.Empty(t, results)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Alchemy")
}

func TestRunKeepsDuplicates(t *testing.T) {
	var warnings []string
	results := Run([]string{"Chemistry", "Chemistry"}, 2026, KindLinear, testSeries(), collectWarnings(&warnings))
	assert.Len(t, results, 2)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"lm", KindLinear, true},
		{"LM", KindLinear, true},
		{"trend", KindTrend, true},
		{" Trend ", KindTrend, true},
		{"arima", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
