package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilimetrik/pubtrends/config"
	"github.com/bilimetrik/pubtrends/forecast"
	"github.com/bilimetrik/pubtrends/models"
	"github.com/bilimetrik/pubtrends/report"
)

func testTable() *report.CategoryTable {
	var rows []models.CategoryYearCount
	for i, count := range []int{10, 20, 30, 40, 50} {
		rows = append(rows, models.CategoryYearCount{Year: 2016 + i, Subject: "Chemistry", Count: count})
	}
	for i := 0; i < 5; i++ {
		rows = append(rows, models.CategoryYearCount{Year: 2016 + i, Subject: "Physics, Applied", Count: 5})
	}
	rows = append(rows, models.CategoryYearCount{Year: 2020, Subject: "Astronomy", Count: 3})
	return report.NewCategoryTable(rows)
}

func testMenu(input string) (*Menu, *bytes.Buffer) {
	cfg := &config.Config{
		DefaultTargetYear: 2026,
		DefaultModel:      "trend",
		CountStrategy:     config.CountMulti,
		ChartDir:          ".",
	}
	table := testTable()
	out := &bytes.Buffer{}
	m := New(strings.NewReader(input), out, table, table.SumBySubject(), cfg)
	m.saveChart = func(dir string, res forecast.Result) (string, error) {
		return dir + "/" + res.Subject + ".png", nil
	}
	return m, out
}

func TestRunUserSubjectsLinear(t *testing.T) {
	// Mode 2, no vocabulary listing, two subjects, default year, lm model,
	// no save, no repeat.
	m, out := testMenu("2\n\nchemistry, physics\n\nlm\n\n\n")
	require.NoError(t, m.Run())

	s := out.String()
	assert.Contains(t, s, "chemistry -> Chemistry")
	assert.Contains(t, s, "physics -> Physics, Applied")
	assert.Contains(t, s, "about 110 publications expected in Chemistry in 2026")
	assert.Contains(t, s, "about 5 publications expected in Physics, Applied in 2026")
	assert.Contains(t, s, "Save all forecast charts?")
	assert.Contains(t, s, "Goodbye.")
}

func TestRunTopTen(t *testing.T) {
	// Mode 1 needs no subject input, only year and model.
	m, out := testMenu("1\n\n\n\n\n")
	require.NoError(t, m.Run())

	s := out.String()
	assert.Contains(t, s, "Top 10 subjects by mean publications over the last 5 years")
	assert.Contains(t, s, "expected in Chemistry in 2026")
}

func TestRunInvalidMenuChoiceNeverAdvances(t *testing.T) {
	// Bad choices re-prompt; the stream then closes, which exits cleanly.
	m, out := testMenu("9\nabc\n")
	require.NoError(t, m.Run())

	s := out.String()
	assert.Equal(t, 2, strings.Count(s, "Invalid choice. Valid options: 1, 2"))
	assert.NotContains(t, s, "Which year")
}

func TestRunYearValidation(t *testing.T) {
	// Allowed window is [2021, 2120]; out-of-range and garbage re-prompt.
	m, out := testMenu("2\n\nchemistry\n2000\n99999\nnot-a-year\n2030\nlm\n\n\n")
	require.NoError(t, m.Run())

	s := out.String()
	assert.Contains(t, s, "Must be at least 2021.")
	assert.Contains(t, s, "Must be at most 2120.")
	assert.Contains(t, s, "Please enter a valid year")
	assert.Contains(t, s, "in 2030")
}

func TestRunDefaultYearClampedToAllowedMin(t *testing.T) {
	m, out := testMenu("2\n\nchemistry\n\nlm\n\n\n")
	m.defaultTargetYear = 2018 // before the allowed window
	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "ENTER = 2021")
	assert.Contains(t, out.String(), "in 2021")
}

func TestRunNoMatchReturnsToMenu(t *testing.T) {
	// An unmatched subject list reports failure and redisplays the menu
	// without asking for a year.
	m, out := testMenu("2\n\nalchemy\n")
	require.NoError(t, m.Run())

	s := out.String()
	assert.Contains(t, s, "No matching subjects found.")
	assert.NotContains(t, s, "Which year")
	assert.Equal(t, 2, strings.Count(s, "Choose one of the options below"))
}

func TestRunSparseSubjectReturnsToMenu(t *testing.T) {
	// Astronomy has a single observation: it is skipped, zero results come
	// back, and control returns to the menu without save or repeat prompts.
	m, out := testMenu("2\n\nastronomy\n\nlm\n")
	require.NoError(t, m.Run())

	s := out.String()
	assert.Contains(t, s, "No subject could be forecast.")
	assert.NotContains(t, s, "Save all forecast charts?")
	assert.NotContains(t, s, "Forecast another subject?")
	assert.Equal(t, 2, strings.Count(s, "Choose one of the options below"))
}

func TestRunSaveCharts(t *testing.T) {
	var saved []string
	m, out := testMenu("2\n\nchemistry\n\nlm\nyes\n\n")
	m.saveChart = func(dir string, res forecast.Result) (string, error) {
		saved = append(saved, res.Subject)
		return dir + "/x.png", nil
	}
	require.NoError(t, m.Run())

	assert.Equal(t, []string{"Chemistry"}, saved)
	assert.Contains(t, out.String(), "Saved ./x.png.")
}

func TestRunRepeatDiscardsSession(t *testing.T) {
	// "evet" restarts at the menu; the second pass selects a different
	// subject and only that one is forecast.
	input := "2\n\nchemistry\n\nlm\n\nevet\n" +
		"2\n\nphysics\n\nlm\n\nhayır\n"
	m, out := testMenu(input)
	require.NoError(t, m.Run())

	s := out.String()
	assert.Equal(t, 2, strings.Count(s, "Choose one of the options below"))
	assert.Equal(t, 1, strings.Count(s, "expected in Chemistry"))
	assert.Equal(t, 1, strings.Count(s, "expected in Physics, Applied"))
}

func TestRunDefaultModelIsTrend(t *testing.T) {
	// Empty model input takes the configured default.
	m, out := testMenu("2\n\nchemistry\n\n\n\n\n")
	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "[ENTER = trend]")
	assert.Contains(t, out.String(), "expected in Chemistry in 2026")
}

func TestAskYesNoTokens(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true}, {"YES\n", true}, {"e\n", true}, {"evet\n", true},
		{"n\n", false}, {"no\n", false}, {"h\n", false}, {"hayır\n", false},
		{"maybe\nyes\n", true},
	}
	for _, tt := range tests {
		m, _ := testMenu(tt.in)
		got, err := m.askYesNo("? ", false)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
