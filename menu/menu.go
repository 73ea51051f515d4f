// Package menu runs the interactive forecasting loop: select subjects, pick
// a target year and model, forecast, optionally save the fit charts, repeat.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/bilimetrik/pubtrends/charts"
	"github.com/bilimetrik/pubtrends/config"
	"github.com/bilimetrik/pubtrends/forecast"
	"github.com/bilimetrik/pubtrends/models"
	"github.com/bilimetrik/pubtrends/report"
)

const (
	topSubjectCount = 10
	recentYearsSpan = 5
	// Forecasts may reach at most this many years past the last observation.
	maxHorizon = 100
)

const divider = "------------------------------------------------------------"

// Menu drives the forecasting loop over the aggregated category table.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer

	table         *report.CategoryTable
	subjectTotals []models.SubjectCount
	aliases       *forecast.AliasMap

	allowedMin int
	allowedMax int

	defaultTargetYear int
	defaultKind       forecast.Kind
	chartDir          string

	// saveChart is swappable in tests.
	saveChart func(dir string, res forecast.Result) (string, error)
}

// session holds one pass's selections; a fresh one is built every time
// control returns to the menu, so nothing leaks between iterations.
type session struct {
	subjects   []string
	targetYear int
	kind       forecast.Kind
	results    []forecast.Result
}

// New builds the loop over the aggregated data. subjectTotals supplies the
// display order for the full vocabulary listing.
func New(in io.Reader, out io.Writer, table *report.CategoryTable, subjectTotals []models.SubjectCount, cfg *config.Config) *Menu {
	lastYear := table.LastYear()
	kind, ok := forecast.ParseKind(cfg.DefaultModel)
	if !ok {
		kind = forecast.KindTrend
	}
	return &Menu{
		in:                bufio.NewScanner(in),
		out:               out,
		table:             table,
		subjectTotals:     subjectTotals,
		aliases:           forecast.NewAliasMap(table.Subjects()),
		allowedMin:        lastYear + 1,
		allowedMax:        lastYear + maxHorizon,
		defaultTargetYear: cfg.DefaultTargetYear,
		defaultKind:       kind,
		chartDir:          cfg.ChartDir,
		saveChart:         charts.SaveForecast,
	}
}

// Run loops until the user declines to repeat or the input stream closes.
func (m *Menu) Run() error {
	for {
		m.showMenu()
		choice, err := m.askChoice("Your choice (1/2): ", []string{"1", "2"}, "")
		if err != nil {
			return m.finish(err)
		}

		s := &session{}
		switch choice {
		case "1":
			s.subjects = m.topSubjects()
		case "2":
			if err := m.collectUserSubjects(s); err != nil {
				return m.finish(err)
			}
		}

		if len(s.subjects) == 0 {
			fmt.Fprintln(m.out, color.YellowString("No matching subjects found. Please try again."))
			fmt.Fprintln(m.out, divider)
			continue
		}

		if err := m.askTargetAndModel(s); err != nil {
			return m.finish(err)
		}

		s.results = forecast.Run(s.subjects, s.targetYear, s.kind, m.table.Series, m.warnf)
		for _, res := range s.results {
			fmt.Fprintf(m.out, "Forecast: about %d publications expected in %s in %d.\n",
				res.Predicted, res.Subject, res.TargetYear)
			fmt.Fprintln(m.out, divider)
		}

		if len(s.results) == 0 {
			fmt.Fprintln(m.out, "No subject could be forecast.")
			fmt.Fprintln(m.out, divider)
			continue
		}
		if err := m.offerSave(s); err != nil {
			return m.finish(err)
		}

		fmt.Fprintln(m.out, "Forecast run complete.")
		fmt.Fprintln(m.out, divider)

		again, err := m.askYesNo("Forecast another subject? (yes/no): ", false)
		if err != nil {
			return m.finish(err)
		}
		if !again {
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		}
	}
}

func (m *Menu) showMenu() {
	fmt.Fprintln(m.out, divider)
	fmt.Fprintln(m.out, "Choose one of the options below to run a forecast:")
	fmt.Fprintln(m.out, "1 - Forecast the top 10 subjects by publication count")
	fmt.Fprintln(m.out, "2 - Forecast specific subjects")
	fmt.Fprintln(m.out, divider)
}

// topSubjects ranks subjects by mean yearly count over the most recent five
// observed years and resolves the top ten through the alias matcher.
func (m *Menu) topSubjects() []string {
	top := m.table.TopByRecentMean(topSubjectCount, recentYearsSpan)

	fmt.Fprintln(m.out, divider)
	fmt.Fprintf(m.out, "Top %d subjects by mean publications over the last %d years:\n", topSubjectCount, recentYearsSpan)
	for i, subject := range top {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, subject)
	}

	tokens := make([]string, len(top))
	for i, subject := range top {
		tokens[i] = strings.ToLower(subject)
	}
	return m.aliases.MatchAll(tokens)
}

// collectUserSubjects asks for a comma-separated subject list, optionally
// listing the vocabulary first, and resolves the tokens through the matcher.
func (m *Menu) collectUserSubjects(s *session) error {
	show, err := m.askYesNo("Would you like to see the list of available subjects? (yes/no): ", false)
	if err != nil {
		return err
	}
	if show {
		fmt.Fprintln(m.out, divider)
		fmt.Fprintln(m.out, "All subjects available for forecasting:")
		fmt.Fprintln(m.out, divider)
		for _, sc := range m.subjectTotals {
			fmt.Fprintln(m.out, sc.Subject)
		}
	}

	var tokens []string
	for len(tokens) == 0 {
		fmt.Fprintln(m.out, "Enter the subject(s) to forecast, separated by commas:")
		raw, err := m.readLine()
		if err != nil {
			return err
		}
		tokens = forecast.SplitSubjects(raw)
		if len(tokens) == 0 {
			fmt.Fprintln(m.out, color.YellowString("Please enter at least one subject."))
		}
	}

	for _, token := range tokens {
		if canon := m.aliases.Match(token); canon != "" {
			fmt.Fprintf(m.out, "%s -> %s\n", token, canon)
			s.subjects = append(s.subjects, canon)
		}
	}
	return nil
}

// askTargetAndModel validates the target year against the allowed window and
// resolves the model choice.
func (m *Menu) askTargetAndModel(s *session) error {
	fmt.Fprintln(m.out, divider)

	defYear := m.defaultTargetYear
	if defYear < m.allowedMin {
		defYear = m.allowedMin
	}
	yearPrompt := fmt.Sprintf("Which year should be forecast? (%d-%d | ENTER = %d): ",
		m.allowedMin, m.allowedMax, defYear)
	year, err := m.askInt(yearPrompt, defYear, m.allowedMin, m.allowedMax)
	if err != nil {
		return err
	}
	s.targetYear = year

	modelPrompt := fmt.Sprintf("Which model? (trend/lm) [ENTER = %s]: ", m.defaultKind)
	choice, err := m.askChoice(modelPrompt, []string{string(forecast.KindTrend), string(forecast.KindLinear)}, string(m.defaultKind))
	if err != nil {
		return err
	}
	s.kind, _ = forecast.ParseKind(choice)
	return nil
}

// offerSave writes one chart per result when the user accepts.
func (m *Menu) offerSave(s *session) error {
	save, err := m.askYesNo("Save all forecast charts? (yes/no): ", false)
	if err != nil {
		return err
	}
	if !save {
		fmt.Fprintln(m.out, "Charts not saved.")
		fmt.Fprintln(m.out, divider)
		return nil
	}
	for _, res := range s.results {
		path, err := m.saveChart(m.chartDir, res)
		if err != nil {
			fmt.Fprintln(m.out, color.RedString("Could not save chart for %s: %v", res.Subject, err))
			continue
		}
		fmt.Fprintf(m.out, "Saved %s.\n", path)
	}
	return nil
}

func (m *Menu) warnf(format string, a ...interface{}) {
	fmt.Fprintln(m.out, color.YellowString(format, a...))
}

// finish maps a closed input stream to a clean exit; anything else is a real
// read error.
func (m *Menu) finish(err error) error {
	if err == io.EOF {
		fmt.Fprintln(m.out, "Goodbye.")
		return nil
	}
	return err
}
