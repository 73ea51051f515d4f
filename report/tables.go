package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/bilimetrik/pubtrends/forecast"
	"github.com/bilimetrik/pubtrends/models"
)

const headLimit = 10

// PrintYearlyTotals prints the per-year totals table.
func PrintYearlyTotals(out io.Writer, rows []models.YearCount) {
	color.Yellow("\nTotal publications per year")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Year", "Publications"})
	for _, r := range head(rows) {
		table.Append([]string{strconv.Itoa(r.Year), strconv.Itoa(r.Count)})
	}
	table.Render()
}

// PrintUnitYearlyCounts prints the first rows of the per-unit yearly counts.
func PrintUnitYearlyCounts(out io.Writer, rows []models.UnitYearCount) {
	color.Yellow("\nPublications per year and unit")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Year", "Unit", "Publications"})
	for _, r := range head(rows) {
		table.Append([]string{strconv.Itoa(r.Year), r.Unit, strconv.Itoa(r.Count)})
	}
	table.Render()
}

// PrintTopAuthors prints the most prolific authors.
func PrintTopAuthors(out io.Writer, rows []models.AuthorCount) {
	color.Yellow("\nMost prolific authors")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Rank", "Author", "Publications"})
	for i, r := range head(rows) {
		table.Append([]string{strconv.Itoa(i + 1), r.Author, strconv.Itoa(r.Count)})
	}
	table.Render()
}

// PrintSubjectTotals prints publication counts per subject.
func PrintSubjectTotals(out io.Writer, rows []models.SubjectCount) {
	color.Yellow("\nPublications per subject")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Subject", "Publications"})
	for _, r := range head(rows) {
		table.Append([]string{r.Subject, strconv.Itoa(r.Count)})
	}
	table.Render()
}

// PrintCategoryYearlyCounts prints the first rows of the forecasting table.
func PrintCategoryYearlyCounts(out io.Writer, rows []models.CategoryYearCount) {
	color.Yellow("\nPublications per year and subject")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Year", "Subject", "Publications"})
	for _, r := range head(rows) {
		table.Append([]string{strconv.Itoa(r.Year), r.Subject, strconv.Itoa(r.Count)})
	}
	table.Render()
}

// PrintTopCitedAuthors prints the citation ranking.
func PrintTopCitedAuthors(out io.Writer, rows []models.AuthorCitations) {
	color.Yellow("\nMost cited authors")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Rank", "Author", "Citations"})
	for i, r := range head(rows) {
		table.Append([]string{strconv.Itoa(i + 1), r.Author, strconv.FormatInt(r.Citations, 10)})
	}
	table.Render()
}

// WriteSeriesCSV dumps one subject's yearly series to a CSV file in the
// working directory, for cross-checking against the source database.
func WriteSeriesCSV(path, subject string, points []forecast.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("series csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"year", "publications"}); err != nil {
		return fmt.Errorf("series csv: %w", err)
	}
	for _, p := range points {
		if err := w.Write([]string{strconv.Itoa(p.Year), strconv.Itoa(p.Count)}); err != nil {
			return fmt.Errorf("series csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("series csv: %w", err)
	}
	return nil
}

func head[T any](rows []T) []T {
	if len(rows) > headLimit {
		return rows[:headLimit]
	}
	return rows
}
