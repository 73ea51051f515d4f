package main

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/bilimetrik/pubtrends/charts"
	"github.com/bilimetrik/pubtrends/config"
	"github.com/bilimetrik/pubtrends/menu"
	"github.com/bilimetrik/pubtrends/report"
)

// Chemistry serves as the reference series for the CSV cross-check dump.
const debugSubject = "Chemistry"

func init() {
	// Load .env file; fall through to the process environment when absent.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	table := runAggregations(db, cfg)

	m := menu.New(os.Stdin, os.Stdout, table, table.SumBySubject(), cfg)
	if err := m.Run(); err != nil {
		log.Fatal(err)
	}
}

// runAggregations issues the fixed queries, prints each table, renders the
// static charts and returns the category table the forecasting loop runs on.
// Query failure here means the database is unusable, so it is fatal.
func runAggregations(db *sql.DB, cfg *config.Config) *report.CategoryTable {
	yearly, err := report.FetchYearlyTotals(db, cfg.YearMin, cfg.YearMax)
	if err != nil {
		log.Fatal(err)
	}
	report.PrintYearlyTotals(os.Stdout, yearly)
	renderChart(charts.SaveYearlyTotals(chartPath(cfg, "publications_per_year.png"), yearly))

	units, err := report.FetchUnitYearlyCounts(db, cfg.YearMin, cfg.YearMax)
	if err != nil {
		log.Fatal(err)
	}
	report.PrintUnitYearlyCounts(os.Stdout, units)
	renderChart(charts.SaveUnitTotals(chartPath(cfg, "publications_per_unit.png"), units, 10))

	authors, err := report.FetchTopAuthors(db, cfg.YearMin, cfg.YearMax)
	if err != nil {
		log.Fatal(err)
	}
	report.PrintTopAuthors(os.Stdout, authors)
	renderChart(charts.SaveTopAuthors(chartPath(cfg, "most_prolific_authors.png"), authors, 10))

	subjects, err := report.FetchSubjectTotals(db, cfg.YearMin, cfg.YearMax)
	if err != nil {
		log.Fatal(err)
	}
	report.PrintSubjectTotals(os.Stdout, subjects)
	renderChart(charts.SaveTopSubjects(chartPath(cfg, "most_published_subjects.png"), subjects, 10))

	categoryRows, err := report.FetchCategoryYearlyCounts(db, cfg.YearMin, cfg.YearMax, cfg.CountStrategy)
	if err != nil {
		log.Fatal(err)
	}
	report.PrintCategoryYearlyCounts(os.Stdout, categoryRows)
	table := report.NewCategoryTable(categoryRows)

	years, top, grid := table.Pivot(20)
	renderChart(charts.SaveCategoryHeatmap(chartPath(cfg, "subject_year_heatmap.png"), years, top, grid))

	if series := table.Series(debugSubject); len(series) > 0 {
		if err := report.WriteSeriesCSV(chartPath(cfg, "debug_chemistry_yearly.csv"), debugSubject, series); err != nil {
			color.Red("Error writing debug CSV: %v", err)
		}
	}

	cited, err := report.FetchTopCitedAuthors(db)
	if err != nil {
		log.Fatal(err)
	}
	report.PrintTopCitedAuthors(os.Stdout, cited)
	renderChart(charts.SaveTopCitedAuthors(chartPath(cfg, "most_cited_authors.png"), cited, 10))

	return table
}

func chartPath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.ChartDir, name)
}

// renderChart reports a failed render and moves on; the charts are
// byproducts of tables already printed.
func renderChart(err error) {
	if err != nil {
		color.Red("Error rendering chart: %v", err)
	}
}
