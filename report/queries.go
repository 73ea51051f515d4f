// Package report issues the fixed aggregation queries against the harvest
// schema, materializes each as a model slice and prints the console tables.
package report

import (
	"database/sql"
	"fmt"

	"github.com/bilimetrik/pubtrends/config"
	"github.com/bilimetrik/pubtrends/models"
)

// FetchYearlyTotals returns total publications per publish year.
func FetchYearlyTotals(db *sql.DB, yearMin, yearMax int) ([]models.YearCount, error) {
	query := `
        SELECT source_publish_year AS year, COUNT(*) AS publications
        FROM wos_hit
        WHERE source_publish_year BETWEEN $1 AND $2
        GROUP BY source_publish_year
        ORDER BY year
    `
	rows, err := db.Query(query, yearMin, yearMax)
	if err != nil {
		return nil, fmt.Errorf("yearly totals: %w", err)
	}
	defer rows.Close()

	var out []models.YearCount
	for rows.Next() {
		var r models.YearCount
		if err := rows.Scan(&r.Year, &r.Count); err != nil {
			return nil, fmt.Errorf("yearly totals: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchUnitYearlyCounts returns distinct publications per (year, unit)
// through the author/researcher-ID/staff/unit joins.
func FetchUnitYearlyCounts(db *sql.DB, yearMin, yearMax int) ([]models.UnitYearCount, error) {
	query := `
        SELECT wh.source_publish_year AS year, yu.name AS unit,
               COUNT(DISTINCT wh.hit_id) AS publications
        FROM wos_hit wh
        JOIN wos_author wa ON wh.hit_id = wa.hit_id
        JOIN cu_author_rid cr ON wa.researcher_id = cr.researcher_id
        JOIN cu_author ca ON cr.cu_author_id = ca.id
        JOIN yoksis_unit yu ON ca.yoksis_id = yu.yoksis_id
        WHERE wh.source_publish_year BETWEEN $1 AND $2
        GROUP BY wh.source_publish_year, yu.name
        ORDER BY wh.source_publish_year, publications DESC
    `
	rows, err := db.Query(query, yearMin, yearMax)
	if err != nil {
		return nil, fmt.Errorf("unit yearly counts: %w", err)
	}
	defer rows.Close()

	var out []models.UnitYearCount
	for rows.Next() {
		var r models.UnitYearCount
		if err := rows.Scan(&r.Year, &r.Unit, &r.Count); err != nil {
			return nil, fmt.Errorf("unit yearly counts: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchTopAuthors returns distinct publication counts per author, descending.
func FetchTopAuthors(db *sql.DB, yearMin, yearMax int) ([]models.AuthorCount, error) {
	query := `
        SELECT ca.full_name AS author, COUNT(DISTINCT wh.hit_id) AS publications
        FROM wos_hit wh
        JOIN wos_author wa ON wh.hit_id = wa.hit_id
        JOIN cu_author_rid cr ON wa.researcher_id = cr.researcher_id
        JOIN cu_author ca ON cr.cu_author_id = ca.id
        WHERE wh.source_publish_year BETWEEN $1 AND $2
        GROUP BY ca.full_name
        ORDER BY publications DESC
    `
	rows, err := db.Query(query, yearMin, yearMax)
	if err != nil {
		return nil, fmt.Errorf("top authors: %w", err)
	}
	defer rows.Close()

	var out []models.AuthorCount
	for rows.Next() {
		var r models.AuthorCount
		if err := rows.Scan(&r.Author, &r.Count); err != nil {
			return nil, fmt.Errorf("top authors: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchSubjectTotals returns total publications per subject category, with
// one count per distinct (publication, subject) pair.
func FetchSubjectTotals(db *sql.DB, yearMin, yearMax int) ([]models.SubjectCount, error) {
	query := `
        SELECT t.value AS subject, COUNT(*) AS publications
        FROM (
            SELECT DISTINCT wa.hit_id, wa.value
            FROM wos_hit_attribute wa
            JOIN wos_hit wh ON wa.hit_id = wh.hit_id
            WHERE wa.name = 'category_info.subject'
              AND wh.source_publish_year BETWEEN $1 AND $2
        ) t
        GROUP BY t.value
        ORDER BY publications DESC
    `
	rows, err := db.Query(query, yearMin, yearMax)
	if err != nil {
		return nil, fmt.Errorf("subject totals: %w", err)
	}
	defer rows.Close()

	var out []models.SubjectCount
	for rows.Next() {
		var r models.SubjectCount
		if err := rows.Scan(&r.Subject, &r.Count); err != nil {
			return nil, fmt.Errorf("subject totals: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchCategoryYearlyCounts returns the deduplicated (year, subject, count)
// rows the forecasting loop runs on. Strategy "multi" counts every
// (publication, subject) pair once; "single" collapses each publication to
// its first subject.
func FetchCategoryYearlyCounts(db *sql.DB, yearMin, yearMax int, strategy string) ([]models.CategoryYearCount, error) {
	inner := `
            SELECT DISTINCT wh.source_publish_year AS year, wa.value AS subject, wa.hit_id
            FROM wos_hit_attribute wa
            JOIN wos_hit wh ON wa.hit_id = wh.hit_id
            WHERE wa.name = 'category_info.subject'
              AND wh.source_publish_year BETWEEN $1 AND $2
    `
	if strategy == config.CountSingle {
		inner = `
            SELECT wh.source_publish_year AS year, MIN(wa.value) AS subject, wa.hit_id
            FROM wos_hit_attribute wa
            JOIN wos_hit wh ON wa.hit_id = wh.hit_id
            WHERE wa.name = 'category_info.subject'
              AND wh.source_publish_year BETWEEN $1 AND $2
            GROUP BY wh.source_publish_year, wa.hit_id
        `
	}
	query := `
        SELECT t.year, t.subject, COUNT(*) AS publications
        FROM (` + inner + `) t
        GROUP BY t.year, t.subject
        ORDER BY t.year, publications DESC
    `
	rows, err := db.Query(query, yearMin, yearMax)
	if err != nil {
		return nil, fmt.Errorf("category yearly counts: %w", err)
	}
	defer rows.Close()

	var out []models.CategoryYearCount
	for rows.Next() {
		var r models.CategoryYearCount
		if err := rows.Scan(&r.Year, &r.Subject, &r.Count); err != nil {
			return nil, fmt.Errorf("category yearly counts: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchTopCitedAuthors returns summed citation counts per author, descending.
// Unlike the other queries this one is not bound to the year window.
func FetchTopCitedAuthors(db *sql.DB) ([]models.AuthorCitations, error) {
	query := `
        SELECT ca.full_name AS author, SUM(wh.citation_count) AS citations
        FROM wos_author wa
        JOIN wos_hit wh ON wa.hit_id = wh.hit_id
        JOIN cu_author_rid cr ON wa.researcher_id = cr.researcher_id
        JOIN cu_author ca ON cr.cu_author_id = ca.id
        WHERE wh.citation_count IS NOT NULL AND ca.full_name IS NOT NULL
        GROUP BY ca.full_name
        ORDER BY citations DESC
    `
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("top cited authors: %w", err)
	}
	defer rows.Close()

	var out []models.AuthorCitations
	for rows.Next() {
		var r models.AuthorCitations
		if err := rows.Scan(&r.Author, &r.Citations); err != nil {
			return nil, fmt.Errorf("top cited authors: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
