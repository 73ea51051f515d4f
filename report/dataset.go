package report

import (
	"sort"

	"github.com/bilimetrik/pubtrends/forecast"
	"github.com/bilimetrik/pubtrends/models"
)

// CategoryTable is the in-memory (year, subject, count) aggregation the
// forecasting loop works from.
type CategoryTable struct {
	rows []models.CategoryYearCount
}

func NewCategoryTable(rows []models.CategoryYearCount) *CategoryTable {
	return &CategoryTable{rows: rows}
}

// Subjects returns the distinct canonical subject labels, sorted.
func (t *CategoryTable) Subjects() []string {
	seen := make(map[string]struct{})
	var subjects []string
	for _, r := range t.rows {
		if _, ok := seen[r.Subject]; ok {
			continue
		}
		seen[r.Subject] = struct{}{}
		subjects = append(subjects, r.Subject)
	}
	sort.Strings(subjects)
	return subjects
}

// LastYear returns the maximum year present, or 0 for an empty table.
func (t *CategoryTable) LastYear() int {
	last := 0
	for _, r := range t.rows {
		if r.Year > last {
			last = r.Year
		}
	}
	return last
}

// Series returns one subject's (year, count) pairs in ascending year order,
// summing any duplicate year rows.
func (t *CategoryTable) Series(subject string) []forecast.Point {
	byYear := make(map[int]int)
	for _, r := range t.rows {
		if r.Subject == subject {
			byYear[r.Year] += r.Count
		}
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	points := make([]forecast.Point, 0, len(years))
	for _, y := range years {
		points = append(points, forecast.Point{Year: y, Count: byYear[y]})
	}
	return points
}

// TopByRecentMean ranks subjects by their mean yearly count over the most
// recent window observed years and returns the top n labels.
func (t *CategoryTable) TopByRecentMean(n, window int) []string {
	cutoff := t.LastYear() - window + 1

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range t.rows {
		if r.Year < cutoff {
			continue
		}
		sums[r.Subject] += r.Count
		counts[r.Subject]++
	}

	type ranked struct {
		subject string
		mean    float64
	}
	all := make([]ranked, 0, len(sums))
	for subject, sum := range sums {
		all = append(all, ranked{subject, float64(sum) / float64(counts[subject])})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].mean != all[j].mean {
			return all[i].mean > all[j].mean
		}
		return all[i].subject < all[j].subject
	})

	if n > len(all) {
		n = len(all)
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = all[i].subject
	}
	return top
}

// SumBySubject returns total counts per subject, descending.
func (t *CategoryTable) SumBySubject() []models.SubjectCount {
	sums := make(map[string]int)
	for _, r := range t.rows {
		sums[r.Subject] += r.Count
	}
	out := make([]models.SubjectCount, 0, len(sums))
	for subject, sum := range sums {
		out = append(out, models.SubjectCount{Subject: subject, Count: sum})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// Pivot reshapes the table for the heatmap: rows are the top n subjects by
// total count, columns every year from the table's min to max, missing cells
// zero-filled.
func (t *CategoryTable) Pivot(n int) (years []int, subjects []string, grid [][]float64) {
	if len(t.rows) == 0 {
		return nil, nil, nil
	}

	first, last := t.rows[0].Year, t.rows[0].Year
	for _, r := range t.rows {
		if r.Year < first {
			first = r.Year
		}
		if r.Year > last {
			last = r.Year
		}
	}
	for y := first; y <= last; y++ {
		years = append(years, y)
	}

	totals := t.SumBySubject()
	if n > len(totals) {
		n = len(totals)
	}
	for i := 0; i < n; i++ {
		subjects = append(subjects, totals[i].Subject)
	}

	index := make(map[string]int, len(subjects))
	for i, s := range subjects {
		index[s] = i
	}
	grid = make([][]float64, len(subjects))
	for i := range grid {
		grid[i] = make([]float64, len(years))
	}
	for _, r := range t.rows {
		if i, ok := index[r.Subject]; ok {
			grid[i][r.Year-first] += float64(r.Count)
		}
	}
	return years, subjects, grid
}
