package models

// UnitYearCount represents distinct publications for one institutional unit in one year
type UnitYearCount struct {
	Year  int    `db:"year" json:"year"`
	Unit  string `db:"unit" json:"unit"`
	Count int    `db:"publications" json:"publications"`
}
