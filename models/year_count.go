package models

// YearCount represents total publications for one publish year
type YearCount struct {
	Year  int `db:"year" json:"year"`
	Count int `db:"publications" json:"publications"`
}
