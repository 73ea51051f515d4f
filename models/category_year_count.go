package models

// CategoryYearCount represents deduplicated publications for one subject
// category in one year. Source of truth for forecasting.
type CategoryYearCount struct {
	Year    int    `db:"year" json:"year"`
	Subject string `db:"subject" json:"subject"`
	Count   int    `db:"publications" json:"publications"`
}
