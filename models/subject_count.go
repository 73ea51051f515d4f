package models

// SubjectCount represents total publications carrying one subject category
type SubjectCount struct {
	Subject string `db:"subject" json:"subject"`
	Count   int    `db:"publications" json:"publications"`
}
