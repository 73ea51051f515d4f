package models

// AuthorCount represents distinct publications attributed to one author
type AuthorCount struct {
	Author string `db:"author" json:"author"`
	Count  int    `db:"publications" json:"publications"`
}
