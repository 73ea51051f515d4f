package models

// AuthorCitations represents the summed citation count for one author
type AuthorCitations struct {
	Author    string `db:"author" json:"author"`
	Citations int64  `db:"citations" json:"citations"`
}
