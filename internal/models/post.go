package models

type Post struct {
	ID        int64  `db:"id" json:"id"`
	AccountID int64  `db:"account_id" json:"account_id"`
	Title     string `db:"title" json:"title"`
	Body      string `db:"body" json:"body"`
}
