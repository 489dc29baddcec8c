package models

import "time"

type Project struct {
	ID        int        `db:"id"`
	Name      string     `db:"name"`
	CreatedAt *time.Time `db:"created_at"`
}

type ProjectSummary struct {
	Name      string `db:"name"`
	UserCount int    `db:"user_count"`
}
