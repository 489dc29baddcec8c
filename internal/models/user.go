package models

import (
	"time"
)

type Position string

const (
	PositionProgrammer Position = "PROGRAMMER"
	PositionDesigner   Position = "DESIGNER"
	PositionTester     Position = "TESTER"
	PositionManager    Position = "MANAGER"
	PositionAnalyst    Position = "ANALYST"
)

type User struct {
	ID        int        `db:"id"`
	Username  string     `db:"username"`
	Email     string     `db:"email"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Position  Position   `db:"position"`
	ProjectID *int       `db:"project_id"`
	CreatedAt *time.Time `db:"created_at"`
}
