package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrUserExists    = errors.New("user with this username already exists")
	ErrProjectExists = errors.New("project with this name already exists")
)
