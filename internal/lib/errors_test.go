package lib_test

import (
	"errors"
	"testing"

	"user-directory/internal/lib"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	base := errors.New("boom")

	err := lib.Err("user_repo.FindAll", base)

	assert.EqualError(t, err, "user_repo.FindAll: boom")
	assert.ErrorIs(t, err, base)
}
