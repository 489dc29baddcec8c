package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"user-directory/internal/http/api"
	"user-directory/internal/lib/sl"

	"github.com/stretchr/testify/assert"
)

func NewLogger() *slog.Logger {
	return sl.NewDiscardLogger()
}

func DecodeErrorResponse(t *testing.T, body *bytes.Buffer) api.ErrorResponse {
	var resp api.ErrorResponse
	err := json.NewDecoder(body).Decode(&resp)
	assert.NoError(t, err)
	return resp
}

func DecodeUserRecords(t *testing.T, body *bytes.Buffer) []api.UserRecord {
	var resp []api.UserRecord
	err := json.NewDecoder(body).Decode(&resp)
	assert.NoError(t, err)
	return resp
}
