package validator_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"tzconv/shared/failure"
	"tzconv/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Datetime string `json:"datetime" validate:"required,max=16"`
	Zone     string `json:"zone"     validate:"required"`
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       io.Reader
		wantErr    string
		wantResult testRequest
	}{
		{
			name:       "valid body",
			body:       strings.NewReader(`{"datetime":"2024-01-15T10:00","zone":"UTC"}`),
			wantResult: testRequest{Datetime: "2024-01-15T10:00", Zone: "UTC"},
		},
		{
			name:    "nil body",
			body:    nil,
			wantErr: "No data provided",
		},
		{
			name:    "empty body",
			body:    strings.NewReader("  \n"),
			wantErr: "No data provided",
		},
		{
			name:    "null body",
			body:    strings.NewReader("null"),
			wantErr: "No data provided",
		},
		{
			name:    "empty object",
			body:    strings.NewReader("{}"),
			wantErr: "No data provided",
		},
		{
			name:    "missing field",
			body:    strings.NewReader(`{"datetime":"2024-01-15T10:00"}`),
			wantErr: "All fields are required",
		},
		{
			name:    "empty field",
			body:    strings.NewReader(`{"datetime":"","zone":"UTC"}`),
			wantErr: "All fields are required",
		},
		{
			name:    "field too long",
			body:    strings.NewReader(`{"datetime":"2024-01-15T10:00:00.000000","zone":"UTC"}`),
			wantErr: "datetime must be at most 16 characters",
		},
		{
			name:    "array body",
			body:    strings.NewReader(`["2024-01-15"]`),
			wantErr: "failed to decode request body",
		},
		{
			name:    "wrong field type",
			body:    strings.NewReader(`{"datetime":20240115,"zone":"UTC"}`),
			wantErr: "failed to decode request body",
		},
		{
			name:    "unreadable body",
			body:    failingReader{},
			wantErr: "failed to read request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest{}
			err := validator.Validate(tt.body, &req)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantResult, req)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
