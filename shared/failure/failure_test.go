package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"tzconv/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "Invalid timezone specified",
	}

	assert.Equal(t, "Invalid timezone specified", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{name: "NoDataProvided", failure: failure.NoDataProvided, code: http.StatusBadRequest, message: "No data provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.Equal(t, tt.message, tt.failure.Message)
		})
	}
}

func TestBadRequest(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("All fields are required"))
	assert.Equal(t, &failure.Failure{Code: http.StatusBadRequest, Message: "All fields are required"}, err)

	err = failure.BadRequestFromString("No data provided")
	assert.Equal(t, &failure.Failure{Code: http.StatusBadRequest, Message: "No data provided"}, err)
}

func TestInternalError(t *testing.T) {
	assert.Nil(t, failure.InternalError(nil))

	err := failure.InternalError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestTooManyRequestsAndUnavailable(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, failure.GetCode(failure.TooManyRequests("slow down")))
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(failure.Unavailable("draining")))
	assert.EqualError(t, failure.Unavailable("draining"), "draining")
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "bad request", err: failure.BadRequestFromString("bad"), expected: http.StatusBadRequest},
		{name: "not found", err: failure.NotFound("zone"), expected: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("handler: %w", failure.NoDataProvided), expected: http.StatusBadRequest},
		{name: "plain error", err: errors.New("plain"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.err))
		})
	}
}

func TestIsClientError(t *testing.T) {
	assert.True(t, failure.IsClientError(failure.BadRequestFromString("bad")))
	assert.True(t, failure.IsClientError(failure.TooManyRequests("slow down")))
	assert.True(t, failure.IsClientError(failure.NotFound("Not found")))
	assert.False(t, failure.IsClientError(failure.Unavailable("draining")))
	assert.False(t, failure.IsClientError(failure.InternalError(errors.New("boom"))))
	assert.False(t, failure.IsClientError(errors.New("plain")))
}
