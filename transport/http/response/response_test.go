package response_test

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"tzconv/shared/failure"
	"tzconv/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithResult(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithResult(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"result":{"status":"ok"}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "client error keeps its message",
			err:  failure.BadRequestFromString("Invalid timezone specified"),
			code: http.StatusBadRequest,
			body: `{"success":false,"error":"Invalid timezone specified"}`,
		},
		{
			name: "unexpected error is masked",
			err:  errors.New("connection reset by peer"),
			code: http.StatusInternalServerError,
			body: `{"success":false,"error":"An unexpected error occurred"}`,
		},
		{
			name: "request limit",
			err:  failure.TooManyRequests("REQUEST LIMIT EXCEEDED"),
			code: http.StatusTooManyRequests,
			body: `{"success":false,"error":"REQUEST LIMIT EXCEEDED"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}

func TestWithNotFound(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithNotFound(rec)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Not found"}`, rec.Body.String())
}

func TestWithHTML(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(`<p>{{.}}</p>`))
	rec := httptest.NewRecorder()

	response.WithHTML(rec, http.StatusOK, tmpl, "<UTC>")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>&lt;UTC&gt;</p>", rec.Body.String())
}

func TestWithHTML_RenderFailure(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(`{{.Missing}}`))
	rec := httptest.NewRecorder()

	response.WithHTML(rec, http.StatusOK, tmpl, 42)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"An unexpected error occurred"}`, rec.Body.String())
}
