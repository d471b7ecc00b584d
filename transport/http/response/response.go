package response

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/shared/logger"
)

type Result[T any] struct {
	Success bool `json:"success"`
	Result  *T   `json:"result,omitempty"`
}

type Error struct {
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

// WithResult sends a success envelope wrapping the payload
func WithResult(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Result[any]{Success: true, Result: &payload})
}

// WithError sends an error envelope. Internal errors are logged and replaced
// by a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code == http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		errMsg = constant.ResponseErrorUnexpected
	}

	response(writer, code, Error{Success: false, Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithError(writer, failure.TooManyRequests(constant.ResponseErrorRequestLimitExceeded))
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithError(writer, failure.Unavailable(constant.ResponseErrorPrepareShutdown))
}

// WithNotFound sends a default response for routes that do not exist
func WithNotFound(writer http.ResponseWriter) {
	WithError(writer, failure.NotFound(constant.ResponseErrorNotFound))
}

// WithHTML renders a template. Nothing is written if rendering fails.
func WithHTML(writer http.ResponseWriter, code int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		WithError(writer, err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := writer.Write(buf.Bytes()); err != nil {
		logger.ErrorWithStack(err)
	}
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
