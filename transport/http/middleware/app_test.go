package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"tzconv/config"
	"tzconv/infras/otel/mocks"
	"tzconv/shared/constant"
	"tzconv/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppMiddleware(cfg *config.Config) middleware.AppMiddleware {
	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil)
}

func TestRequestID(t *testing.T) {
	mw := newAppMiddleware(&config.Config{})

	var seen string
	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})
}

func TestRecover(t *testing.T) {
	mw := newAppMiddleware(&config.Config{})

	handler := mw.Logger(mw.Recover(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("zone database corrupted")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/convert", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"An unexpected error occurred"}`, rec.Body.String())
}

func TestRecover_AbortHandler(t *testing.T) {
	mw := newAppMiddleware(&config.Config{})

	handler := mw.Recover(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestTracing(t *testing.T) {
	ot, recorder := mocks.NewRecordingOtel()
	mw := middleware.NewAppMiddleware(ot, &config.Config{}, nil)

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Get("/timezones", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/timezones", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

	assert.Equal(t, []string{"GET /timezones", "GET /broken"}, recorder.Spans())
	require.Len(t, recorder.Errors(), 1)
	assert.EqualError(t, recorder.Errors()[0], "request failed with status 500")
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}
	cfg.App.CORS.AllowedHeaders = []string{"Content-Type"}

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/timezones", nil)
		req.Header.Set("Origin", "https://example.com")

		return req
	}

	t.Run("disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newAppMiddleware(cfg).CORS()(okHandler()).ServeHTTP(rec, newRequest())

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("enabled", func(t *testing.T) {
		cfg.App.CORS.Enable = true
		rec := httptest.NewRecorder()
		newAppMiddleware(cfg).CORS()(okHandler()).ServeHTTP(rec, newRequest())

		assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
