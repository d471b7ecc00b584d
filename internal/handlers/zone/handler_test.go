package zone_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	_ "time/tzdata"
	"tzconv/infras/otel/mocks"
	zoneMocks "tzconv/internal/domains/zone/mocks"
	"tzconv/internal/domains/zone/service"
	"tzconv/internal/handlers/zone"
	"tzconv/shared/timezone"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var names = []string{"America/New_York", "Asia/Kolkata", "Europe/Berlin", "UTC"}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := zoneMocks.NewMockZone(ctrl)
	mockRepo.EXPECT().List().Return(names).AnyTimes()

	ot := mocks.NewOtel()
	handler := zone.New(service.New(mockRepo, ot), ot)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_List(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		target   string
		expected []string
	}{
		{name: "all", target: "/timezones", expected: names},
		{name: "filtered", target: "/timezones?q=new", expected: []string{"America/New_York"}},
		{name: "no match", target: "/timezones?q=Mars", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Success bool `json:"success"`
				Result  struct {
					Timezones []string `json:"timezones"`
					Total     int      `json:"total"`
				} `json:"result"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.True(t, body.Success)
			assert.Equal(t, tt.expected, body.Result.Timezones)
			assert.Equal(t, len(tt.expected), body.Result.Total)
		})
	}
}

func TestHandler_Index(t *testing.T) {
	timezone.Init("Asia/Kolkata")
	t.Cleanup(func() { timezone.Init("UTC") })

	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	page := rec.Body.String()
	assert.Contains(t, page, `<form id="convert-form" action="/convert" method="post">`)
	assert.Contains(t, page, `<option value="Asia/Kolkata" selected>Asia/Kolkata</option>`)
	assert.Contains(t, page, `<option value="UTC" selected>UTC</option>`)
	assert.Contains(t, page, `<option value="Europe/Berlin">Europe/Berlin</option>`)
	assert.Less(t,
		strings.Index(page, "America/New_York"), strings.Index(page, "Europe/Berlin"),
		"zones are listed in order")
	assert.Contains(t, page, `<input type="checkbox" id="theme-toggle">`)
	assert.Contains(t, page, `data-select="source_timezone"`)
	assert.Contains(t, page, `data-select="target_timezone"`)
}
