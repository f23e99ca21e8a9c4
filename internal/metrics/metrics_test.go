package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/things/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/things/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/things/{id}", "418"))
	assert.Equal(t, before+1, after)
}

func TestMiddlewareUnmatchedRoute(t *testing.T) {
	h := Middleware(http.NotFoundHandler())
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404")))
}

func TestSetListenerConnected(t *testing.T) {
	SetListenerConnected(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(ListenerConnected))
	SetListenerConnected(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(ListenerConnected))
}

func TestObserveRecordWrite(t *testing.T) {
	ok := testutil.ToFloat64(RecordWrites.WithLabelValues(ResultSuccess))
	failed := testutil.ToFloat64(RecordWrites.WithLabelValues(ResultFailure))

	ObserveRecordWrite(nil)
	ObserveRecordWrite(errors.New("disk full"))

	assert.Equal(t, ok+1, testutil.ToFloat64(RecordWrites.WithLabelValues(ResultSuccess)))
	assert.Equal(t, failed+1, testutil.ToFloat64(RecordWrites.WithLabelValues(ResultFailure)))
}
