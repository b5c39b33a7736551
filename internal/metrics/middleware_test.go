package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/state", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	matched := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/state", "404")
	unmatched := HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRouteLabel, "404")
	matchedBefore := counterValue(t, matched)
	unmatchedBefore := counterValue(t, unmatched)

	for _, path := range []string{"/state?session_id=abc", "/nope/1", "/nope/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, matchedBefore+1, counterValue(t, matched))
	assert.Equal(t, unmatchedBefore+2, counterValue(t, unmatched))
}
