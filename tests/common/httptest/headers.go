//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertRateLimited checks the 429 contract of the rate limit middleware.
func AssertRateLimited(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")
	AssertHeaders(t, w, map[string]string{"Retry-After": "1"})
}
