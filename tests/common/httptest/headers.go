//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertContentType compares only the media type, ignoring any charset.
func AssertContentType(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	got := w.Header().Get("Content-Type")
	if i := strings.IndexByte(got, ';'); i >= 0 {
		got = got[:i]
	}
	assert.Equal(t, expected, strings.TrimSpace(got), "content type mismatch")
}
