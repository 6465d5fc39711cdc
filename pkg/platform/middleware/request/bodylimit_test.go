package request

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	serve := func(limit int64, body string, declareLength bool) (*httptest.ResponseRecorder, int, bool, error) {
		var n int
		var readErr error
		called := false
		h := BodyLimit(limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			data, err := io.ReadAll(r.Body)
			n, readErr = len(data), err
		}))
		req := httptest.NewRequest(http.MethodPost, "/dob/validate", strings.NewReader(body))
		if !declareLength {
			req.ContentLength = -1
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec, n, called, readErr
	}

	t.Run("body under limit is read fully", func(t *testing.T) {
		_, n, _, err := serve(64, `{"day":"27","month":"6","year":"2000"}`, true)
		assert.NoError(t, err)
		assert.Equal(t, 38, n)
	})

	t.Run("body at exact limit is read fully", func(t *testing.T) {
		_, n, _, err := serve(10, strings.Repeat("x", 10), true)
		assert.NoError(t, err)
		assert.Equal(t, 10, n)
	})

	t.Run("declared length over limit is refused up front", func(t *testing.T) {
		rec, _, called, _ := serve(10, strings.Repeat("x", 11), true)
		assert.False(t, called)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "request body too large")
	})

	t.Run("undeclared length over limit fails on read", func(t *testing.T) {
		_, _, called, err := serve(10, strings.Repeat("x", 11), false)
		assert.True(t, called)
		var maxErr *http.MaxBytesError
		assert.ErrorAs(t, err, &maxErr)
	})
}
