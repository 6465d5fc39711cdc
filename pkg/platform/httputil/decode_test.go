package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "agegate/pkg/domain-errors"
)

type yearRequest struct {
	Year       string `json:"year"`
	normalized bool
}

func (r *yearRequest) Normalize() {
	r.Year = strings.TrimSpace(r.Year)
	r.normalized = true
}

func (r *yearRequest) Validate() error {
	if r.Year == "" {
		return dErrors.New(dErrors.CodeValidation, "year is required")
	}
	return nil
}

type plainErrRequest struct {
	Value string `json:"value"`
}

func (r *plainErrRequest) Validate() error {
	if r.Value == "" {
		return errors.New("value missing")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes a valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"year":"1980"}`))
		rec := httptest.NewRecorder()

		req, ok := DecodeJSON[yearRequest](rec, r, discardLogger(), r.Context(), "rid")
		require.True(t, ok)
		assert.Equal(t, "1980", req.Year)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"year":`))
		rec := httptest.NewRecorder()

		_, ok := DecodeJSON[yearRequest](rec, r, discardLogger(), r.Context(), "rid")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "bad_request", body.Error)
		assert.Equal(t, "malformed JSON: unexpected end of body", body.ErrorDescription)
	})

	t.Run("describes each failure", func(t *testing.T) {
		cases := []struct {
			body string
			want string
		}{
			{``, "request body is required"},
			{`{"year":}`, "malformed JSON at offset"},
			{`{"year":1980}`, "year has the wrong type"},
			{`{"year":"1980"} {"year":"1981"}`, "request body must contain a single JSON object"},
			{`[]`, "invalid request body"},
		}
		for _, tc := range cases {
			t.Run(tc.want, func(t *testing.T) {
				r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
				rec := httptest.NewRecorder()

				_, ok := DecodeJSON[yearRequest](rec, r, discardLogger(), r.Context(), "rid")
				assert.False(t, ok)
				assert.True(t, strings.HasPrefix(decodeError(t, rec).ErrorDescription, tc.want))
			})
		}
	})

	t.Run("oversized body is reported as such", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"year":"19800000000"}`))
		rec := httptest.NewRecorder()
		r.Body = http.MaxBytesReader(rec, r.Body, 4)

		_, ok := DecodeJSON[yearRequest](rec, r, discardLogger(), r.Context(), "rid")
		assert.False(t, ok)
		assert.Equal(t, "request body too large", decodeError(t, rec).ErrorDescription)
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("normalizes before validating", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"year":"  1980 "}`))
		rec := httptest.NewRecorder()

		req, ok := DecodeAndPrepare[yearRequest](rec, r, discardLogger(), r.Context(), "rid")
		require.True(t, ok)
		assert.True(t, req.normalized)
		assert.Equal(t, "1980", req.Year)
	})

	t.Run("domain validation error keeps its code", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"year":"   "}`))
		rec := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[yearRequest](rec, r, discardLogger(), r.Context(), "rid")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "validation_error", body.Error)
		assert.Equal(t, "year is required", body.ErrorDescription)
	})

	t.Run("plain validation error becomes validation_error", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[plainErrRequest](rec, r, discardLogger(), r.Context(), "rid")
		assert.False(t, ok)
		assert.Equal(t, "value missing", decodeError(t, rec).ErrorDescription)
	})
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{dErrors.New(dErrors.CodeNotFound, "no such field"), http.StatusNotFound, "not_found"},
		{dErrors.New(dErrors.CodeInvalidReferenceDate, "bad"), http.StatusBadRequest, "invalid_reference_date"},
		{dErrors.New(dErrors.CodeInvalidConfiguration, "bad"), http.StatusBadRequest, "invalid_configuration"},
		{dErrors.New(dErrors.CodeTimeout, "slow"), http.StatusGatewayTimeout, "timeout"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, decodeError(t, rec).Error)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteError_HidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, dErrors.New(dErrors.CodeInternal, "stack details"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, decodeError(t, rec).ErrorDescription)
}

func TestDomainCodeMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, DomainCodeToHTTPStatus(dErrors.CodeValidation))
	assert.Equal(t, "validation_error", DomainCodeToHTTPCode(dErrors.CodeValidation))
	assert.Equal(t, http.StatusInternalServerError, DomainCodeToHTTPStatus(dErrors.Code("unknown")))
}
