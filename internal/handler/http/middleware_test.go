package http

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rental-blocklist/internal/civilid"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/quota"
	"github.com/MKhiriev/rental-blocklist/internal/service"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/internal/validators"
	"github.com/MKhiriev/rental-blocklist/models"
)

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "reuses client trace id", incoming: "trace-123", reused: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.NotNil(t, logger.FromRequest(r))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			require.True(t, called)
			got := rr.Header().Get(traceIDHeader)
			if tt.reused {
				assert.Equal(t, tt.incoming, got)
				return
			}
			parsed, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), parsed.Version())
		})
	}
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Write([]byte("echo: " + string(body)))
	})

	t.Run("compresses response", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
		req.Header.Set("Accept-Encoding", "deflate, gzip")
		rr := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rr, req)

		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		reader, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, "echo: plain", string(body))
	})

	t.Run("decodes request body", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte("packed"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Equal(t, "echo: packed", rr.Body.String())
	})

	t.Run("rejects broken gzip body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("no content stays empty", func(t *testing.T) {
		noContent := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		withGZip(noContent).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Zero(t, rr.Body.Len())
	})
}

func TestWithLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New("test", &buf, zerolog.DebugLevel)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("abc"))
	})

	req := httptest.NewRequest(http.MethodGet, "/brew", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":3`)
	assert.Contains(t, out, `"uri":"/brew"`)
	assert.Contains(t, out, `"trace_id"`)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		role   models.Role
		status int
	}{
		{name: "admin passes", role: models.RoleAdmin, status: http.StatusOK},
		{name: "user is forbidden", role: models.RoleUser, status: http.StatusForbidden},
		{name: "no role is forbidden", role: "", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != "" {
				req = req.WithContext(utils.WithUser(req.Context(), 1, tt.role))
			}
			rr := httptest.NewRecorder()
			requireAdmin(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestStatusFromError(t *testing.T) {
	_, civilErr := civilid.Validate("12345")

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "civil id", err: fmt.Errorf("search: %w", civilErr), status: http.StatusUnprocessableEntity, code: "length"},
		{name: "quota", err: quota.ErrQuotaExceeded, status: http.StatusTooManyRequests, code: "quota_exceeded"},
		{name: "request", err: &validators.RequestError{Fields: map[string]string{"name": "required"}}, status: http.StatusBadRequest, code: "invalid_request"},
		{name: "json", err: fmt.Errorf("%w: eof", utils.ErrInvalidJSON), status: http.StatusBadRequest, code: "invalid_json"},
		{name: "wrong password", err: service.ErrWrongPassword, status: http.StatusUnauthorized, code: "wrong_credentials"},
		{name: "token", err: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, code: "invalid_token"},
		{name: "admin only", err: ErrAdminOnly, status: http.StatusForbidden, code: "forbidden"},
		{name: "wrapped not found", err: fmt.Errorf("delete: %w", store.ErrBlockNotFound), status: http.StatusNotFound, code: "block_not_found"},
		{name: "duplicate", err: store.ErrDuplicateBlock, status: http.StatusConflict, code: "already_blocked"},
		{name: "username", err: store.ErrLoginAlreadyExists, status: http.StatusConflict, code: "username_taken"},
		{name: "unhealthy", err: service.ErrUnhealthy, status: http.StatusServiceUnavailable, code: "unhealthy"},
		{name: "db error", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), status: http.StatusInternalServerError, code: "internal"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := statusFromError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	writeError(rr, req, fmt.Errorf("%w: password=hunter2", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hunter2")
}
