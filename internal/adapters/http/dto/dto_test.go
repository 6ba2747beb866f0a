package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeNotFound, "no quote available")

	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, "no quote available", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
	assert.Empty(t, resp.TraceID)
}

func TestErrorResponse_WithTraceID(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeInternal, "boom").WithTraceID("trace-1")
	assert.Equal(t, "trace-1", resp.TraceID)
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		// Backend unavailability is published as 500, not 503.
		{ErrorCodeUnavailable, http.StatusInternalServerError},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestBindAndValidate_CreateQuote(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		check   func(*testing.T, *CreateQuoteRequest)
	}{
		{
			name: "full payload",
			body: `{"text":"hello","author":"Someone","tags":["a"],"template":"tpl"}`,
			check: func(t *testing.T, r *CreateQuoteRequest) {
				t.Helper()
				assert.Equal(t, "hello", r.TextValue())
				assert.Equal(t, "Someone", r.AuthorValue())
				assert.Equal(t, []string{"a"}, r.Tags)
				require.NotNil(t, r.Template)
				assert.Equal(t, "tpl", *r.Template)
			},
		},
		{
			name: "text only",
			body: `{"text":"hello"}`,
			check: func(t *testing.T, r *CreateQuoteRequest) {
				t.Helper()
				assert.Equal(t, "hello", r.TextValue())
				assert.Empty(t, r.AuthorValue())
				assert.Nil(t, r.Tags)
				assert.Nil(t, r.Template)
			},
		},
		{
			name: "empty text is accepted",
			body: `{"text":""}`,
			check: func(t *testing.T, r *CreateQuoteRequest) {
				t.Helper()
				assert.Empty(t, r.TextValue())
			},
		},
		{
			name:    "missing text is rejected",
			body:    `{"author":"Someone"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"text":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req CreateQuoteRequest
			err := BindAndValidate(c, &req)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, &req)
		})
	}
}

func TestBindQueryAndValidate_ListQuotes(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantErr   bool
		wantTag   string
		wantLimit int64
	}{
		{name: "defaults", query: "", wantTag: "", wantLimit: 50},
		{name: "tag and limit", query: "?tag=stoic&limit=10", wantTag: "stoic", wantLimit: 10},
		{name: "limit lower bound", query: "?limit=1", wantLimit: 1},
		{name: "limit upper bound", query: "?limit=200", wantLimit: 200},
		{name: "limit too small", query: "?limit=0", wantErr: true},
		{name: "limit too large", query: "?limit=201", wantErr: true},
		{name: "limit negative", query: "?limit=-5", wantErr: true},
		{name: "limit not a number", query: "?limit=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/quotes"+tt.query, nil)

			var q ListQuotesQuery
			err := BindQueryAndValidate(c, &q)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, q.Tag)
			assert.Equal(t, tt.wantLimit, q.GetLimit())
		})
	}
}

func TestValidationErrors_FieldNames(t *testing.T) {
	err := Validate(&CreateQuoteRequest{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	fields := ValidationErrors(err)
	assert.Equal(t, map[string]string{"text": "this field is required"}, fields)
}

func TestSerializeDocument(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	doc := domain.Document{
		ID: "6658f1a2b3c4d5e6f7a8b9c0",
		Fields: map[string]any{
			"text":       "hello",
			"author":     "Unknown",
			"tags":       []any{"a", "b"},
			"template":   nil,
			"created_at": ts,
		},
	}

	out := SerializeDocument(doc)

	assert.Equal(t, "6658f1a2b3c4d5e6f7a8b9c0", out["id"])
	assert.Equal(t, "hello", out["text"])
	assert.Equal(t, "Unknown", out["author"])
	assert.Equal(t, []any{"a", "b"}, out["tags"])
	assert.Nil(t, out["template"])
	assert.Equal(t, "2024-06-01T12:30:00Z", out["created_at"])
	assert.NotContains(t, out, "_id")
}

func TestSerializeDocument_NoID(t *testing.T) {
	out := SerializeDocument(domain.Document{Fields: map[string]any{"text": "x"}})
	assert.NotContains(t, out, "id")
}

func TestSerializeDocument_NestedTimestamps(t *testing.T) {
	ts := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)

	out := SerializeDocument(domain.Document{
		ID: "abc",
		Fields: map[string]any{
			"meta":    map[string]any{"updated": ts},
			"history": []any{ts},
		},
	})

	meta, ok := out["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2023-01-02T03:04:05Z", meta["updated"])

	history, ok := out["history"].([]any)
	require.True(t, ok)
	assert.Equal(t, "2023-01-02T03:04:05Z", history[0])
}

func TestSerializeDocuments_EmptyIsNonNil(t *testing.T) {
	out := SerializeDocuments(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "not found",
			err:         domain.NewNotFoundError("quotes", "any"),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: "no quotes matching \"any\"",
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("text", "is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValidation,
		},
		{
			name:        "unavailable",
			err:         domain.NewUnavailableError("mongodb", "not configured"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: "Database not configured",
		},
		{
			name:        "unknown",
			err:         assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Error.Message)
			}
		})
	}
}

func TestMapDomainError_Nil(t *testing.T) {
	status, resp := MapDomainError(nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/quotes/random", nil)

	HandleError(c, domain.NewNotFoundError("quotes", "all"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrorCodeNotFound)
	assert.Contains(t, w.Body.String(), "no quotes matching")
}

func TestHandleErrorCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/quotes", nil)

	HandleErrorCode(c, ErrorCodeBadRequest, "invalid request body")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrorCodeBadRequest)
}

func TestHandleValidationErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/quotes", nil)

	HandleValidationErrors(c, map[string]string{"text": "text is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "text is required")
	assert.Contains(t, w.Body.String(), ErrorCodeValidation)
}
