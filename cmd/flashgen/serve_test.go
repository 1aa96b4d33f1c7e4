package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/flashgen"
	"github.com/fwojciec/flashgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_GenerateFlashcards(t *testing.T) {
	t.Parallel()

	t.Run("returns flashcards as JSON", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(_ context.Context, url string, numCards int) *flashgen.Result {
				assert.Equal(t, "https://example.com", url)
				assert.Equal(t, 3, numCards)
				return &flashgen.Result{
					Title:      "Go Tips",
					URL:        url,
					Flashcards: []flashgen.Flashcard{{Question: "Q", Answer: "A"}},
				}
			},
		}

		handler := NewHandler(runner)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/generate-flashcards",
			strings.NewReader(`{"url":"https://example.com","num_cards":3}`))

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

		var result flashgen.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "Go Tips", result.Title)
		require.Len(t, result.Flashcards, 1)
		assert.Equal(t, "Q", result.Flashcards[0].Question)
	})

	t.Run("requires a URL", func(t *testing.T) {
		t.Parallel()

		handler := NewHandler(&mock.Runner{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/generate-flashcards",
			strings.NewReader(`{}`))

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "URL is required")
	})

	t.Run("maps pipeline errors to 502", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(_ context.Context, url string, _ int) *flashgen.Result {
				return &flashgen.Result{
					Title:      "Error",
					URL:        url,
					Flashcards: []flashgen.Flashcard{},
					Error:      "fetch failed",
				}
			},
		}

		handler := NewHandler(runner)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/generate-flashcards",
			strings.NewReader(`{"url":"https://example.com"}`))

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "fetch failed")
	})

	t.Run("rejects non-POST methods", func(t *testing.T) {
		t.Parallel()

		handler := NewHandler(&mock.Runner{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/generate-flashcards", nil)

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("answers preflight requests", func(t *testing.T) {
		t.Parallel()

		handler := NewHandler(&mock.Runner{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/generate-flashcards", nil)

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&mock.Runner{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
