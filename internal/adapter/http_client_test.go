// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameledin/go-note-vault/internal/config"
	"github.com/ameledin/go-note-vault/models"
)

func newTestGateway(t *testing.T, serverURL string) AIGateway {
	t.Helper()
	return NewHTTPAIGateway(config.AI{
		BaseURL:        serverURL,
		APIKey:         "test-api-key",
		RequestTimeout: 5 * time.Second,
	})
}

// ── CheckGrammar ─────────────────────────────────────────────────────────────

func TestCheckGrammar_Success(t *testing.T) {
	want := []models.GrammarIssue{
		{Offset: 4, Length: 5, Message: "possible typo", Suggestion: "their"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/grammar", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var req textRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "thay went home", req.Text)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.CheckGrammar(context.Background(), "thay went home")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCheckGrammar_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid api key"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.CheckGrammar(context.Background(), "some text")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Insights ─────────────────────────────────────────────────────────────────

func TestInsights_Success(t *testing.T) {
	want := models.NoteInsight{
		Summary:   "a short meeting recap",
		KeyPoints: []string{"budget approved", "launch moved to May"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/insights", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Insights(context.Background(), "long meeting notes...")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInsights_GatewayUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Insights(context.Background(), "text")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

// ── SuggestTags ──────────────────────────────────────────────────────────────

func TestSuggestTags_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tags", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]string{"groceries", "errands"})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	tags, err := g.SuggestTags(context.Background(), "buy milk and eggs")

	require.NoError(t, err)
	assert.Equal(t, []string{"groceries", "errands"}, tags)
}

func TestSuggestTags_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.SuggestTags(context.Background(), "text")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
}

// ── Translate ────────────────────────────────────────────────────────────────

func TestTranslate_Success(t *testing.T) {
	want := models.Translation{Language: "de", Text: "guten Morgen"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/translate", r.URL.Path)

		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "good morning", req.Text)
		assert.Equal(t, "de", req.TargetLanguage)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Translate(context.Background(), "good morning", "de")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTranslate_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("no translation for you"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Translate(context.Background(), "text", "fr")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestTranslate_BadJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Translate(context.Background(), "text", "fr")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode translate response")
}
