package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) IGemini {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	g, err := NewGemini(GeminiConfig{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: srv.URL + "/",
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)
	return g
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(GeminiConfig{})
	assert.ErrorIs(t, err, ErrAPIKeyRequired)
}

func TestGenerateSendsUserTurn(t *testing.T) {
	g := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		raw, _ := io.ReadAll(r.Body)
		var req Request
		require.NoError(t, json.Unmarshal(raw, &req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[\"a\"]"},{"text":"ignored"}]}}]}`))
	})

	text, err := g.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, text)
}

func TestGenerateMissingShapeYieldsEmpty(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{}]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
	}
	for _, body := range bodies {
		body := body
		g := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		text, err := g.Generate(context.Background(), "x")
		require.NoError(t, err, body)
		assert.Equal(t, "", text, body)
	}
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	g := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("quota exceeded"))
	})

	_, err := g.Generate(context.Background(), "x")
	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusTooManyRequests, upErr.StatusCode)
	assert.Equal(t, "quota exceeded", upErr.Body)
}

func TestGenerateMalformedBody(t *testing.T) {
	g := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	})

	_, err := g.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerateTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	g, err := NewGemini(GeminiConfig{APIKey: "k", BaseURL: base, Timeout: time.Second})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "x")
	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, 0, upErr.StatusCode)
	assert.Error(t, upErr.Unwrap())
}

func TestResponseFirstText(t *testing.T) {
	text, ok := Response{}.FirstText()
	assert.False(t, ok)
	assert.Empty(t, text)

	r := Response{Candidates: []Candidate{{Content: &Content{Parts: []Part{{Text: "hi"}}}}}}
	text, ok = r.FirstText()
	assert.True(t, ok)
	assert.Equal(t, "hi", text)
	assert.Equal(t, "hi", r.Text())
}
