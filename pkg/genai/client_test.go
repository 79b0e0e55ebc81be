package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/pkg/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.GenAIConfig{
		BaseURL: baseURL,
		Model:   "gemini-2.0-flash",
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestGenerateTextSendsPromptAndExtractsCandidate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Dear teacher, your leave is approved."}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	text, err := client.GenerateText(context.Background(), "draft an approval email")
	require.NoError(t, err)

	assert.Equal(t, "Dear teacher, your leave is approved.", text)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "user", gotBody.Contents[0].Role)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "draft an approval email", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateTextNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateTextMissingCandidatePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateText(context.Background(), "prompt")
	require.Error(t, err)
}

func TestGenerateTextContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL).GenerateText(ctx, "prompt")
	require.Error(t, err)
}
