package serper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

func TestClient_Scrape_RequestFormat(t *testing.T) {
	var gotBody map[string]any
	var gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"markdown":"# Page"}`))
	}))
	defer server.Close()

	client := testClient(server.URL, "test-key")

	result := client.Scrape(context.Background(), "https://docs.llamaindex.ai/page")

	require.False(t, result.Failed)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "https://docs.llamaindex.ai/page", gotBody["url"])
	assert.Equal(t, true, gotBody["includeMarkdown"])
}

func TestClient_Scrape_ContentSelection(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected string
	}{
		{
			name:     "prefers markdown",
			response: `{"markdown":"# MD","text":"plain"}`,
			expected: "# MD",
		},
		{
			name:     "falls back to text",
			response: `{"text":"plain"}`,
			expected: "plain",
		},
		{
			name:     "empty markdown still wins over text",
			response: `{"markdown":"","text":"plain"}`,
			expected: "",
		},
		{
			name:     "neither field present",
			response: `{}`,
			expected: "No content available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := testClient(server.URL, "test-key")
			result := client.Scrape(context.Background(), "https://docs.llamaindex.ai/p")

			require.False(t, result.Failed)
			assert.Equal(t, tt.expected, result.Content)
		})
	}
}

func TestClient_Scrape_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("x", domain.MaxContentLength+500)
	payload, err := json.Marshal(map[string]string{"markdown": long})
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	client := testClient(server.URL, "test-key")
	result := client.Scrape(context.Background(), "https://docs.llamaindex.ai/long")

	require.False(t, result.Failed)
	assert.Len(t, result.Content, domain.MaxContentLength+len(domain.TruncationMarker))
	assert.True(t, strings.HasSuffix(result.Content, domain.TruncationMarker))
}

func TestClient_Scrape_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := testClient(server.URL, "test-key")
	result := client.Scrape(context.Background(), "https://docs.llamaindex.ai/down")

	assert.True(t, result.Failed)
	assert.Equal(t,
		"Error scraping https://docs.llamaindex.ai/down: HTTP 502",
		result.Message)
}

func TestClient_Scrape_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := testClient(server.URL, "test-key")
	result := client.Scrape(context.Background(), "https://docs.llamaindex.ai/gone")

	assert.True(t, result.Failed)
	assert.True(t, strings.HasPrefix(result.Message,
		"Error scraping https://docs.llamaindex.ai/gone: "))
}

func TestClient_Scrape_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html>surprise</html>")
	}))
	defer server.Close()

	client := testClient(server.URL, "test-key")
	result := client.Scrape(context.Background(), "https://docs.llamaindex.ai/odd")

	assert.True(t, result.Failed)
	assert.Contains(t, result.Message, "Error scraping https://docs.llamaindex.ai/odd")
}
