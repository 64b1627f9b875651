package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineRejectsEmptyList(t *testing.T) {
	c := NewCombiner("http://localhost:1")

	_, err := c.Combine(context.Background(), nil, "concatenate", 0.5)
	assert.Error(t, err)
}

func TestCombineRejectsTooManySegments(t *testing.T) {
	c := NewCombiner("http://localhost:1")

	urls := make([]string, maxSegments+1)
	for i := range urls {
		urls[i] = "https://videos.example/seg.mp4"
	}

	_, err := c.Combine(context.Background(), urls, "concatenate", 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many segments")
}

func TestCombineSingleSegmentSkipsService(t *testing.T) {
	// Unroutable base URL: a single segment must never hit the service.
	c := NewCombiner("http://localhost:1")

	url, err := c.Combine(context.Background(), []string{"https://videos.example/only.mp4"}, "concatenate", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "https://videos.example/only.mp4", url)
}

func TestCombineSubmitsOrderedSegments(t *testing.T) {
	var got combineRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/video/combine", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(combineResponse{VideoURL: "https://videos.example/combined.mp4"})
	}))
	defer server.Close()

	c := NewCombiner(server.URL)
	segments := []string{
		"https://videos.example/seg-0.mp4",
		"https://videos.example/seg-1.mp4",
		"https://videos.example/seg-2.mp4",
	}

	url, err := c.Combine(context.Background(), segments, "concatenate", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "https://videos.example/combined.mp4", url)
	assert.Equal(t, segments, got.SegmentURLs)
	assert.Equal(t, "concatenate", got.TransitionType)
	assert.Equal(t, 0.5, got.FadeDuration)
}

func TestCombineSurfacesServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(combineResponse{Error: "segment download failed"})
	}))
	defer server.Close()

	c := NewCombiner(server.URL)
	_, err := c.Combine(context.Background(), []string{"a", "b"}, "concatenate", 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "segment download failed")
}

func TestCombineRejectsEmptyVideoURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(combineResponse{})
	}))
	defer server.Close()

	c := NewCombiner(server.URL)
	_, err := c.Combine(context.Background(), []string{"a", "b"}, "concatenate", 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no video URL")
}
