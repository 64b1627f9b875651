package gen

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvsbharat/mzon/internal/models"
)

func imageRequest(platforms ...string) *models.GenerationRequest {
	return &models.GenerationRequest{
		NewsItem:       testNewsItem(),
		Platforms:      platforms,
		GenerateImages: true,
	}
}

func TestVisualAssetsPerPlatform(t *testing.T) {
	image := &fakeImage{
		generateFn: func(_ context.Context, prompt, aspectRatio string) (*models.InlineImage, error) {
			return &models.InlineImage{MimeType: "image/png", Data: "aW1n"}, nil
		},
	}

	o := NewOrchestrator(Options{Credential: "k", Text: emptySocial(), Image: image})

	result, err := o.Generate(context.Background(), imageRequest("twitter", "instagram"))
	require.NoError(t, err)

	require.Len(t, result.Images, 2)
	assert.Contains(t, result.Images["twitter"], "data:image/png;base64,")
	assert.Contains(t, result.Images["instagram"], "data:image/png;base64,")
}

func TestVisualAssetsPerPlatformFailure(t *testing.T) {
	image := &fakeImage{
		generateFn: func(_ context.Context, prompt, _ string) (*models.InlineImage, error) {
			if strings.Contains(prompt, "instagram") {
				return nil, fmt.Errorf("quota exceeded")
			}
			return &models.InlineImage{MimeType: "image/png", Data: "aW1n"}, nil
		},
	}

	o := NewOrchestrator(Options{Credential: "k", Text: emptySocial(), Image: image})
	result, err := o.Generate(context.Background(), imageRequest("twitter", "instagram"))
	require.NoError(t, err)

	assert.Contains(t, result.Images, "twitter")
	assert.NotContains(t, result.Images, "instagram")

	var imageErrors []string
	for _, e := range result.Errors {
		if strings.Contains(e, "image generation") {
			imageErrors = append(imageErrors, e)
		}
	}
	require.Len(t, imageErrors, 1)
	assert.Contains(t, imageErrors[0], "instagram")
}

func TestVisualAssetsInvalidPayload(t *testing.T) {
	image := &fakeImage{
		generateFn: func(_ context.Context, _, _ string) (*models.InlineImage, error) {
			return &models.InlineImage{MimeType: "text/plain", Data: "bm90IGFuIGltYWdl"}, nil
		},
	}

	o := NewOrchestrator(Options{Credential: "k", Text: emptySocial(), Image: image})
	result, err := o.Generate(context.Background(), imageRequest("twitter"))
	require.NoError(t, err)

	assert.Empty(t, result.Images)
}

func TestVisualAssetsStoreFallback(t *testing.T) {
	image := &fakeImage{
		generateFn: func(_ context.Context, _, _ string) (*models.InlineImage, error) {
			return &models.InlineImage{MimeType: "image/png", Data: "aW1n"}, nil
		},
	}
	assets := &fakeAssets{
		imageFn: func(dataURL, _ string) (string, error) {
			return "", fmt.Errorf("bucket unavailable")
		},
	}

	o := NewOrchestrator(Options{Credential: "k", Text: emptySocial(), Image: image, Assets: assets})
	result, err := o.Generate(context.Background(), imageRequest("twitter"))
	require.NoError(t, err)

	// Upload failure keeps the inline payload and is not an item error.
	assert.Contains(t, result.Images["twitter"], "data:image/png;base64,")
}

func TestVisualAssetsStoredURL(t *testing.T) {
	image := &fakeImage{
		generateFn: func(_ context.Context, _, _ string) (*models.InlineImage, error) {
			return &models.InlineImage{MimeType: "image/png", Data: "aW1n"}, nil
		},
	}
	assets := &fakeAssets{
		imageFn: func(_, name string) (string, error) {
			return "https://assets.example/" + name + ".png", nil
		},
	}

	o := NewOrchestrator(Options{Credential: "k", Text: emptySocial(), Image: image, Assets: assets})
	result, err := o.Generate(context.Background(), imageRequest("twitter"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Images["twitter"], "https://assets.example/twitter_"))
}

func TestVisualAssetsCapabilityUnavailable(t *testing.T) {
	o := NewOrchestrator(Options{Credential: "k", Text: emptySocial()})
	result, err := o.Generate(context.Background(), imageRequest("twitter", "instagram"))
	require.NoError(t, err)

	assert.Empty(t, result.Images)

	var imageErrors int
	for _, e := range result.Errors {
		if strings.Contains(e, "image generation") {
			imageErrors++
		}
	}
	assert.Equal(t, 2, imageErrors)
}

// emptySocial returns a text fake so the social stage succeeds quietly
// while a test focuses on another stage.
func emptySocial() *fakeText {
	return &fakeText{
		generateFn: func(_ context.Context, _ string, platforms []string) (map[string]string, error) {
			out := make(map[string]string, len(platforms))
			for _, p := range platforms {
				out[p] = "Post for " + p
			}
			return out, nil
		},
	}
}
