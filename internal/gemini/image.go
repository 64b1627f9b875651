package gemini

import (
	"context"
	"fmt"

	"github.com/bvsbharat/mzon/internal/models"
)

// GenerateImage synthesizes one image for the prompt at the requested
// aspect ratio and returns the inline payload.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*models.InlineImage, error) {
	req := generateRequest{
		Contents: []content{{
			Parts: []part{{Text: prompt}},
		}},
	}
	if aspectRatio != "" {
		req.GenerationConfig = &generationConfig{
			ImageConfig: &imageConfig{AspectRatio: aspectRatio},
		}
	}

	parts, err := c.generateContent(ctx, c.imageModel, req)
	if err != nil {
		return nil, err
	}

	for _, p := range parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return &models.InlineImage{
				MimeType: p.InlineData.MimeType,
				Data:     p.InlineData.Data,
			}, nil
		}
	}
	return nil, fmt.Errorf("no inline image in response")
}

// composeImage renders a composite of an input image with a scene
// prompt, returning the inline payload. Used for the product+context
// frame that seeds video synthesis.
func (c *Client) composeImage(ctx context.Context, prompt string, source *inlineData) (*models.InlineImage, error) {
	parts, err := c.generateContent(ctx, c.imageModel, generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: source},
				{Text: prompt},
			},
		}},
	})
	if err != nil {
		return nil, err
	}

	for _, p := range parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return &models.InlineImage{
				MimeType: p.InlineData.MimeType,
				Data:     p.InlineData.Data,
			}, nil
		}
	}
	return nil, fmt.Errorf("no inline image in response")
}
