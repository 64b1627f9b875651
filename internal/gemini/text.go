package gemini

import (
	"context"
	"encoding/json"
	"fmt"
)

// Generate requests one text block per platform and returns them keyed
// by platform name, as produced by the model's JSON response.
func (c *Client) Generate(ctx context.Context, prompt string, platforms []string) (map[string]string, error) {
	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result map[string]string
	cleaned := cleanJSONResponse(text)
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result, nil
}

// GenerateStructured unmarshals a JSON-constrained response into out.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, out any) error {
	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return err
	}

	cleaned := cleanJSONResponse(text)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) generateText(ctx context.Context, prompt string) (string, error) {
	parts, err := c.generateContent(ctx, c.textModel, generateRequest{
		Contents: []content{{
			Parts: []part{{Text: prompt}},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			MaxOutputTokens:  c.maxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	for _, p := range parts {
		if p.Text != "" {
			return p.Text, nil
		}
	}
	return "", fmt.Errorf("no text in response")
}
