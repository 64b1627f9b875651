package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/bvsbharat/mzon/internal/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client talks to the Gemini REST API for text, structured, image and
// video generation.
type Client struct {
	http       *resty.Client
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
	videoModel string
	maxTokens  int
}

// NewClient builds a client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		http:       resty.New().SetTimeout(cfg.AITimeout),
		apiKey:     cfg.GeminiAPIKey,
		baseURL:    defaultBaseURL,
		textModel:  cfg.GeminiTextModel,
		imageModel: cfg.GeminiImageModel,
		videoModel: cfg.GeminiVideoModel,
		maxTokens:  cfg.AIMaxTokens,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string       `json:"responseMimeType,omitempty"`
	MaxOutputTokens  int          `json:"maxOutputTokens,omitempty"`
	ImageConfig      *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// generateContent issues one generateContent call against a model and
// returns the first candidate's parts.
func (c *Client) generateContent(ctx context.Context, model string, req generateRequest) ([]part, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	var resp generateResponse
	httpResp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&resp).
		SetError(&resp).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("API error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if httpResp.IsError() {
		return nil, fmt.Errorf("unexpected status code %d", httpResp.StatusCode())
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content in response")
	}

	return resp.Candidates[0].Content.Parts, nil
}

// cleanJSONResponse strips the markdown code fences Gemini sometimes
// wraps JSON output in.
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
