package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/bvsbharat/mzon/internal/gen"
	"github.com/bvsbharat/mzon/internal/utils"
)

const pollInterval = 5 * time.Second

// GenerateSegment synthesizes one ~8 second video segment. It first
// composes the product image into a scene frame, then animates that
// frame through the video model's long-running operation API.
func (c *Client) GenerateSegment(ctx context.Context, in gen.SegmentInput) (*gen.Segment, error) {
	source, err := c.loadImage(ctx, in.ProductImage)
	if err != nil {
		return nil, fmt.Errorf("product image: %w", err)
	}

	composite, err := c.composeImage(ctx, compositePrompt(in), source)
	if err != nil {
		return nil, fmt.Errorf("composite frame: %w", err)
	}

	videoURL, err := c.animateFrame(ctx, in, &inlineData{
		MimeType: composite.MimeType,
		Data:     composite.Data,
	})
	if err != nil {
		return nil, err
	}

	return &gen.Segment{
		VideoURL:          videoURL,
		CompositeImageURL: composite.DataURL(),
	}, nil
}

// loadImage turns a product image reference (data URL or remote URL)
// into an inline payload.
func (c *Client) loadImage(ctx context.Context, ref string) (*inlineData, error) {
	if utils.IsDataURL(ref) {
		mimeType, data, err := utils.ParseDataURL(ref)
		if err != nil {
			return nil, err
		}
		return &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		}, nil
	}

	resp, err := c.http.R().SetContext(ctx).Get(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status code %d fetching image", resp.StatusCode())
	}

	mimeType := resp.Header().Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/png"
	}
	return &inlineData{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(resp.Body()),
	}, nil
}

type videoOperationRequest struct {
	Instances  []videoInstance `json:"instances"`
	Parameters videoParameters `json:"parameters"`
}

type videoInstance struct {
	Prompt string      `json:"prompt"`
	Image  *videoImage `json:"image,omitempty"`
}

type videoImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType"`
}

type videoParameters struct {
	AspectRatio     string `json:"aspectRatio,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
}

type videoOperation struct {
	Name     string    `json:"name"`
	Done     bool      `json:"done"`
	Error    *apiError `json:"error"`
	Response *struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
}

// animateFrame starts a video operation from the composite frame and
// polls it to completion.
func (c *Client) animateFrame(ctx context.Context, in gen.SegmentInput, frame *inlineData) (string, error) {
	profile := gen.ProfileFor(in.Platform)
	url := fmt.Sprintf("%s/models/%s:predictLongRunning?key=%s", c.baseURL, c.videoModel, c.apiKey)

	var op videoOperation
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(videoOperationRequest{
			Instances: []videoInstance{{
				Prompt: segmentPrompt(in),
				Image: &videoImage{
					BytesBase64Encoded: frame.Data,
					MimeType:           frame.MimeType,
				},
			}},
			Parameters: videoParameters{
				AspectRatio:     profile.VideoAspect,
				DurationSeconds: 8,
			},
		}).
		SetResult(&op).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("video operation request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("unexpected status code %d starting video operation", resp.StatusCode())
	}
	if op.Name == "" {
		return "", fmt.Errorf("no operation name in response")
	}

	return c.pollOperation(ctx, op.Name)
}

func (c *Client) pollOperation(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, name, c.apiKey)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}

		var op videoOperation
		resp, err := c.http.R().
			SetContext(ctx).
			SetResult(&op).
			Get(url)
		if err != nil {
			return "", fmt.Errorf("operation poll failed: %w", err)
		}
		if resp.IsError() {
			return "", fmt.Errorf("unexpected status code %d polling operation", resp.StatusCode())
		}
		if !op.Done {
			continue
		}
		if op.Error != nil {
			return "", fmt.Errorf("video operation failed: %s", op.Error.Message)
		}
		if op.Response == nil || len(op.Response.GenerateVideoResponse.GeneratedSamples) == 0 {
			return "", fmt.Errorf("no video in completed operation")
		}
		return op.Response.GenerateVideoResponse.GeneratedSamples[0].Video.URI, nil
	}
}

func compositePrompt(in gen.SegmentInput) string {
	var b strings.Builder
	b.WriteString("Place this product naturally into a cinematic scene illustrating: ")
	b.WriteString(in.Title)
	b.WriteString(". ")
	b.WriteString(in.Description)
	if in.Brand != nil {
		if len(in.Brand.Colors) > 0 {
			fmt.Fprintf(&b, " Use the brand palette %s.", strings.Join(in.Brand.Colors, ", "))
		}
		if in.Brand.Style != "" {
			fmt.Fprintf(&b, " Visual style: %s.", in.Brand.Style)
		}
	}
	return b.String()
}

func segmentPrompt(in gen.SegmentInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "An 8 second %s marketing clip. %s %s",
		gen.ProfileFor(in.Platform).Style, in.Title, in.Description)
	if len(in.KeyPoints) > 0 {
		fmt.Fprintf(&b, " Emphasize: %s.", strings.Join(in.KeyPoints, "; "))
	}
	if in.Brand != nil && in.Brand.Name != "" {
		fmt.Fprintf(&b, " On-brand for %s.", in.Brand.Name)
	}
	b.WriteString(" Smooth camera motion, natural lighting, with ambient audio.")
	return b.String()
}
