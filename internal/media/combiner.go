package media

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// maxSegments mirrors the combiner service's safety limit.
const maxSegments = 10

// Combiner is the client for the video combination service, which
// concatenates ordered segment URLs into a single playable video.
type Combiner struct {
	http    *resty.Client
	baseURL string
}

// NewCombiner returns a combiner client for the given service base URL.
func NewCombiner(baseURL string) *Combiner {
	return &Combiner{
		http:    resty.New().SetTimeout(5 * time.Minute),
		baseURL: baseURL,
	}
}

type combineRequest struct {
	SegmentURLs    []string `json:"segment_urls"`
	TransitionType string   `json:"transition_type"`
	FadeDuration   float64  `json:"fade_duration"`
}

type combineResponse struct {
	VideoURL string `json:"video_url"`
	Error    string `json:"error,omitempty"`
}

// Combine submits the ordered segment list and returns the combined
// video URL. Callers treat failure as non-fatal and fall back to the
// first segment.
func (c *Combiner) Combine(ctx context.Context, segmentURLs []string, transition string, fadeSeconds float64) (string, error) {
	if len(segmentURLs) == 0 {
		return "", fmt.Errorf("no video segments provided")
	}
	if len(segmentURLs) > maxSegments {
		return "", fmt.Errorf("too many segments: %d (maximum %d)", len(segmentURLs), maxSegments)
	}
	if len(segmentURLs) == 1 {
		return segmentURLs[0], nil
	}

	var result combineResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(combineRequest{
			SegmentURLs:    segmentURLs,
			TransitionType: transition,
			FadeDuration:   fadeSeconds,
		}).
		SetResult(&result).
		SetError(&result).
		Post(c.baseURL + "/api/video/combine")
	if err != nil {
		return "", fmt.Errorf("combination request failed: %w", err)
	}
	if resp.IsError() {
		if result.Error != "" {
			return "", fmt.Errorf("combination failed: %s", result.Error)
		}
		return "", fmt.Errorf("unexpected status code %d", resp.StatusCode())
	}
	if result.VideoURL == "" {
		return "", fmt.Errorf("no video URL in response")
	}

	return result.VideoURL, nil
}
