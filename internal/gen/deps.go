package gen

import (
	"context"

	"github.com/bvsbharat/mzon/internal/models"
)

// TextGenerator is the text generation capability. Generate returns one
// text block per requested platform keyed by platform name.
// GenerateStructured unmarshals a schema-constrained JSON response into out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, platforms []string) (map[string]string, error)
	GenerateStructured(ctx context.Context, prompt string, out any) error
}

// ImageGenerator is the image synthesis capability.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt, aspectRatio string) (*models.InlineImage, error)
}

// SegmentInput describes one video segment to synthesize.
type SegmentInput struct {
	ProductImage string
	Title        string
	Description  string
	KeyPoints    []string
	Platform     string
	Brand        *models.BrandContext
}

// Segment is the synthesized output for one segment.
type Segment struct {
	VideoURL          string
	CompositeImageURL string
}

// VideoGenerator is the video synthesis capability.
type VideoGenerator interface {
	GenerateSegment(ctx context.Context, in SegmentInput) (*Segment, error)
}

// VideoCombiner merges ordered segment URLs into one playable video.
// Failure is non-fatal to callers, which fall back to the first segment.
type VideoCombiner interface {
	Combine(ctx context.Context, segmentURLs []string, transition string, fadeSeconds float64) (string, error)
}

// AssetStore persists generated media and returns durable URLs.
type AssetStore interface {
	StoreImage(ctx context.Context, dataURL, name string) (string, error)
	StoreVideo(ctx context.Context, srcURL, name string) (string, error)
}

// BrandProvider supplies the configured brand voice and scores content
// against it. ValidateCompliance applies the given brand when non-nil,
// otherwise the configured one; with neither it returns a fixed default.
type BrandProvider interface {
	BrandContext() *models.BrandContext
	ValidateCompliance(content string, brand *models.BrandContext) int
}

// HistoryStore keeps the most recent generation result per news item.
// Get returns (nil, nil) on a miss.
type HistoryStore interface {
	Get(ctx context.Context, newsID string) (*models.GenerationResult, error)
	Set(ctx context.Context, newsID string, result *models.GenerationResult) error
	Clear(ctx context.Context) error
}
