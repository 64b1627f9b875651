package gen

import (
	"context"
	"encoding/json"

	"github.com/bvsbharat/mzon/internal/models"
)

// Function-backed fakes for the orchestrator's collaborators.

type fakeText struct {
	generateFn   func(ctx context.Context, prompt string, platforms []string) (map[string]string, error)
	structuredFn func(ctx context.Context, prompt string, out any) error
}

func (f *fakeText) Generate(ctx context.Context, prompt string, platforms []string) (map[string]string, error) {
	return f.generateFn(ctx, prompt, platforms)
}

func (f *fakeText) GenerateStructured(ctx context.Context, prompt string, out any) error {
	return f.structuredFn(ctx, prompt, out)
}

// structuredJSON builds a structuredFn that unmarshals fixed JSON.
func structuredJSON(payload string) func(ctx context.Context, prompt string, out any) error {
	return func(_ context.Context, _ string, out any) error {
		return json.Unmarshal([]byte(payload), out)
	}
}

type fakeImage struct {
	generateFn func(ctx context.Context, prompt, aspectRatio string) (*models.InlineImage, error)
}

func (f *fakeImage) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*models.InlineImage, error) {
	return f.generateFn(ctx, prompt, aspectRatio)
}

type fakeVideo struct {
	segments []SegmentInput
	fn       func(in SegmentInput) (*Segment, error)
}

func (f *fakeVideo) GenerateSegment(_ context.Context, in SegmentInput) (*Segment, error) {
	f.segments = append(f.segments, in)
	return f.fn(in)
}

type fakeCombiner struct {
	calls [][]string
	fn    func(urls []string) (string, error)
}

func (f *fakeCombiner) Combine(_ context.Context, segmentURLs []string, transition string, fadeSeconds float64) (string, error) {
	f.calls = append(f.calls, segmentURLs)
	return f.fn(segmentURLs)
}

type fakeAssets struct {
	imageFn func(dataURL, name string) (string, error)
	videoFn func(srcURL, name string) (string, error)
}

func (f *fakeAssets) StoreImage(_ context.Context, dataURL, name string) (string, error) {
	if f.imageFn == nil {
		return dataURL, nil
	}
	return f.imageFn(dataURL, name)
}

func (f *fakeAssets) StoreVideo(_ context.Context, srcURL, name string) (string, error) {
	if f.videoFn == nil {
		return srcURL, nil
	}
	return f.videoFn(srcURL, name)
}

func testNewsItem() models.NewsItem {
	return models.NewsItem{
		ID:                "news-1",
		Title:             "AI Startup Raises Record Funding",
		Description:       "A startup building generative tooling closed a record round.",
		Source:            "TechWire",
		Category:          "ai",
		Tags:              []string{"ai", "funding"},
		IsFresh:           true,
		CredibilityScore:  85,
		EngagementScore:   75,
		Sentiment:         "positive",
		TrendingPotential: 80,
	}
}
