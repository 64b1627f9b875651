package gen

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvsbharat/mzon/internal/models"
)

type fakeHistory struct {
	records map[string]*models.GenerationResult
	setErr  error
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{records: make(map[string]*models.GenerationResult)}
}

func (f *fakeHistory) Get(_ context.Context, newsID string) (*models.GenerationResult, error) {
	return f.records[newsID], nil
}

func (f *fakeHistory) Set(_ context.Context, newsID string, result *models.GenerationResult) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.records[newsID] = result
	return nil
}

func (f *fakeHistory) Clear(_ context.Context) error {
	f.records = make(map[string]*models.GenerationResult)
	return nil
}

func TestGenerateMissingCredential(t *testing.T) {
	o := NewOrchestrator(Options{})

	result, err := o.Generate(context.Background(), &models.GenerationRequest{NewsItem: testNewsItem()})
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Nil(t, result)
}

func TestGenerateNothingRequested(t *testing.T) {
	o := NewOrchestrator(Options{Credential: "k"})

	result, err := o.Generate(context.Background(), &models.GenerationRequest{
		NewsItem:  testNewsItem(),
		MediaType: models.MediaTypeText,
	})
	require.NoError(t, err)

	assert.Empty(t, result.SocialContent)
	assert.Empty(t, result.EmailContent)
	assert.Empty(t, result.VideoContent)
	assert.Empty(t, result.Images)
	assert.Empty(t, result.Errors)
}

func TestGenerateEmptyCollectionsNotNil(t *testing.T) {
	o := NewOrchestrator(Options{Credential: "k"})

	result, err := o.Generate(context.Background(), &models.GenerationRequest{NewsItem: testNewsItem()})
	require.NoError(t, err)

	assert.NotNil(t, result.SocialContent)
	assert.NotNil(t, result.EmailContent)
	assert.NotNil(t, result.VideoContent)
	assert.NotNil(t, result.Images)
	assert.NotNil(t, result.Errors)
}

func TestGenerateRecordsHistory(t *testing.T) {
	history := newFakeHistory()
	text := &fakeText{
		generateFn: func(_ context.Context, _ string, platforms []string) (map[string]string, error) {
			out := make(map[string]string, len(platforms))
			for _, p := range platforms {
				out[p] = fmt.Sprintf("Fresh take for %s #news", p)
			}
			return out, nil
		},
	}

	o := NewOrchestrator(Options{Credential: "k", Text: text, History: history})
	result, err := o.Generate(context.Background(), &models.GenerationRequest{
		NewsItem:  testNewsItem(),
		Platforms: []string{"twitter"},
	})
	require.NoError(t, err)

	stored, getErr := history.Get(context.Background(), "news-1")
	require.NoError(t, getErr)
	require.NotNil(t, stored)
	assert.Equal(t, result, stored)
}

func TestGenerateHistoryFailureIsNonFatal(t *testing.T) {
	history := newFakeHistory()
	history.setErr = fmt.Errorf("backend unavailable")

	o := NewOrchestrator(Options{Credential: "k", History: history})
	result, err := o.Generate(context.Background(), &models.GenerationRequest{NewsItem: testNewsItem()})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestGenerateStageFailuresDoNotAbort(t *testing.T) {
	text := &fakeText{
		generateFn: func(_ context.Context, _ string, _ []string) (map[string]string, error) {
			return nil, fmt.Errorf("model overloaded")
		},
		structuredFn: structuredJSON(validEmailJSON),
	}

	o := NewOrchestrator(Options{Credential: "k", Text: text})
	result, err := o.Generate(context.Background(), &models.GenerationRequest{
		NewsItem:   testNewsItem(),
		Platforms:  []string{"twitter"},
		EmailTypes: []string{"newsletter"},
	})
	require.NoError(t, err)

	// Social failed but the email stage still ran.
	assert.Empty(t, result.SocialContent)
	require.Len(t, result.EmailContent, 1)
	require.Len(t, result.Errors, 1)
}

func TestGenerateSetsProcessingTime(t *testing.T) {
	o := NewOrchestrator(Options{Credential: "k"})

	result, err := o.Generate(context.Background(), &models.GenerationRequest{NewsItem: testNewsItem()})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.ProcessingMS, int64(0))
}

func TestEffectiveBrandOverrideWins(t *testing.T) {
	configured := &models.BrandContext{Name: "Configured"}
	override := &models.BrandContext{Name: "Override"}

	o := NewOrchestrator(Options{Credential: "k", Brand: staticBrand{brand: configured}})

	assert.Equal(t, configured, o.effectiveBrand(&models.GenerationRequest{}))
	assert.Equal(t, override, o.effectiveBrand(&models.GenerationRequest{BrandOverride: override}))
}

type staticBrand struct {
	brand *models.BrandContext
}

func (s staticBrand) BrandContext() *models.BrandContext { return s.brand }

func (s staticBrand) ValidateCompliance(string, *models.BrandContext) int { return 90 }
