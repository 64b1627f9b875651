package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bvsbharat/mzon/internal/logger"
	"github.com/bvsbharat/mzon/internal/models"
)

// generateSocialPosts requests one post per platform in a single
// capability call and appends a validated artifact per platform. A
// failure of the whole call, an empty response, or placeholder content
// anywhere in the response each record exactly one stage error.
func (o *Orchestrator) generateSocialPosts(ctx context.Context, req *models.GenerationRequest, newsContext string, result *models.GenerationResult) {
	log := logger.Get()

	if o.text == nil {
		result.AddError("social content generation failed: text generation capability unavailable")
		return
	}

	prompt := buildSocialPrompt(newsContext, req.Platforms, req.CustomInstruction)
	resp, err := o.text.Generate(ctx, prompt, req.Platforms)
	if err != nil {
		log.Error().Err(err).Str("news_id", req.NewsItem.ID).Msg("Social fan-out call failed")
		result.AddError(fmt.Sprintf("social content generation failed: %v", err))
		return
	}
	if len(resp) == 0 {
		result.AddError("social content generation failed: empty response")
		return
	}

	// Placeholder content anywhere fails the whole call, not one platform.
	for platform, content := range resp {
		if ContainsPlaceholder(content) {
			log.Warn().Str("platform", platform).Msg("Placeholder marker in social response")
			result.AddError("social content generation failed: response contains placeholder content")
			return
		}
	}

	for _, platform := range req.Platforms {
		content, ok := resp[platform]
		if !ok || content == "" {
			result.AddError(fmt.Sprintf("social content generation: no content returned for %s", platform))
			continue
		}

		hashtags, body := ExtractHashtags(content)
		result.SocialContent = append(result.SocialContent, models.GeneratedArtifact{
			ID:              uuid.NewString(),
			Kind:            models.ArtifactSocial,
			Platform:        platform,
			Title:           req.NewsItem.Title,
			Content:         body,
			Hashtags:        hashtags,
			WordCount:       CountWords(body),
			Engagement:      EstimateEngagement(content, platform, req.NewsItem),
			BrandCompliance: o.compliance(body, req),
			CreatedAt:       time.Now(),
			NewsID:          req.NewsItem.ID,
		})
	}

	log.Info().
		Str("news_id", req.NewsItem.ID).
		Int("posts", len(result.SocialContent)).
		Msg("Social fan-out complete")
}

// generateImageContent produces the single caption-style post requested
// by image and mixed media types.
func (o *Orchestrator) generateImageContent(ctx context.Context, req *models.GenerationRequest, newsContext string, result *models.GenerationResult) {
	if o.text == nil {
		result.AddError("image content generation failed: text generation capability unavailable")
		return
	}

	prompt := buildImageContentPrompt(newsContext, req.CustomInstruction)
	resp, err := o.text.Generate(ctx, prompt, []string{"caption"})
	if err != nil {
		result.AddError(fmt.Sprintf("image content generation failed: %v", err))
		return
	}

	content := resp["caption"]
	if content == "" {
		result.AddError("image content generation failed: empty response")
		return
	}
	if ContainsPlaceholder(content) {
		result.AddError("image content generation failed: response contains placeholder content")
		return
	}

	hashtags, body := ExtractHashtags(content)
	result.SocialContent = append(result.SocialContent, models.GeneratedArtifact{
		ID:              uuid.NewString(),
		Kind:            models.ArtifactSocial,
		Title:           req.NewsItem.Title,
		Content:         body,
		Hashtags:        hashtags,
		WordCount:       CountWords(body),
		Engagement:      EstimateEngagement(content, "", req.NewsItem),
		BrandCompliance: o.compliance(body, req),
		CreatedAt:       time.Now(),
		NewsID:          req.NewsItem.ID,
	})
}
