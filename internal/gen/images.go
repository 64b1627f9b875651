package gen

import (
	"context"
	"fmt"
	"strings"

	"github.com/bvsbharat/mzon/internal/logger"
	"github.com/bvsbharat/mzon/internal/models"
	"github.com/bvsbharat/mzon/internal/utils"
)

// generateVisualAssets requests one platform-sized image per platform.
// The per-platform calls are independent and issued concurrently;
// results are merged in request platform order so the output is
// deterministic regardless of completion order. A per-platform failure
// appends one error and leaves the other platforms unaffected.
func (o *Orchestrator) generateVisualAssets(ctx context.Context, req *models.GenerationRequest, result *models.GenerationResult) {
	log := logger.Get()

	if o.image == nil {
		for _, platform := range req.Platforms {
			result.AddError(fmt.Sprintf("image generation for %s failed: image synthesis capability unavailable", platform))
		}
		return
	}

	type outcome struct {
		platform string
		url      string
		err      error
	}

	outcomes := make(chan outcome, len(req.Platforms))
	for _, platform := range req.Platforms {
		go func(platform string) {
			url, err := o.generatePlatformImage(ctx, req, platform)
			outcomes <- outcome{platform: platform, url: url, err: err}
		}(platform)
	}

	byPlatform := make(map[string]outcome, len(req.Platforms))
	for range req.Platforms {
		res := <-outcomes
		byPlatform[res.platform] = res
	}

	for _, platform := range req.Platforms {
		res := byPlatform[platform]
		if res.err != nil {
			log.Error().Err(res.err).Str("platform", platform).Msg("Image generation failed")
			result.AddError(fmt.Sprintf("image generation for %s failed: %v", platform, res.err))
			continue
		}
		result.Images[platform] = res.url
	}

	log.Info().
		Str("news_id", req.NewsItem.ID).
		Int("images", len(result.Images)).
		Msg("Visual assets complete")
}

func (o *Orchestrator) generatePlatformImage(ctx context.Context, req *models.GenerationRequest, platform string) (string, error) {
	var summary, sentiment string
	var keyPoints []string
	if req.ArticleContent != nil {
		summary = req.ArticleContent.Summary
		keyPoints = req.ArticleContent.KeyPoints
	}
	sentiment = req.NewsItem.Sentiment

	prompt := buildImagePrompt(req.NewsItem.Title, summary, keyPoints, sentiment, platform)
	profile := ProfileFor(platform)

	img, err := o.image.GenerateImage(ctx, prompt, profile.ImageAspect)
	if err != nil {
		return "", err
	}
	if img == nil || img.Data == "" || !strings.HasPrefix(img.MimeType, "image/") {
		return "", fmt.Errorf("response did not contain an inline image")
	}

	dataURL := img.DataURL()
	if o.assets == nil {
		return dataURL, nil
	}

	name := fmt.Sprintf("%s_%s", platform, utils.ShortHash(req.NewsItem.ID+platform))
	url, err := o.assets.StoreImage(ctx, dataURL, name)
	if err != nil {
		// Storage failure is non-fatal; the inline payload still works.
		logger.Get().Warn().Err(err).Str("platform", platform).Msg("Image upload failed, keeping inline payload")
		return dataURL, nil
	}
	return url, nil
}
