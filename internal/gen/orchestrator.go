package gen

import (
	"context"
	"errors"
	"time"

	"github.com/bvsbharat/mzon/internal/logger"
	"github.com/bvsbharat/mzon/internal/models"
)

// ErrMissingCredential is returned before any stage runs when no
// generation credential was configured.
var ErrMissingCredential = errors.New("generation credential is not configured")

// Orchestrator turns one GenerationRequest into a GenerationResult,
// sequencing the generation stages and tolerating partial failure of any
// individual sub-generation.
type Orchestrator struct {
	credential string
	text       TextGenerator
	image      ImageGenerator
	video      VideoGenerator
	combiner   VideoCombiner
	assets     AssetStore
	brand      BrandProvider
	history    HistoryStore
}

// Options wires the orchestrator's collaborators. Credential is the only
// hard requirement at call time; optional collaborators may be nil and
// the stages depending on them degrade per the error taxonomy.
type Options struct {
	Credential string
	Text       TextGenerator
	Image      ImageGenerator
	Video      VideoGenerator
	Combiner   VideoCombiner
	Assets     AssetStore
	Brand      BrandProvider
	History    HistoryStore
}

// NewOrchestrator creates a content generation orchestrator.
func NewOrchestrator(opts Options) *Orchestrator {
	return &Orchestrator{
		credential: opts.Credential,
		text:       opts.Text,
		image:      opts.Image,
		video:      opts.Video,
		combiner:   opts.Combiner,
		assets:     opts.Assets,
		brand:      opts.Brand,
		history:    opts.History,
	}
}

// Generate runs all requested stages in order. Only the missing
// credential precondition aborts the call; stage and item failures are
// recorded on the result's error list and later stages still run.
func (o *Orchestrator) Generate(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error) {
	if o.credential == "" {
		return nil, ErrMissingCredential
	}

	log := logger.Get()
	start := time.Now()
	result := models.NewGenerationResult()
	newsContext := BuildNewsContext(req.NewsItem, req.ArticleContent)

	log.Info().
		Str("news_id", req.NewsItem.ID).
		Strs("platforms", req.Platforms).
		Strs("email_types", req.EmailTypes).
		Str("media_type", req.MediaType).
		Bool("images", req.GenerateImages).
		Bool("videos", req.GenerateVideos).
		Msg("Starting content generation")

	if req.WantsImageContent() {
		o.generateImageContent(ctx, req, newsContext, result)
	}
	if len(req.Platforms) > 0 {
		o.generateSocialPosts(ctx, req, newsContext, result)
	}
	if len(req.EmailTypes) > 0 {
		o.generateEmailPackage(ctx, req, newsContext, result)
	}
	if req.GenerateImages && len(req.Platforms) > 0 {
		o.generateVisualAssets(ctx, req, result)
	}
	if req.GenerateVideos && req.ProductImage != "" && len(req.Platforms) > 0 {
		o.generateVideos(ctx, req, result)
	}

	result.ProcessingMS = time.Since(start).Milliseconds()

	if o.history != nil && req.NewsItem.ID != "" {
		if err := o.history.Set(ctx, req.NewsItem.ID, result); err != nil {
			log.Error().Err(err).Str("news_id", req.NewsItem.ID).Msg("Failed to record generation history")
		}
	}

	log.Info().
		Str("news_id", req.NewsItem.ID).
		Int("social", len(result.SocialContent)).
		Int("emails", len(result.EmailContent)).
		Int("videos", len(result.VideoContent)).
		Int("images", len(result.Images)).
		Int("errors", len(result.Errors)).
		Dur("duration", time.Since(start)).
		Msg("Finished content generation")

	return result, nil
}

// effectiveBrand resolves the brand context for one request: the request
// override wins over the configured brand.
func (o *Orchestrator) effectiveBrand(req *models.GenerationRequest) *models.BrandContext {
	if req.BrandOverride != nil {
		return req.BrandOverride
	}
	if o.brand != nil {
		return o.brand.BrandContext()
	}
	return nil
}

func (o *Orchestrator) compliance(content string, req *models.GenerationRequest) int {
	return BrandComplianceScore(o.brand, content, req.BrandOverride)
}
