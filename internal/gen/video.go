package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bvsbharat/mzon/internal/logger"
	"github.com/bvsbharat/mzon/internal/models"
	"github.com/bvsbharat/mzon/internal/utils"
)

// segmentSeconds is the unit length the synthesis capability supports
// per call.
const segmentSeconds = 8

// maxSegments bounds one video to keep synthesis and combination cheap.
const maxSegments = 10

// SegmentCount returns how many unit-length segments a requested
// duration needs. Durations at or below zero produce a single segment.
func SegmentCount(durationSeconds int) int {
	if durationSeconds <= 0 {
		return 1
	}
	count := (durationSeconds + segmentSeconds - 1) / segmentSeconds
	if count > maxSegments {
		count = maxSegments
	}
	return count
}

// narrativePhase rewrites the title/description/key-points triple to
// emphasize one phase of the story, so consecutive segments are
// narratively distinct rather than duplicates.
type narrativePhase struct {
	name  string
	apply func(title, desc string, keyPoints []string) (string, string, []string)
}

var narrativePhases = []narrativePhase{
	{
		name: "introduction",
		apply: func(title, desc string, keyPoints []string) (string, string, []string) {
			half := (len(keyPoints) + 1) / 2
			return title, "Opening scene: " + desc, keyPoints[:half]
		},
	},
	{
		name: "development",
		apply: func(title, desc string, keyPoints []string) (string, string, []string) {
			return title, "The story unfolds: " + desc, keyPoints
		},
	},
	{
		name: "highlight",
		apply: func(title, desc string, keyPoints []string) (string, string, []string) {
			points := keyPoints
			if len(points) > 2 {
				points = points[1:3]
			}
			return title, "The key moment: " + desc, points
		},
	},
	{
		name: "conclusion",
		apply: func(title, desc string, keyPoints []string) (string, string, []string) {
			points := keyPoints
			if len(points) > 0 {
				points = keyPoints[len(keyPoints)-1:]
			}
			return title, "Closing takeaway: " + desc, points
		},
	},
}

// phaseFor cycles through the narrative phases by segment index.
func phaseFor(index int) narrativePhase {
	return narrativePhases[index%len(narrativePhases)]
}

// generateVideos runs the video pipeline per platform: plan segments,
// synthesize each, combine or fall back to the first segment, persist,
// score, append. One platform failing does not stop the others.
func (o *Orchestrator) generateVideos(ctx context.Context, req *models.GenerationRequest, result *models.GenerationResult) {
	for _, platform := range req.Platforms {
		if err := o.generatePlatformVideo(ctx, req, platform, result); err != nil {
			logger.Get().Error().Err(err).Str("platform", platform).Msg("Video generation failed")
			result.AddError(fmt.Sprintf("video generation for %s failed: %v", platform, err))
		}
	}
}

func (o *Orchestrator) generatePlatformVideo(ctx context.Context, req *models.GenerationRequest, platform string, result *models.GenerationResult) error {
	if req.ProductImage == "" {
		return fmt.Errorf("no product image supplied")
	}
	if o.video == nil {
		return fmt.Errorf("video synthesis capability unavailable")
	}

	log := logger.Get()
	start := time.Now()

	desc := req.NewsItem.Description
	var keyPoints []string
	if req.ArticleContent != nil {
		if req.ArticleContent.Summary != "" {
			desc = req.ArticleContent.Summary
		}
		keyPoints = req.ArticleContent.KeyPoints
	}

	brand := o.effectiveBrand(req)
	count := SegmentCount(req.VideoDuration)

	log.Info().
		Str("platform", platform).
		Int("segments", count).
		Msg("Starting video synthesis")

	segments := make([]*Segment, 0, count)
	for i := 0; i < count; i++ {
		phase := phaseFor(i)
		title, phaseDesc, phasePoints := phase.apply(req.NewsItem.Title, desc, keyPoints)

		seg, err := o.video.GenerateSegment(ctx, SegmentInput{
			ProductImage: req.ProductImage,
			Title:        title,
			Description:  phaseDesc,
			KeyPoints:    phasePoints,
			Platform:     platform,
			Brand:        brand,
		})
		if err != nil {
			return fmt.Errorf("segment %d (%s): %w", i, phase.name, err)
		}
		segments = append(segments, seg)

		log.Debug().
			Str("platform", platform).
			Int("segment", i).
			Str("phase", phase.name).
			Msg("Segment synthesized")
	}

	videoURL := segments[0].VideoURL
	if len(segments) > 1 {
		videoURL = o.combineSegments(ctx, segments, platform)
	}

	// Composite from segment 0 only; later composites are discarded.
	compositeURL := segments[0].CompositeImageURL

	videoURL = o.persistVideo(ctx, videoURL, req.NewsItem.ID, platform)
	compositeURL = o.persistComposite(ctx, compositeURL, req.NewsItem.ID, platform)

	profile := ProfileFor(platform)
	result.VideoContent = append(result.VideoContent, models.GeneratedArtifact{
		ID:              uuid.NewString(),
		Kind:            models.ArtifactVideo,
		Platform:        platform,
		Title:           req.NewsItem.Title,
		Content:         desc,
		WordCount:       CountWords(desc),
		Engagement:      EstimateVideoEngagement(platform, req.NewsItem),
		BrandCompliance: o.compliance("Video for "+req.NewsItem.Title, req),
		CreatedAt:       time.Now(),
		NewsID:          req.NewsItem.ID,
		Video: &models.VideoFields{
			VideoURL:          videoURL,
			CompositeImageURL: compositeURL,
			Duration:          fmt.Sprintf("%ds", len(segments)*segmentSeconds),
			AspectRatio:       profile.VideoAspect,
			Resolution:        profile.VideoRes,
			HasAudio:          true,
			ProcessingMS:      time.Since(start).Milliseconds(),
		},
	})

	log.Info().
		Str("platform", platform).
		Int("segments", len(segments)).
		Dur("duration", time.Since(start)).
		Msg("Video complete")

	return nil
}

// combineSegments asks the combination capability for one playable
// video; on any failure the first segment stands in for the whole.
func (o *Orchestrator) combineSegments(ctx context.Context, segments []*Segment, platform string) string {
	fallback := segments[0].VideoURL
	if o.combiner == nil {
		logger.Get().Warn().Str("platform", platform).Msg("No video combiner configured, using first segment")
		return fallback
	}

	urls := make([]string, len(segments))
	for i, seg := range segments {
		urls[i] = seg.VideoURL
	}

	combined, err := o.combiner.Combine(ctx, urls, "concatenate", 0.5)
	if err != nil {
		logger.Get().Warn().Err(err).Str("platform", platform).Msg("Video combination failed, using first segment")
		return fallback
	}
	return combined
}

func (o *Orchestrator) persistVideo(ctx context.Context, url, newsID, platform string) string {
	if o.assets == nil || url == "" {
		return url
	}
	name := fmt.Sprintf("%s_%s", platform, utils.ShortHash(newsID+platform+"video"))
	stored, err := o.assets.StoreVideo(ctx, url, name)
	if err != nil {
		logger.Get().Warn().Err(err).Str("platform", platform).Msg("Video upload failed, keeping source URL")
		return url
	}
	return stored
}

func (o *Orchestrator) persistComposite(ctx context.Context, dataURL, newsID, platform string) string {
	if o.assets == nil || dataURL == "" {
		return dataURL
	}
	name := fmt.Sprintf("%s_%s_composite", platform, utils.ShortHash(newsID+platform))
	stored, err := o.assets.StoreImage(ctx, dataURL, name)
	if err != nil {
		logger.Get().Warn().Err(err).Str("platform", platform).Msg("Composite upload failed, keeping inline payload")
		return dataURL
	}
	return stored
}
