package gen

import (
	"math"
	"strings"

	"github.com/bvsbharat/mzon/internal/models"
)

// DefaultBrandCompliance is returned when no brand context is configured.
const DefaultBrandCompliance = 75

// EstimateEngagement computes a 0-100 engagement heuristic for generated
// text. Total and side-effect free so it can run inline in any stage.
func EstimateEngagement(content, platform string, item models.NewsItem) int {
	profile := ProfileFor(platform)
	score := 50.0

	if len(content) >= profile.OptimalMinLen && len(content) <= profile.OptimalMaxLen {
		score += 15
	}
	if item.IsFresh {
		score += 10
	}
	if item.CredibilityScore > 80 {
		score += 5
	}
	if item.EngagementScore > 70 {
		score += 5
	}
	if item.TrendingPotential > 70 {
		score += 10
	}
	if strings.Contains(content, "?") {
		score += 5
	}
	if strings.Contains(content, "!") {
		score += 3
	}
	if strings.Contains(content, "#") {
		score += 5
	}

	return clampScore(score * profile.Multiplier)
}

// EstimateVideoEngagement scores a video artifact for a platform. Video
// posts start from a higher base and use the larger per-platform
// multiplier table.
func EstimateVideoEngagement(platform string, item models.NewsItem) int {
	profile := ProfileFor(platform)
	score := 70.0

	score += 10 // video format bonus
	if item.IsFresh {
		score += 10
	}
	if item.TrendingPotential > 70 {
		score += 15
	}

	return clampScore(score * profile.VideoMult)
}

// EstimateEmailEngagement scores an email artifact from its subject line,
// call to action and source item quality.
func EstimateEmailEngagement(subject, callToAction string, item models.NewsItem) int {
	score := 60.0

	if len(subject) >= 30 && len(subject) <= 50 {
		score += 15
	}
	if item.CredibilityScore > 85 && item.IsFresh {
		score += 10
	}
	if callToAction != "" {
		score += 5
	}

	return clampScore(score)
}

// BrandComplianceScore delegates to the brand provider, falling back to
// the fixed default when none is configured.
func BrandComplianceScore(provider BrandProvider, content string, override *models.BrandContext) int {
	if provider == nil {
		return DefaultBrandCompliance
	}
	return provider.ValidateCompliance(content, override)
}

func clampScore(score float64) int {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
