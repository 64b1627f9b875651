package brand

import (
	"strings"

	"github.com/bvsbharat/mzon/internal/config"
	"github.com/bvsbharat/mzon/internal/models"
)

// defaultScore is returned when no brand context is available to score
// against.
const defaultScore = 75

// Provider holds the configured brand voice and scores content against
// it.
type Provider struct {
	brand *models.BrandContext
}

// FromConfig builds a provider from configuration. With no BRAND_NAME
// configured the provider carries no brand context and scoring returns
// the fixed default.
func FromConfig(cfg *config.Config) *Provider {
	if cfg.BrandName == "" {
		return &Provider{}
	}
	return &Provider{
		brand: &models.BrandContext{
			Name:          cfg.BrandName,
			Tone:          cfg.BrandTone,
			Style:         cfg.BrandStyle,
			Colors:        cfg.BrandColors,
			Keywords:      cfg.BrandKeywords,
			BannedPhrases: cfg.BrandBannedPhrases,
		},
	}
}

// NewProvider builds a provider around an explicit brand context.
// Accepts nil.
func NewProvider(brand *models.BrandContext) *Provider {
	return &Provider{brand: brand}
}

// BrandContext returns the configured brand, or nil when unconfigured.
func (p *Provider) BrandContext() *models.BrandContext {
	return p.brand
}

// ValidateCompliance scores content against the given brand (falling
// back to the configured one). The heuristic is deterministic and never
// fails: banned phrases cost heavily, brand keywords earn a little.
func (p *Provider) ValidateCompliance(content string, brand *models.BrandContext) int {
	if brand == nil {
		brand = p.brand
	}
	if brand == nil {
		return defaultScore
	}

	lower := strings.ToLower(content)
	score := 80

	for _, phrase := range brand.BannedPhrases {
		if phrase != "" && strings.Contains(lower, strings.ToLower(phrase)) {
			score -= 15
		}
	}

	bonus := 0
	for _, kw := range brand.Keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			bonus += 5
		}
	}
	if bonus > 15 {
		bonus = 15
	}
	score += bonus

	if brand.Tone != "" && strings.Contains(lower, strings.ToLower(brand.Tone)) {
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
