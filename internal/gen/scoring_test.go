package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bvsbharat/mzon/internal/models"
)

func TestEstimateEngagementInRange(t *testing.T) {
	contents := []string{
		"",
		"Short",
		strings.Repeat("x", 100) + "?! #tag",
		strings.Repeat("long content ", 100),
	}
	platforms := []string{"twitter", "linkedin", "instagram", "tiktok", "unknown"}

	for _, content := range contents {
		for _, platform := range platforms {
			score := EstimateEngagement(content, platform, testNewsItem())
			assert.GreaterOrEqual(t, score, 0, "platform %s", platform)
			assert.LessOrEqual(t, score, 100, "platform %s", platform)
		}
	}
}

func TestEstimateEngagementOptimalLengthBonus(t *testing.T) {
	item := models.NewsItem{ID: "n", Title: "t"}

	inRange := strings.Repeat("a", 100) // twitter optimal range is 70-140
	outOfRange := strings.Repeat("a", 200)

	assert.Greater(t,
		EstimateEngagement(inRange, "twitter", item),
		EstimateEngagement(outOfRange, "twitter", item))
}

func TestEstimateEngagementContentSignals(t *testing.T) {
	item := models.NewsItem{ID: "n", Title: "t"}

	plain := EstimateEngagement("some plain text here", "twitter", item)
	question := EstimateEngagement("some plain text here?", "twitter", item)
	hashtag := EstimateEngagement("some plain text #here", "twitter", item)

	assert.Greater(t, question, plain)
	assert.Greater(t, hashtag, plain)
}

func TestEstimateEngagementItemBonuses(t *testing.T) {
	content := "neutral content body"
	cold := models.NewsItem{ID: "n", Title: "t"}
	hot := models.NewsItem{
		ID: "n", Title: "t",
		IsFresh:           true,
		CredibilityScore:  90,
		EngagementScore:   80,
		TrendingPotential: 90,
	}

	assert.Greater(t,
		EstimateEngagement(content, "twitter", hot),
		EstimateEngagement(content, "twitter", cold))
}

func TestEstimateVideoEngagement(t *testing.T) {
	item := testNewsItem()

	for _, platform := range []string{"tiktok", "instagram", "youtube", "twitter", "unknown"} {
		score := EstimateVideoEngagement(platform, item)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}

	// Short-form platforms carry a larger multiplier.
	cold := models.NewsItem{ID: "n", Title: "t"}
	assert.Greater(t,
		EstimateVideoEngagement("tiktok", cold),
		EstimateVideoEngagement("linkedin", cold))
}

func TestEstimateEmailEngagementSubjectLength(t *testing.T) {
	item := models.NewsItem{ID: "n", Title: "t"}

	goodSubject := strings.Repeat("s", 40)
	shortSubject := strings.Repeat("s", 10)

	assert.Greater(t,
		EstimateEmailEngagement(goodSubject, "", item),
		EstimateEmailEngagement(shortSubject, "", item))
}

func TestEstimateEmailEngagementBonuses(t *testing.T) {
	item := models.NewsItem{ID: "n", Title: "t", IsFresh: true, CredibilityScore: 90}

	withCTA := EstimateEmailEngagement("subject", "Read the full story", item)
	withoutCTA := EstimateEmailEngagement("subject", "", item)
	assert.Equal(t, withoutCTA+5, withCTA)
}

func TestBrandComplianceScoreDefault(t *testing.T) {
	assert.Equal(t, DefaultBrandCompliance, BrandComplianceScore(nil, "anything", nil))
}

func TestProfileForUnknownPlatform(t *testing.T) {
	p := ProfileFor("myspace")
	assert.Equal(t, "myspace", p.Name)
	assert.Equal(t, defaultProfile.Multiplier, p.Multiplier)
	assert.Equal(t, defaultProfile.ImageAspect, p.ImageAspect)
}
