package models

import "time"

// NewsItem represents a discovered news article used as the source for content generation
type NewsItem struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	URL               string    `json:"url,omitempty"`
	Source            string    `json:"source,omitempty"`
	Category          string    `json:"category,omitempty"`
	PublishedAt       time.Time `json:"published_at,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	IsFresh           bool      `json:"is_fresh"`
	CredibilityScore  float64   `json:"credibility_score,omitempty"`
	EngagementScore   float64   `json:"engagement_score,omitempty"`
	Sentiment         string    `json:"sentiment,omitempty"`
	TrendingPotential float64   `json:"trending_potential,omitempty"`
}

// ArticleContent holds the extracted full-article content for a news item,
// produced by an upstream extraction step. Error is set when extraction
// failed and downstream consumers should fall back to the item description.
type ArticleContent struct {
	Summary   string   `json:"summary,omitempty"`
	KeyPoints []string `json:"key_points,omitempty"`
	FullText  string   `json:"full_text,omitempty"`
	Error     string   `json:"error,omitempty"`
}
