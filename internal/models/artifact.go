package models

import "time"

// Artifact kinds.
const (
	ArtifactSocial = "social_post"
	ArtifactEmail  = "email"
	ArtifactVideo  = "video"
)

// GeneratedArtifact is one generated content item ready for review or
// publishing. Kind selects which of the optional variant fields are set.
type GeneratedArtifact struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	Platform        string    `json:"platform,omitempty"`
	Title           string    `json:"title,omitempty"`
	Content         string    `json:"content"`
	Hashtags        []string  `json:"hashtags,omitempty"`
	Images          []string  `json:"images,omitempty"`
	WordCount       int       `json:"word_count"`
	Engagement      int       `json:"estimated_engagement"`
	BrandCompliance int       `json:"brand_compliance"`
	CreatedAt       time.Time `json:"created_at"`
	NewsID          string    `json:"news_id"`

	Email *EmailFields `json:"email,omitempty"`
	Video *VideoFields `json:"video,omitempty"`
}

// EmailFields carries the email-variant payload.
type EmailFields struct {
	Type         string `json:"type"`
	Subject      string `json:"subject"`
	Preheader    string `json:"preheader,omitempty"`
	BodyHTML     string `json:"body_html"`
	CallToAction string `json:"call_to_action,omitempty"`
}

// VideoFields carries the video-variant payload.
type VideoFields struct {
	VideoURL          string `json:"video_url"`
	CompositeImageURL string `json:"composite_image_url,omitempty"`
	Duration          string `json:"duration"`
	AspectRatio       string `json:"aspect_ratio"`
	Resolution        string `json:"resolution"`
	HasAudio          bool   `json:"has_audio"`
	ProcessingMS      int64  `json:"processing_ms"`
}

// InlineImage is a raw inline image payload returned by the image
// synthesis capability.
type InlineImage struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64 encoded bytes
}

// DataURL renders the payload as a data URL suitable for storage upload.
func (i *InlineImage) DataURL() string {
	return "data:" + i.MimeType + ";base64," + i.Data
}
