package models

// Media types a generation request can ask for.
const (
	MediaTypeText  = "text"
	MediaTypeImage = "image"
	MediaTypeMixed = "mixed"
)

// Email campaign types supported by the email package generator.
const (
	EmailTypeNewsletter   = "newsletter"
	EmailTypePromotional  = "promotional"
	EmailTypeAnnouncement = "announcement"
	EmailTypeDigest       = "digest"
)

// GenerationRequest is the immutable input to one orchestrator invocation.
type GenerationRequest struct {
	NewsItem          NewsItem        `json:"news_item" validate:"required"`
	ArticleContent    *ArticleContent `json:"article_content,omitempty"`
	MediaType         string          `json:"media_type,omitempty" validate:"omitempty,oneof=text image mixed"`
	Platforms         []string        `json:"platforms,omitempty"`
	EmailTypes        []string        `json:"email_types,omitempty" validate:"dive,oneof=newsletter promotional announcement digest"`
	GenerateImages    bool            `json:"generate_images,omitempty"`
	GenerateVideos    bool            `json:"generate_videos,omitempty"`
	VideoDuration     int             `json:"video_duration,omitempty" validate:"omitempty,min=1,max=60"`
	ProductImage      string          `json:"product_image,omitempty"`
	BrandOverride     *BrandContext   `json:"brand_override,omitempty"`
	CustomInstruction string          `json:"custom_instruction,omitempty"`
}

// WantsImageContent reports whether the requested media type implies a
// dedicated image-focused content piece.
func (r *GenerationRequest) WantsImageContent() bool {
	return r.MediaType == MediaTypeImage || r.MediaType == MediaTypeMixed
}
