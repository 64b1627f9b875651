package models

// BrandContext describes the brand voice generated content should follow.
type BrandContext struct {
	Name          string   `json:"name"`
	Tone          string   `json:"tone,omitempty"`
	Style         string   `json:"style,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	BannedPhrases []string `json:"banned_phrases,omitempty"`
}
