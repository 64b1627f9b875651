package models

// GenerationResult accumulates the outcome of one orchestrator invocation.
// All collections are allocated up front so a returned result is never
// partially constructed.
type GenerationResult struct {
	SocialContent []GeneratedArtifact `json:"social_content"`
	EmailContent  []GeneratedArtifact `json:"email_content"`
	VideoContent  []GeneratedArtifact `json:"video_content"`
	Images        map[string]string   `json:"images"`
	Errors        []string            `json:"errors"`
	ProcessingMS  int64               `json:"processing_ms"`
}

// NewGenerationResult returns an empty, fully initialized result.
func NewGenerationResult() *GenerationResult {
	return &GenerationResult{
		SocialContent: []GeneratedArtifact{},
		EmailContent:  []GeneratedArtifact{},
		VideoContent:  []GeneratedArtifact{},
		Images:        map[string]string{},
		Errors:        []string{},
	}
}

// AddError appends a human readable stage or item error.
func (r *GenerationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}
