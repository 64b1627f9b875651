package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bvsbharat/mzon/internal/logger"
	"github.com/bvsbharat/mzon/internal/models"
)

// emailPayload is the structured object the capability must return per
// email type.
type emailPayload struct {
	Subject      string `json:"subject"`
	Preheader    string `json:"preheader"`
	BodyHTML     string `json:"body_html"`
	BodyText     string `json:"body_text"`
	CallToAction string `json:"call_to_action"`
}

// generateEmailPackage iterates requested email types sequentially; each
// call carries type-specific instructions and a recipient segment. A
// per-type failure appends one error and remaining types still run.
func (o *Orchestrator) generateEmailPackage(ctx context.Context, req *models.GenerationRequest, newsContext string, result *models.GenerationResult) {
	log := logger.Get()

	if o.text == nil {
		for _, emailType := range req.EmailTypes {
			result.AddError(fmt.Sprintf("email %s generation failed: text generation capability unavailable", emailType))
		}
		return
	}

	for _, emailType := range req.EmailTypes {
		prompt := buildEmailPrompt(newsContext, emailType, req.CustomInstruction)

		var payload emailPayload
		if err := o.text.GenerateStructured(ctx, prompt, &payload); err != nil {
			log.Error().Err(err).Str("email_type", emailType).Msg("Email generation call failed")
			result.AddError(fmt.Sprintf("email %s generation failed: %v", emailType, err))
			continue
		}

		if err := validateEmailPayload(&payload); err != nil {
			result.AddError(fmt.Sprintf("email %s generation failed: %v", emailType, err))
			continue
		}

		hashtags, _ := ExtractHashtags(payload.BodyHTML)
		result.EmailContent = append(result.EmailContent, models.GeneratedArtifact{
			ID:              uuid.NewString(),
			Kind:            models.ArtifactEmail,
			Title:           payload.Subject,
			Content:         payload.BodyText,
			Hashtags:        hashtags,
			WordCount:       CountWords(payload.BodyText),
			Engagement:      EstimateEmailEngagement(payload.Subject, payload.CallToAction, req.NewsItem),
			BrandCompliance: o.compliance(payload.BodyText, req),
			CreatedAt:       time.Now(),
			NewsID:          req.NewsItem.ID,
			Email: &models.EmailFields{
				Type:         emailType,
				Subject:      payload.Subject,
				Preheader:    payload.Preheader,
				BodyHTML:     payload.BodyHTML,
				CallToAction: payload.CallToAction,
			},
		})
	}

	log.Info().
		Str("news_id", req.NewsItem.ID).
		Int("emails", len(result.EmailContent)).
		Msg("Email package complete")
}

func validateEmailPayload(p *emailPayload) error {
	if p.Subject == "" {
		return fmt.Errorf("missing subject")
	}
	if p.BodyText == "" {
		return fmt.Errorf("missing body text")
	}
	if ContainsPlaceholder(p.Subject) || ContainsPlaceholder(p.BodyText) {
		return fmt.Errorf("response contains placeholder content")
	}
	return nil
}
