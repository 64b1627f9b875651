package gen

import (
	"fmt"
	"strings"
)

// buildSocialPrompt asks for one post per requested platform, returned as
// a JSON object keyed by platform name.
func buildSocialPrompt(newsContext string, platforms []string, custom string) string {
	var b strings.Builder
	b.WriteString("You are a social media marketing expert. Create one post per platform for the news article below.\n\n")
	b.WriteString("Platforms and their styles:\n")
	for _, platform := range platforms {
		p := ProfileFor(platform)
		fmt.Fprintf(&b, "- %s: %s, at most %d characters, up to %d hashtags\n",
			p.Name, p.Style, p.MaxChars, p.HashtagLimit)
	}
	b.WriteString("\nRespond with a valid JSON object whose keys are exactly the platform names ")
	b.WriteString("and whose values are the post texts with hashtags inline.\n")
	if custom != "" {
		b.WriteString("\nAdditional instructions: ")
		b.WriteString(custom)
		b.WriteString("\n")
	}
	b.WriteString("\nArticle:\n")
	b.WriteString(newsContext)
	return b.String()
}

// buildImageContentPrompt asks for a single caption-style post to pair
// with generated imagery.
func buildImageContentPrompt(newsContext, custom string) string {
	var b strings.Builder
	b.WriteString("You are a social media marketing expert. Write one caption-style post to accompany ")
	b.WriteString("a generated image for the news article below. Keep it vivid and under 300 characters, ")
	b.WriteString("with 2-3 inline hashtags.\n\n")
	b.WriteString("Respond with a valid JSON object with the single key \"caption\".\n")
	if custom != "" {
		b.WriteString("\nAdditional instructions: ")
		b.WriteString(custom)
		b.WriteString("\n")
	}
	b.WriteString("\nArticle:\n")
	b.WriteString(newsContext)
	return b.String()
}

// emailProfile carries the type-specific instructions and recipient
// segment description each email generation call is prompted with.
type emailProfile struct {
	instructions string
	audience     string
}

var emailProfiles = map[string]emailProfile{
	"newsletter": {
		instructions: "an informative newsletter issue summarizing the story with context and takeaways",
		audience:     "existing subscribers who opted in for industry updates",
	},
	"promotional": {
		instructions: "a persuasive promotional email tying the story to our product value",
		audience:     "warm leads who have shown interest but not converted",
	},
	"announcement": {
		instructions: "a crisp announcement email framing the story as breaking news",
		audience:     "all contacts, including press and partners",
	},
	"digest": {
		instructions: "a short digest entry presenting the story in a skimmable format",
		audience:     "busy readers who scan on mobile",
	},
}

func buildEmailPrompt(newsContext, emailType, custom string) string {
	profile, ok := emailProfiles[emailType]
	if !ok {
		profile = emailProfile{
			instructions: "a marketing email presenting the story",
			audience:     "a general marketing audience",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an email marketing expert. Write %s.\n", profile.instructions)
	fmt.Fprintf(&b, "Recipient segment: %s.\n\n", profile.audience)
	b.WriteString("Respond with a valid JSON object with these fields:\n")
	b.WriteString("- subject (string, 30-50 characters)\n")
	b.WriteString("- preheader (string, under 100 characters)\n")
	b.WriteString("- body_html (string, simple semantic HTML)\n")
	b.WriteString("- body_text (string, plain text version)\n")
	b.WriteString("- call_to_action (string, one short imperative line)\n")
	if custom != "" {
		b.WriteString("\nAdditional instructions: ")
		b.WriteString(custom)
		b.WriteString("\n")
	}
	b.WriteString("\nArticle:\n")
	b.WriteString(newsContext)
	return b.String()
}

// buildImagePrompt describes the marketing visual for one platform using
// the article title, summary, key points and sentiment.
func buildImagePrompt(item string, summary string, keyPoints []string, sentiment, platform string) string {
	var b strings.Builder
	p := ProfileFor(platform)
	fmt.Fprintf(&b, "Create a professional marketing visual for %s (%s style).\n", p.Name, p.Style)
	fmt.Fprintf(&b, "Subject: %s\n", item)
	if summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", summary)
	}
	if len(keyPoints) > 0 {
		fmt.Fprintf(&b, "Highlight: %s\n", strings.Join(keyPoints, "; "))
	}
	if sentiment != "" {
		fmt.Fprintf(&b, "Mood: %s\n", sentiment)
	}
	b.WriteString("No text overlays, no watermarks, photographic quality.")
	return b.String()
}
