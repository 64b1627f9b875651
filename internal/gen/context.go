package gen

import (
	"fmt"
	"strings"

	"github.com/bvsbharat/mzon/internal/models"
)

// BuildNewsContext assembles the textual context every downstream
// generation call consumes. The output is deterministic for identical
// inputs and is rebuilt per request, never mutated.
func BuildNewsContext(item models.NewsItem, article *models.ArticleContent) string {
	var b strings.Builder

	b.WriteString("Title: ")
	b.WriteString(item.Title)
	b.WriteString("\n")

	body := item.Description
	if article != nil && article.Error == "" && article.FullText != "" {
		body = article.FullText
	}
	b.WriteString("Content: ")
	b.WriteString(body)
	b.WriteString("\n")

	if article != nil && article.Summary != "" {
		b.WriteString("Summary: ")
		b.WriteString(article.Summary)
		b.WriteString("\n")
	}

	if article != nil && len(article.KeyPoints) > 0 {
		b.WriteString("Key Points:\n")
		for i, point := range article.KeyPoints {
			fmt.Fprintf(&b, "%d. %s\n", i+1, point)
		}
	}

	if item.Source != "" {
		b.WriteString("Source: ")
		b.WriteString(item.Source)
		b.WriteString("\n")
	}
	if item.Category != "" {
		b.WriteString("Category: ")
		b.WriteString(item.Category)
		b.WriteString("\n")
	}
	if !item.PublishedAt.IsZero() {
		b.WriteString("Published: ")
		b.WriteString(item.PublishedAt.Format("January 2, 2006"))
		b.WriteString("\n")
	}
	if len(item.Tags) > 0 {
		b.WriteString("Tags: ")
		b.WriteString(strings.Join(item.Tags, ", "))
		b.WriteString("\n")
	}
	if item.Sentiment != "" {
		b.WriteString("Sentiment: ")
		b.WriteString(item.Sentiment)
		b.WriteString("\n")
	}

	return b.String()
}
