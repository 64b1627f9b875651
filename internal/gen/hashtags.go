package gen

import (
	"regexp"
	"strings"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// ExtractHashtags pulls #word hashtags out of content and returns the
// formatted tags together with the content stripped of them.
func ExtractHashtags(content string) ([]string, string) {
	raw := hashtagPattern.FindAllString(content, -1)

	tags := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, tag := range raw {
		tag = FormatHashtag(tag)
		if tag == "" || seen[strings.ToLower(tag)] {
			continue
		}
		seen[strings.ToLower(tag)] = true
		tags = append(tags, tag)
	}

	stripped := hashtagPattern.ReplaceAllString(content, "")
	stripped = strings.Join(strings.Fields(stripped), " ")

	return tags, stripped
}

// FormatHashtag normalizes a tag to a leading # followed by
// alphanumerics only. Returns "" when nothing remains after the #.
func FormatHashtag(tag string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, r := range strings.TrimPrefix(tag, "#") {
		if r == '#' {
			continue
		}
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() <= 1 {
		return ""
	}
	return b.String()
}

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

var placeholderMarkers = []string{"mock", "placeholder", "sample"}

// ContainsPlaceholder reports whether generated content carries a known
// placeholder marker, meaning the capability returned filler instead of
// real output.
func ContainsPlaceholder(content string) bool {
	lower := strings.ToLower(content)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
