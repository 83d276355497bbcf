package domain

import "unicode/utf8"

// MaxContentLength is the maximum scraped content length in characters.
// Longer content is cut at this length and TruncationMarker is appended.
const MaxContentLength = 5000

// TruncationMarker is appended to content cut at MaxContentLength.
const TruncationMarker = "\n\n... [Content truncated for length]"

// ScrapeResult is the outcome of fetching one page. A scrape never
// fails the batch: failures are carried as a display message so the
// orchestrator's error substitution is an explicit branch rather than
// suppressed exceptions.
type ScrapeResult struct {
	// Content is the page text when the scrape succeeded.
	Content string

	// Failed reports whether the scrape failed.
	Failed bool

	// Message is the human-readable failure description.
	Message string
}

// ScrapeSuccess builds a successful result, truncating oversized content.
func ScrapeSuccess(content string) ScrapeResult {
	return ScrapeResult{Content: TruncateContent(content)}
}

// ScrapeFailure builds a failed result carrying a display message.
func ScrapeFailure(message string) ScrapeResult {
	return ScrapeResult{Failed: true, Message: message}
}

// Render returns the text to place in a report section: the content on
// success, the failure message otherwise.
func (r ScrapeResult) Render() string {
	if r.Failed {
		return r.Message
	}
	return r.Content
}

// TruncateContent cuts content exceeding MaxContentLength characters
// and appends the truncation marker. Content at or under the limit is
// unchanged. The limit counts runes, not bytes, so multibyte content
// is never cut mid-character.
func TruncateContent(content string) string {
	if utf8.RuneCountInString(content) <= MaxContentLength {
		return content
	}
	return string([]rune(content)[:MaxContentLength]) + TruncationMarker
}
