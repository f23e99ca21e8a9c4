// Package extract pulls six-digit verification codes out of notification text.
package extract

import (
	"regexp"

	"golang.org/x/text/width"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

// codePattern matches the first run of six ASCII digits. A longer digit run
// matches on its first six digits; no context such as "code" is considered.
var codePattern = regexp.MustCompile(`\d{6}`)

// ExtractCode returns the leftmost six-digit run in content.
func ExtractCode(content string) (string, bool) {
	if content == "" {
		return "", false
	}
	code := codePattern.FindString(content)
	return code, code != ""
}

// ResolveSender returns the notification title or the placeholder when it is empty.
func ResolveSender(title string) string {
	if title == "" {
		return domain.PlaceholderSender
	}
	return title
}

// ResolveContent prefers the short text, then the expanded text, then the placeholder.
func ResolveContent(text, bigText string) string {
	if text != "" {
		return text
	}
	if bigText != "" {
		return bigText
	}
	return domain.PlaceholderContent
}

// Options configures an Extractor.
type Options struct {
	// FoldWidth narrows full-width digits (０-９) before matching.
	FoldWidth bool
}

// Extractor turns notifications into code events.
type Extractor struct {
	opts Options
}

// New creates an Extractor.
func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// Event resolves the display fields of n and extracts its code.
func (x *Extractor) Event(n domain.Notification) domain.CodeEvent {
	content := ResolveContent(n.Text, n.BigText)

	match := content
	if x.opts.FoldWidth {
		match = width.Narrow.String(content)
	}
	code, _ := ExtractCode(match)

	return domain.CodeEvent{
		Code:      code,
		Sender:    ResolveSender(n.Title),
		Content:   content,
		SourceApp: n.PackageName,
	}
}
