// Package render post-processes the markdown returned by the completion
// endpoint: glyph colorization for display and text stripping for speech
// synthesis.
package render

import (
	"regexp"
	"strings"
)

// glyphReplacer wraps the three status glyphs in fixed styled spans.
// Everything else passes through unchanged.
//
// Not idempotent: running it again over already-wrapped output wraps the
// glyph a second time. Callers colorize exactly once, at render time.
var glyphReplacer = strings.NewReplacer(
	"🟢", `<span style="color:#34d399;font-weight:700;">🟢</span>`,
	"🟡", `<span style="color:#fbbf24;font-weight:700;">🟡</span>`,
	"🔴", `<span style="color:#f87171;font-weight:700;">🔴</span>`,
)

// ColorizeMarkdown replaces 🟢/🟡/🔴 with colored spans.
func ColorizeMarkdown(md string) string {
	return glyphReplacer.Replace(md)
}

var (
	emojiPattern      = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2702}-\x{27B0}\x{24C2}-\x{1F251}]+`)
	boldPattern       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.*?)\*`)
	codePattern       = regexp.MustCompile("`(.*?)`")
	linkPattern       = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	headingPattern    = regexp.MustCompile(`#{1,6}\s`)
	listItemPattern   = regexp.MustCompile(`[-*+]\s`)
	blockquotePattern = regexp.MustCompile(`>\s`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripForSpeech prepares a reply for text-to-speech: emoji removed, markdown
// markup unwrapped, whitespace collapsed. Emoji and markup removal must both
// run before the whitespace collapse or double spaces survive.
func StripForSpeech(text string) string {
	text = emojiPattern.ReplaceAllString(text, "")

	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = codePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = headingPattern.ReplaceAllString(text, "")
	text = listItemPattern.ReplaceAllString(text, "")
	text = blockquotePattern.ReplaceAllString(text, "")

	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
