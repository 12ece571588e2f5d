package render

import (
	"strings"
	"testing"
)

func TestColorizeMarkdown(t *testing.T) {
	got := ColorizeMarkdown("🟢 good 🔴 bad")

	if !strings.Contains(got, `<span style="color:#34d399;font-weight:700;">🟢</span>`) {
		t.Error("green glyph not wrapped")
	}
	if !strings.Contains(got, `<span style="color:#f87171;font-weight:700;">🔴</span>`) {
		t.Error("red glyph not wrapped")
	}
	if !strings.Contains(got, " good ") || !strings.HasSuffix(got, " bad") {
		t.Errorf("surrounding text modified: %q", got)
	}
}

func TestColorizeMarkdownAllGlyphs(t *testing.T) {
	got := ColorizeMarkdown("🟢🟡🔴")
	for _, color := range []string{"#34d399", "#fbbf24", "#f87171"} {
		if !strings.Contains(got, color) {
			t.Errorf("colorized output missing %s", color)
		}
	}
}

func TestColorizeMarkdownPassThrough(t *testing.T) {
	in := "# Report\nno glyphs here"
	if got := ColorizeMarkdown(in); got != in {
		t.Errorf("text without glyphs changed: %q", got)
	}
}

func TestStripForSpeech(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "markup and emoji",
			input: "**Hello** 😀 [link](url) # Title",
			want:  "Hello link Title",
		},
		{
			name:  "italic and code",
			input: "*emphasis* and `code` here",
			want:  "emphasis and code here",
		},
		{
			name:  "lists and blockquotes",
			input: "- first\n- second\n> quoted",
			want:  "first second quoted",
		},
		{
			name:  "headings",
			input: "## Section\ntext",
			want:  "Section text",
		},
		{
			name:  "whitespace collapsed and trimmed",
			input: "  several   spaces\n\nand lines  ",
			want:  "several spaces and lines",
		},
		{
			name:  "plain text untouched",
			input: "The Creta holds value well.",
			want:  "The Creta holds value well.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripForSpeech(tt.input); got != tt.want {
				t.Errorf("StripForSpeech(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
