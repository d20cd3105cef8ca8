package service

import "unicode/utf8"

const (
	// SummaryPromptPrefix is the fixed instruction placed before the document text.
	SummaryPromptPrefix = "Summarize the following text:\n\n"

	// DefaultMaxPromptChars is the truncation budget applied to extracted text.
	DefaultMaxPromptChars = 2000
)

// TruncateText cuts text to its first maxLength characters (runes, not bytes).
// It reports whether anything was cut. maxLength <= 0 selects DefaultMaxPromptChars.
func TruncateText(text string, maxLength int) (string, bool) {
	if maxLength <= 0 {
		maxLength = DefaultMaxPromptChars
	}
	if len(text) <= maxLength || utf8.RuneCountInString(text) <= maxLength {
		return text, false
	}

	count := 0
	for i := range text {
		if count == maxLength {
			return text[:i], true
		}
		count++
	}
	return text, false
}

// BuildPrompt wraps the truncated text in the summarization instruction.
func BuildPrompt(text string, maxLength int) string {
	truncated, _ := TruncateText(text, maxLength)
	return SummaryPromptPrefix + truncated
}
