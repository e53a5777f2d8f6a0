package pagesum

import "unicode/utf8"

// MaxPromptChars is the maximum number of characters of article text
// included in a prompt.
const MaxPromptChars = 20000

// TruncationMarker is appended to article text cut at MaxPromptChars.
const TruncationMarker = "..."

// BuildPrompt returns the instruction-plus-content prompt for text in the
// given style. Text longer than MaxPromptChars is truncated and marked with
// TruncationMarker.
func BuildPrompt(text string, style Style) string {
	text = truncateChars(text, MaxPromptChars)
	switch style {
	case StyleBrief:
		return "Provide a brief summary of the following article in 2-3 sentences:\n\n" + text
	case StyleDetailed:
		return "Provide a detailed summary of the following article, covering all main points and key details:\n\n" + text
	case StyleBullets:
		return "Summarize the following article in 5-7 key points using dashes (-):\n\n" + text
	default:
		return "Summarize the following article:\n\n" + text
	}
}

// truncateChars cuts s to at most n runes, appending TruncationMarker if
// anything was removed.
func truncateChars(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + TruncationMarker
		}
		i++
	}
	return s
}
