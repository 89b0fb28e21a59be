package chunker

import "strings"

// EstimateTokens gives a rough token count for log output, at about
// 1.33 tokens per whitespace-separated word.
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return max(1, words*4/3)
}
