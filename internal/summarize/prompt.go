package summarize

const SystemPrompt = "You are a helpful assistant that summarizes text chunks provided from books."

// SummaryPrompt wraps a chunk in the user instruction.
func SummaryPrompt(text string) string {
	return "Summarize the following text: " + text
}
