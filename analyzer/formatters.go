package analyzer

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// FormatReport renders statistics in the requested output format.
// Supported formats are "text", "markdown" and "json".
func FormatReport(stats Statistics, format string) (string, error) {
	switch format {
	case "text":
		return renderText(stats), nil

	case "markdown":
		// Fenced text block keeps the alignment intact in rendered markdown.
		return "```text\n" + renderText(stats) + "\n```", nil

	case "json":
		result := TextAnalysisResult{
			Words:              stats.WordCount,
			Characters:         stats.CharacterCount,
			CharactersNoSpaces: stats.CharacterCountNoSpaces,
			Sentences:          stats.SentenceCount,
			TopN:               len(stats.TopWords),
			TopWords:           stats.TopWords,
		}
		if result.TopWords == nil {
			result.TopWords = []WordCount{}
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Printf("Error marshaling text analysis to JSON: %v", err)
			errorResult := ErrorResult{Error: fmt.Sprintf("Failed to marshal result to JSON: %v", err)}
			errJsonBytes, _ := json.Marshal(errorResult)
			return string(errJsonBytes), nil
		}
		return string(jsonBytes), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderText produces the plain report: one line per counter, in fixed
// order, plus a top-words line when there is at least one word. No trailing
// newline.
func renderText(stats Statistics) string {
	lines := []string{
		fmt.Sprintf("Words: %d", stats.WordCount),
		fmt.Sprintf("Characters (including spaces): %d", stats.CharacterCount),
		fmt.Sprintf("Characters (no spaces): %d", stats.CharacterCountNoSpaces),
		fmt.Sprintf("Sentences: %d", stats.SentenceCount),
	}
	if len(stats.TopWords) > 0 {
		pairs := make([]string, 0, len(stats.TopWords))
		for _, wc := range stats.TopWords {
			pairs = append(pairs, fmt.Sprintf("%s(%d)", wc.Word, wc.Count))
		}
		lines = append(lines, "Top words: "+strings.Join(pairs, ", "))
	}
	return strings.Join(lines, "\n")
}
