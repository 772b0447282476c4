// Package analyzer computes descriptive statistics for a block of text:
// word count, character counts with and without whitespace, sentence count
// and the most frequent words.
package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTopN is the ranking depth used by Analyze.
const DefaultTopN = 5

// Sentence boundaries are runs of terminators; ".." or "?!" count once.
var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Analyze computes statistics for text with the default top-word depth.
// It is pure and total: any input, including the empty string, yields a
// result and the same input always yields the same result.
func Analyze(text string) Statistics {
	return AnalyzeTopN(text, DefaultTopN)
}

// AnalyzeTopN is Analyze with an explicit ranking depth. A depth of zero or
// less falls back to DefaultTopN.
func AnalyzeTopN(text string, topN int) Statistics {
	if topN <= 0 {
		topN = DefaultTopN
	}

	words := ExtractWords(text)

	return Statistics{
		WordCount:              len(words),
		CharacterCount:         utf8.RuneCountInString(text),
		CharacterCountNoSpaces: countNoSpaces(text),
		SentenceCount:          countSentences(text),
		TopWords:               rankWords(words, topN),
	}
}

// isCoreRune reports whether r may start or end a word.
func isCoreRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isTokenRune reports whether r may appear inside a word.
func isTokenRune(r rune) bool {
	return r == '\'' || r == '-' || isCoreRune(r)
}

// ExtractWords returns every word of the text in order of appearance. A word
// is a maximal run of letters, digits, underscores, apostrophes and hyphens,
// trimmed so that it begins and ends on a letter, digit or underscore.
// Apostrophes and hyphens survive inside a word ("don't", "foo-bar"); a run
// with no letter, digit or underscore at all yields no word.
func ExtractWords(text string) []string {
	var words []string
	var run []rune

	flush := func() {
		lo, hi := 0, len(run)
		for lo < hi && !isCoreRune(run[lo]) {
			lo++
		}
		for hi > lo && !isCoreRune(run[hi-1]) {
			hi--
		}
		if hi > lo {
			words = append(words, string(run[lo:hi]))
		}
		run = run[:0]
	}

	for _, r := range text {
		if isTokenRune(r) {
			run = append(run, r)
		} else {
			flush()
		}
	}
	flush()
	return words
}

// countNoSpaces counts the runes left after removing every whitespace run.
func countNoSpaces(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// countSentences splits the text on runs of '.', '!' and '?' and counts the
// segments that contain anything besides whitespace. Text with content but
// no terminator is a single unterminated sentence.
func countSentences(text string) int {
	n := 0
	for _, seg := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	return n
}

// rankWords tallies the words (lowercased, quote-trimmed) and returns the
// topN most frequent. Ties keep the order in which each distinct word first
// appeared.
func rankWords(words []string, topN int) []WordCount {
	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))

	for _, w := range words {
		w = strings.Trim(strings.ToLower(w), `'"`)
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	// Stable sort over first-seen order gives the tie-break for free.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	top := make([]WordCount, 0, len(order))
	for _, w := range order {
		top = append(top, WordCount{Word: w, Count: counts[w]})
	}
	return top
}
