package analyzer

// WordCount is one entry of a frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Statistics holds the counts computed for one block of text. A value is
// built once per analysis call and never mutated afterwards.
//
// Invariants: all counts are non-negative, CharacterCountNoSpaces never
// exceeds CharacterCount, TopWords entries are lowercase and sorted by
// descending count with ties kept in first-seen order.
type Statistics struct {
	WordCount              int         `json:"words"`
	CharacterCount         int         `json:"characters"`
	CharacterCountNoSpaces int         `json:"charactersNoSpaces"`
	SentenceCount          int         `json:"sentences"`
	TopWords               []WordCount `json:"topWords"`
}

// --- JSON output structs ---

// ErrorResult is used to report an error in JSON output format.
type ErrorResult struct {
	Error string `json:"error"`
	TopN  int    `json:"topN,omitempty"`
}

// TextAnalysisResult is the JSON rendering of a full report.
type TextAnalysisResult struct {
	Words              int         `json:"words"`
	Characters         int         `json:"characters"`
	CharactersNoSpaces int         `json:"charactersNoSpaces"`
	Sentences          int         `json:"sentences"`
	TopN               int         `json:"topN"`
	TopWords           []WordCount `json:"topWords"`
}
