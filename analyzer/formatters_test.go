package analyzer_test

import (
	"encoding/json"
	"strings"
	"testing"

	"textstat/analyzer"
)

func TestFormatReportText(t *testing.T) {
	stats := analyzer.Analyze("Hello, world! Hello again.")

	report, err := analyzer.FormatReport(stats, "text")
	if err != nil {
		t.Fatalf("FormatReport returned error: %v", err)
	}

	want := strings.Join([]string{
		"Words: 4",
		"Characters (including spaces): 26",
		"Characters (no spaces): 23",
		"Sentences: 2",
		"Top words: hello(2), world(1), again(1)",
	}, "\n")
	if report != want {
		t.Errorf("text report = %q, want %q", report, want)
	}
}

func TestFormatReportTextNoWords(t *testing.T) {
	report, err := analyzer.FormatReport(analyzer.Analyze(""), "text")
	if err != nil {
		t.Fatalf("FormatReport returned error: %v", err)
	}

	if strings.Contains(report, "Top words") {
		t.Errorf("empty input report should have no top-words line, got %q", report)
	}
	if strings.HasSuffix(report, "\n") {
		t.Errorf("report has a trailing newline: %q", report)
	}
	if got := len(strings.Split(report, "\n")); got != 4 {
		t.Errorf("report has %d lines, want 4", got)
	}
}

func TestFormatReportMarkdown(t *testing.T) {
	stats := analyzer.Analyze("One. Two")

	report, err := analyzer.FormatReport(stats, "markdown")
	if err != nil {
		t.Fatalf("FormatReport returned error: %v", err)
	}

	if !strings.HasPrefix(report, "```text\n") || !strings.HasSuffix(report, "\n```") {
		t.Errorf("markdown report is not fenced: %q", report)
	}
	for _, expected := range []string{"Words: 2", "Sentences: 2"} {
		if !strings.Contains(report, expected) {
			t.Errorf("markdown report missing %q:\n%s", expected, report)
		}
	}
}

func TestFormatReportJSON(t *testing.T) {
	stats := analyzer.Analyze("b a a b")

	report, err := analyzer.FormatReport(stats, "json")
	if err != nil {
		t.Fatalf("FormatReport returned error: %v", err)
	}

	var result analyzer.TextAnalysisResult
	if err := json.Unmarshal([]byte(report), &result); err != nil {
		t.Fatalf("invalid JSON report: %v\n%s", err, report)
	}
	if result.Words != 4 || result.Sentences != 1 {
		t.Errorf("result = %+v, want 4 words, 1 sentence", result)
	}
	if result.TopN != 2 || len(result.TopWords) != 2 {
		t.Errorf("result topN = %d with %d words, want 2 and 2", result.TopN, len(result.TopWords))
	}
	if result.TopWords[0].Word != "b" || result.TopWords[0].Count != 2 {
		t.Errorf("TopWords[0] = %v, want {b 2}", result.TopWords[0])
	}
}

func TestFormatReportJSONEmptyTopWords(t *testing.T) {
	report, err := analyzer.FormatReport(analyzer.Analyze(""), "json")
	if err != nil {
		t.Fatalf("FormatReport returned error: %v", err)
	}

	// topWords must serialize as an empty array, not null.
	if !strings.Contains(report, `"topWords": []`) {
		t.Errorf("JSON report should contain an empty topWords array:\n%s", report)
	}
}

func TestFormatReportUnsupportedFormat(t *testing.T) {
	_, err := analyzer.FormatReport(analyzer.Analyze("x"), "xml")
	if err == nil {
		t.Fatal("expected error for unsupported format, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("unexpected error message: %v", err)
	}
}
