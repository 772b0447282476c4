package main

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"

	"textstat/analyzer"
)

// handleAnalyzeText handles requests for the "analyze_text" MCP tool.
func handleAnalyzeText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	// --- 1. Fetch and validate arguments ---
	text, hasText := args["text"].(string)
	textURI, hasURI := args["text_uri"].(string)
	if hasText && text == "" {
		hasText = false
	}
	if hasURI && textURI == "" {
		hasURI = false
	}
	if hasText == hasURI {
		return nil, fmt.Errorf("exactly one of 'text' or 'text_uri' must be provided")
	}

	outputFormat, ok := args["output_format"].(string)
	if !ok {
		outputFormat = "text"
	}
	topNFloat, ok := args["top_n"].(float64)
	if !ok {
		topNFloat = float64(analyzer.DefaultTopN)
	}
	topN := int(topNFloat)
	if topN <= 0 {
		topN = analyzer.DefaultTopN
	}

	log.Printf("Handling analyze_text: URI=%q, inline=%t, TopN=%d, Format=%s", textURI, hasText, topN, outputFormat)

	// --- 2. Resolve the text source ---
	if hasURI {
		var err error
		text, err = getTextFromSource(textURI)
		if err != nil {
			return nil, fmt.Errorf("failed to get text: %w", err)
		}
	}

	// --- 3. Analyze and format ---
	stats := analyzer.AnalyzeTopN(text, topN)
	report, err := analyzer.FormatReport(stats, outputFormat)
	if err != nil {
		log.Printf("Formatting error for format '%s': %v", outputFormat, err)
		return nil, err
	}

	// --- 4. Return the report ---
	log.Printf("Analysis successful: %d words, %d sentences. Report length: %d", stats.WordCount, stats.SentenceCount, len(report))
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: report,
			},
		},
	}, nil
}
