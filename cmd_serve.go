package main

import (
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"textstat/analyzer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Expose text analysis as an MCP tool over stdio.

The server registers a single "analyze_text" tool that accepts inline text
or a URI (file://, http://, https://, or a plain local path) and returns a
statistics report.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	mcpServer := server.NewMCPServer(
		"TextStat",
		version,
		server.WithLogging(),
		server.WithRecovery(),
	)

	analyzeTool := mcp.NewTool("analyze_text",
		mcp.WithDescription("Compute descriptive statistics for a block of text: word count, character counts (with and without spaces), sentence count and the most frequent words."),
		mcp.WithString("text",
			mcp.Description("The text to analyze, passed inline. Provide either 'text' or 'text_uri', not both."),
		),
		mcp.WithString("text_uri",
			mcp.Description("URI of the text to analyze ('file://', 'http://', 'https://' or a plain local path). Provide either 'text' or 'text_uri', not both."),
		),
		mcp.WithNumber("top_n",
			mcp.Description("How many of the most frequent words to report."),
			mcp.DefaultNumber(float64(analyzer.DefaultTopN)),
		),
		mcp.WithString("output_format",
			mcp.Description("Output format of the report."),
			mcp.DefaultString("text"),
			mcp.Enum("text", "markdown", "json"),
		),
	)

	mcpServer.AddTool(analyzeTool, handleAnalyzeText)

	log.Println("Starting TextStat MCP server via stdio...")
	if err := server.ServeStdio(mcpServer); err != nil {
		return err
	}
	return nil
}
