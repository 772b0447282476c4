package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"textstat/analyzer"
)

var (
	analyzeText   string
	analyzeFile   string
	analyzeFormat string
	analyzeTopN   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze text and print a statistics report",
	Long: `Analyze a block of text and print its statistics.

The text comes from --text, from --file (a path or a file://, http://,
https:// URI), or from stdin when neither flag is given.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "text to analyze")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "file path or URI to analyze")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "output format: text, markdown or json")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top", 0, "how many of the most frequent words to report")
	analyzeCmd.MarkFlagsMutuallyExclusive("text", "file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if analyzeFormat == "" {
		analyzeFormat = cfg.OutputFormat
	}
	if analyzeTopN <= 0 {
		analyzeTopN = cfg.TopN
	}

	var text string
	switch {
	case analyzeFile != "":
		text, err = getTextFromSource(analyzeFile)
		if err != nil {
			return err
		}
	case analyzeText != "":
		text = analyzeText
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read text from stdin: %w", err)
		}
		text = string(data)
	}

	stats := analyzer.AnalyzeTopN(text, analyzeTopN)
	report, err := analyzer.FormatReport(stats, analyzeFormat)
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}
