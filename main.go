package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:     "textstat",
	Short:   "Descriptive statistics for text",
	Version: version,
	Long: `textstat computes basic descriptive statistics for a block of text:
word count, character counts (with and without spaces), sentence count and
the most frequent words.

Available subcommands:
  analyze    - Analyze text from a flag, a file/URI or stdin
  serve      - Run the MCP server over stdio
  serve-http - Run the HTTP analysis API`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
