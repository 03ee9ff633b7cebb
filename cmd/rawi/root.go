package main

import (
	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "rawi",
	Short: "Deterministic segmentation of paginated classical Arabic texts",
	Long: `Rawi turns paginated classical Arabic collections (hadith compilations,
du'a manuals) into structured unit records: numbered hadiths with their
isnad and matn, section headings, footnotes and page ranges.

The pipeline includes:
  - Page text ingestion with overlapping chunk packing
  - Three boundary grammars: numbered, ordinal and item markers
  - Diacritic-insensitive heading and marker matching
  - Footnote separation and chain/content splitting
  - Optional LLM refinement for units the heuristics cannot split`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.rawi/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "rawi home directory (default: ~/.rawi)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
