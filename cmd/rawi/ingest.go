package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/internal/home"
	"github.com/hadithlab/rawi/internal/ingest"
)

var (
	ingestChunkSize int
	ingestOverlap   int
)

// ingestCmd packs page text into chunk inputs directly on the local
// filesystem, without a server.
var ingestCmd = &cobra.Command{
	Use:   "ingest <collection>",
	Short: "Pack a collection's page text into chunk inputs",
	Long: `Pack the per-page text files of a collection into overlapping chunk
files ready for extraction. Volume PDFs in the collection's originals
directory, when present, annotate pages with volume and printed page
numbers.

Examples:
  rawi ingest musnad
  rawi ingest musnad --chunk-size 20 --overlap 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}

		res, err := ingest.Ingest(h, ingest.Request{
			Collection: args[0],
			ChunkSize:  ingestChunkSize,
			Overlap:    ingestOverlap,
			Logger:     logger,
		})
		if err != nil {
			return err
		}
		return api.Output(res)
	},
}

func init() {
	ingestCmd.Flags().IntVar(&ingestChunkSize, "chunk-size", 10, "pages per chunk")
	ingestCmd.Flags().IntVar(&ingestOverlap, "overlap", 2, "pages repeated from the previous chunk")
	rootCmd.AddCommand(ingestCmd)
}
