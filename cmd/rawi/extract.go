package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/internal/config"
	"github.com/hadithlab/rawi/internal/home"
	"github.com/hadithlab/rawi/internal/runner"
)

var extractAll bool

// extractCmd runs extraction directly against the local home directory,
// without a server.
var extractCmd = &cobra.Command{
	Use:   "extract [collection...]",
	Short: "Extract units from collections on the local filesystem",
	Long: `Extract structured units from the chunk files of one or more
collections. Chunks within a collection are processed strictly in order;
separate collections run concurrently.

Examples:
  rawi extract musnad           # One collection
  rawi extract musnad arbain    # Several collections
  rawi extract --all            # Every configured collection`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}

		names := args
		if extractAll {
			names = cm.Get().CollectionNames()
		}
		if len(names) == 0 {
			return cmd.Help()
		}

		r := runner.New(h, cm, logger)
		reports := r.RunAll(cmd.Context(), names)
		return api.Output(reports)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractAll, "all", false, "extract every configured collection")
	rootCmd.AddCommand(extractCmd)
}
