package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/config"
	"github.com/hadithlab/rawi/internal/home"
	"github.com/hadithlab/rawi/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Rawi server",
	Long: `Start the Rawi HTTP server.

The server exposes the ingest and extraction pipeline over HTTP. Config
changes (collection profiles, refine settings) are picked up without a
restart.

Examples:
  rawi serve                    # Start on default port 8080
  rawi serve --port 3000        # Start on custom port
  rawi serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}

		srv, err := server.New(server.Config{
			Host:          serveHost,
			Port:          servePort,
			Home:          h,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
