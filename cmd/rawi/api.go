package main

import (
	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running Rawi server via HTTP.

These commands require a running server (rawi serve).
Use --server to specify a custom server URL.

Examples:
  rawi api health                       # Check server health
  rawi api collections list             # List configured collections
  rawi api collections extract musnad   # Run extraction for one collection`,
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Collection management commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	// System endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ExtractAllEndpoint{}).Command(getServerURL))

	// Collections as subcommand group
	collectionsCmd.AddCommand((&endpoints.ListCollectionsEndpoint{}).Command(getServerURL))
	collectionsCmd.AddCommand((&endpoints.GetCollectionEndpoint{}).Command(getServerURL))
	collectionsCmd.AddCommand((&endpoints.GetExtractedEndpoint{}).Command(getServerURL))
	collectionsCmd.AddCommand((&endpoints.StatsEndpoint{}).Command(getServerURL))
	collectionsCmd.AddCommand((&endpoints.IngestEndpoint{}).Command(getServerURL))
	collectionsCmd.AddCommand((&endpoints.ExtractEndpoint{}).Command(getServerURL))
	collectionsCmd.AddCommand((&endpoints.RefineEndpoint{}).Command(getServerURL))

	apiCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(apiCmd)
}
