package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/internal/chunkstore"
	"github.com/hadithlab/rawi/internal/extract"
	"github.com/hadithlab/rawi/internal/svcctx"
	"github.com/hadithlab/rawi/internal/types"
)

// StatsResponse aggregates quality counters over a collection's extraction
// output.
type StatsResponse struct {
	Collection string             `json:"collection"`
	Chunks     int                `json:"chunks"`
	Stats      types.QualityStats `json:"stats"`
}

// StatsEndpoint handles GET /collections/{name}/stats.
type StatsEndpoint struct{}

func (e *StatsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/collections/{name}/stats", e.handler
}

// @Summary Aggregate extraction quality counters for a collection
// @Tags collections
// @Produce json
// @Param name path string true "Collection name"
// @Success 200 {object} StatsResponse
// @Failure 404 {object} ErrorResponse
// @Router /collections/{name}/stats [get]
func (e *StatsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	h := svcctx.HomeFrom(r.Context())
	if h == nil {
		writeError(w, http.StatusInternalServerError, "services not initialized")
		return
	}
	name := r.PathValue("name")

	store, err := chunkstore.New(h.ChunksDir(name))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	ids, err := store.ListExtracted()
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	resp := StatsResponse{Collection: name, Chunks: len(ids)}
	for _, id := range ids {
		ec, err := store.ReadExtracted(id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Stats.Add(extract.Stats(ec.Units))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *StatsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <collection>",
		Short: "Show extraction quality counters for a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp StatsResponse
			if err := client.Get(cmd.Context(), "/collections/"+args[0]+"/stats", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
