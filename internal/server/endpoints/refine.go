package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/internal/chunkstore"
	"github.com/hadithlab/rawi/internal/svcctx"
)

// RefineResponse summarizes an LLM refinement pass over a collection.
type RefineResponse struct {
	Collection string `json:"collection"`
	Chunks     int    `json:"chunks"`
	Refined    int    `json:"refined"`
}

// RefineEndpoint handles POST /collections/{name}/refine: re-split chain
// and content with the configured model for units the deterministic pass
// could not split. Requires refine to be enabled in config.
type RefineEndpoint struct{}

func (e *RefineEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/collections/{name}/refine", e.handler
}

// @Summary Refine unsplit units with the configured LLM
// @Tags extract
// @Produce json
// @Param name path string true "Collection name"
// @Success 200 {object} RefineResponse
// @Failure 400 {object} ErrorResponse
// @Router /collections/{name}/refine [post]
func (e *RefineEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	h := svcctx.HomeFrom(r.Context())
	ref := svcctx.RefinerFrom(r.Context())
	if h == nil {
		writeError(w, http.StatusInternalServerError, "services not initialized")
		return
	}
	if ref == nil {
		writeError(w, http.StatusBadRequest, "refine is not enabled in config")
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

	resp := RefineResponse{Collection: name, Chunks: len(ids)}
	for _, id := range ids {
		ec, err := store.ReadExtracted(id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out, n, err := ref.RefineChunk(r.Context(), ec)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		if n > 0 {
			if err := store.WriteExtracted(out); err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
		resp.Refined += n
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *RefineEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "refine <collection>",
		Short: "Refine unsplit units with the configured LLM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp RefineResponse
			if err := client.Post(cmd.Context(), "/collections/"+args[0]+"/refine", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
