package endpoints

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/internal/chunkstore"
	"github.com/hadithlab/rawi/internal/svcctx"
	"github.com/hadithlab/rawi/internal/types"
)

// GetExtractedEndpoint handles GET /collections/{name}/chunks/{id}. It
// returns one chunk's extraction output.
type GetExtractedEndpoint struct{}

func (e *GetExtractedEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/collections/{name}/chunks/{id}", e.handler
}

// @Summary Get one chunk's extraction output
// @Tags collections
// @Produce json
// @Param name path string true "Collection name"
// @Param id path int true "Chunk id"
// @Success 200 {object} types.ExtractedChunk
// @Failure 404 {object} ErrorResponse
// @Router /collections/{name}/chunks/{id} [get]
func (e *GetExtractedEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	h := svcctx.HomeFrom(r.Context())
	if h == nil {
		writeError(w, http.StatusInternalServerError, "services not initialized")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "chunk id must be an integer")
		return
	}

	store, err := chunkstore.New(h.ChunksDir(r.PathValue("name")))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	ec, err := store.ReadExtracted(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ec)
}

func (e *GetExtractedEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "chunk <collection> <id>",
		Short: "Show one chunk's extraction output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp types.ExtractedChunk
			path := fmt.Sprintf("/collections/%s/chunks/%s", args[0], args[1])
			if err := client.Get(cmd.Context(), path, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
