package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/internal/ingest"
	"github.com/hadithlab/rawi/internal/svcctx"
)

// IngestRequest is the body for POST /collections/{name}/ingest.
type IngestRequest struct {
	ChunkSize int `json:"chunkSize,omitempty"`
	Overlap   int `json:"overlap,omitempty"`
}

// IngestEndpoint handles POST /collections/{name}/ingest: pack the
// collection's page text files into chunk inputs.
type IngestEndpoint struct{}

func (e *IngestEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/collections/{name}/ingest", e.handler
}

// @Summary Pack a collection's page text into chunk inputs
// @Tags ingest
// @Accept json
// @Produce json
// @Param name path string true "Collection name"
// @Param request body IngestRequest false "Chunking parameters"
// @Success 200 {object} ingest.Result
// @Failure 400 {object} ErrorResponse
// @Router /collections/{name}/ingest [post]
func (e *IngestEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	h := svcctx.HomeFrom(r.Context())
	if h == nil {
		writeError(w, http.StatusInternalServerError, "services not initialized")
		return
	}

	var body IngestRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	res, err := ingest.Ingest(h, ingest.Request{
		Collection: r.PathValue("name"),
		ChunkSize:  body.ChunkSize,
		Overlap:    body.Overlap,
		Logger:     svcctx.LoggerFrom(r.Context()),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (e *IngestEndpoint) Command(getServerURL func() string) *cobra.Command {
	var chunkSize, overlap int
	cmd := &cobra.Command{
		Use:   "ingest <collection>",
		Short: "Pack a collection's page text into chunk inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ingest.Result
			req := IngestRequest{ChunkSize: chunkSize, Overlap: overlap}
			if err := client.Post(cmd.Context(), "/collections/"+args[0]+"/ingest", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 10, "pages per chunk")
	cmd.Flags().IntVar(&overlap, "overlap", 2, "pages repeated from the previous chunk")
	return cmd
}
