package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/internal/chunkstore"
	"github.com/hadithlab/rawi/internal/svcctx"
)

// CollectionInfo describes one configured collection and its on-disk state.
type CollectionInfo struct {
	Name      string `json:"name"`
	Grammar   string `json:"grammar"`
	Chunks    int    `json:"chunks"`
	Extracted int    `json:"extracted"`
}

func collectionInfo(r *http.Request, name string) (CollectionInfo, error) {
	cm := svcctx.ConfigManagerFrom(r.Context())
	h := svcctx.HomeFrom(r.Context())
	if cm == nil || h == nil {
		return CollectionInfo{}, fmt.Errorf("services not initialized")
	}

	colCfg, ok := cm.Get().GetCollection(name)
	if !ok {
		return CollectionInfo{}, fmt.Errorf("collection %q not configured", name)
	}

	info := CollectionInfo{Name: name, Grammar: string(colCfg.Profile().Grammar)}

	store, err := chunkstore.New(h.ChunksDir(name))
	if err != nil {
		return info, err
	}
	if ids, err := store.List(); err == nil {
		info.Chunks = len(ids)
	}
	if ids, err := store.ListExtracted(); err == nil {
		info.Extracted = len(ids)
	}
	return info, nil
}

// ListCollectionsEndpoint handles GET /collections.
type ListCollectionsEndpoint struct{}

func (e *ListCollectionsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/collections", e.handler
}

// @Summary List configured collections
// @Tags collections
// @Produce json
// @Success 200 {array} CollectionInfo
// @Router /collections [get]
func (e *ListCollectionsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	cm := svcctx.ConfigManagerFrom(r.Context())
	if cm == nil {
		writeError(w, http.StatusInternalServerError, "services not initialized")
		return
	}

	infos := make([]CollectionInfo, 0)
	for _, name := range cm.Get().CollectionNames() {
		info, err := collectionInfo(r, name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		infos = append(infos, info)
	}
	writeJSON(w, http.StatusOK, infos)
}

func (e *ListCollectionsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp []CollectionInfo
			if err := client.Get(cmd.Context(), "/collections", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// GetCollectionEndpoint handles GET /collections/{name}.
type GetCollectionEndpoint struct{}

func (e *GetCollectionEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/collections/{name}", e.handler
}

// @Summary Get one collection
// @Tags collections
// @Produce json
// @Param name path string true "Collection name"
// @Success 200 {object} CollectionInfo
// @Failure 404 {object} ErrorResponse
// @Router /collections/{name} [get]
func (e *GetCollectionEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	info, err := collectionInfo(r, r.PathValue("name"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (e *GetCollectionEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <collection>",
		Short: "Show one collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp CollectionInfo
			if err := client.Get(cmd.Context(), "/collections/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
