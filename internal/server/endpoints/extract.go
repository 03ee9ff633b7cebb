package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hadithlab/rawi/internal/api"
	"github.com/hadithlab/rawi/internal/runner"
	"github.com/hadithlab/rawi/internal/svcctx"
)

// ExtractEndpoint handles POST /collections/{name}/extract. The run is
// synchronous: chunks within a collection cannot be parallelized, so the
// response carries the finished report.
type ExtractEndpoint struct{}

func (e *ExtractEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/collections/{name}/extract", e.handler
}

// @Summary Extract one collection
// @Tags extract
// @Produce json
// @Param name path string true "Collection name"
// @Success 200 {object} runner.CollectionReport
// @Failure 400 {object} ErrorResponse
// @Router /collections/{name}/extract [post]
func (e *ExtractEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	run := svcctx.RunnerFrom(r.Context())
	if run == nil {
		writeError(w, http.StatusInternalServerError, "services not initialized")
		return
	}

	report, err := run.RunCollection(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (e *ExtractEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <collection>",
		Short: "Extract units from one collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp runner.CollectionReport
			if err := client.Post(cmd.Context(), "/collections/"+args[0]+"/extract", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// ExtractAllEndpoint handles POST /extract: every configured collection,
// concurrently on the runner's worker pool.
type ExtractAllEndpoint struct{}

func (e *ExtractAllEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/extract", e.handler
}

// @Summary Extract all configured collections
// @Tags extract
// @Produce json
// @Success 200 {array} runner.CollectionReport
// @Router /extract [post]
func (e *ExtractAllEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	run := svcctx.RunnerFrom(r.Context())
	cm := svcctx.ConfigManagerFrom(r.Context())
	if run == nil || cm == nil {
		writeError(w, http.StatusInternalServerError, "services not initialized")
		return
	}

	reports := run.RunAll(r.Context(), cm.Get().CollectionNames())
	writeJSON(w, http.StatusOK, reports)
}

func (e *ExtractAllEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "extract-all",
		Short: "Extract units from every configured collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp []runner.CollectionReport
			if err := client.Post(cmd.Context(), "/extract", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
