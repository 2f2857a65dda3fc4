// Package http provides the judicial risk lookup endpoints
package http

import (
	"io"
	stdhttp "net/http"

	"exposure/internal/modkit/httpkit"
	perr "exposure/internal/platform/errors"
	dsdomain "exposure/internal/services/datasets/domain"
)

// maxUpload bounds the risk workbook upload
const maxUpload = 16 << 20

type handlers struct {
	datasets dsdomain.ServicePort
}

// Register mounts lookup endpoints on the given router
func Register(r httpkit.Router, datasets dsdomain.ServicePort) {
	h := &handlers{datasets: datasets}
	r.Post("/judicial", httpkit.Handle(h.judicial))
}

// JudicialResponse reports how many venues the lookup now covers
type JudicialResponse struct {
	Venues int `json:"venues"`
}

// judicial accepts a multipart workbook upload with a JudicialRisk sheet
func (h *handlers) judicial(r *stdhttp.Request) httpkit.Response {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		return httpkit.Error(perr.InvalidArgf("multipart form required: %v", err))
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return httpkit.Error(perr.InvalidArgf("missing file part"))
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUpload))
	if err != nil {
		return httpkit.Error(perr.Wrap(err, perr.ErrorCodeUnknown, "read upload"))
	}

	n, err := h.datasets.SetRisk(r.Context(), data)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(JudicialResponse{Venues: n})
}
