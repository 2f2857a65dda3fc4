// Package http provides http transport for dataset sessions and exploration
package http

import (
	"io"
	stdhttp "net/http"

	"exposure/internal/modkit/httpkit"
	perr "exposure/internal/platform/errors"
	dssvc "exposure/internal/services/datasets/service"
	"exposure/internal/services/explorer/domain"
	expsvc "exposure/internal/services/explorer/service"
)

// maxUpload bounds multipart dataset uploads
const maxUpload = 64 << 20

// Register mounts dataset endpoints on the given router
func Register(r httpkit.Router, ds dssvc.Service, exp expsvc.Service) {
	h := &handlers{ds: ds, exp: exp}

	// session lifecycle
	r.Post("/", httpkit.Handle(h.upload))
	httpkit.Get(r, "/default", h.defaultDataset)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.Delete(r, "/{id}", h.drop)

	// exploration over a stored session
	httpkit.Get(r, "/{id}/facets", h.facets)
	httpkit.PostJSON[domain.QueryInput](r, "/{id}/query", h.query)
	httpkit.PostJSON[domain.QueryInput](r, "/{id}/aggregates", h.aggregates)
	r.Post("/{id}/export", httpkit.JSON(h.export))
}

type handlers struct {
	ds  dssvc.Service
	exp expsvc.Service
}

// upload accepts a multipart form with a "file" part and an optional
// "presence" field naming the column-presence policy
func (h *handlers) upload(r *stdhttp.Request) httpkit.Response {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		return httpkit.Error(perr.InvalidArgf("multipart form required: %v", err))
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return httpkit.Error(perr.InvalidArgf("missing file part"))
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUpload))
	if err != nil {
		return httpkit.Error(perr.Wrap(err, perr.ErrorCodeUnknown, "read upload"))
	}

	meta, err := h.ds.Upload(r.Context(), header.Filename, data, r.FormValue("presence"))
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Created(meta)
}

func (h *handlers) defaultDataset(r *stdhttp.Request) (any, error) {
	return h.ds.Default(r.Context())
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.ds.Get(r.Context(), httpkit.Param(r, "id"))
}

func (h *handlers) drop(r *stdhttp.Request) (any, error) {
	if err := h.ds.Drop(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

func (h *handlers) facets(r *stdhttp.Request) (any, error) {
	return h.exp.Facets(r.Context(), httpkit.Param(r, "id"))
}

func (h *handlers) query(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	return h.exp.Query(r.Context(), httpkit.Param(r, "id"), in)
}

func (h *handlers) aggregates(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	return h.exp.Aggregates(r.Context(), httpkit.Param(r, "id"), in)
}

func (h *handlers) export(r *stdhttp.Request, in domain.ExportInput) (any, error) {
	out, err := h.exp.Export(r.Context(), httpkit.Param(r, "id"), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Attachment(out.Filename, out.ContentType, out.Data), nil
}
