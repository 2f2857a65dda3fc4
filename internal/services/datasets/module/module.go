// Package module wires dataset sessions into the API using modkit
package module

import (
	"net/http"

	modkit "exposure/internal/modkit"
	"exposure/internal/modkit/httpkit"
	str "exposure/internal/platform/strings"
	dshttp "exposure/internal/services/datasets/http"
	dsrepo "exposure/internal/services/datasets/repo"
	dssvc "exposure/internal/services/datasets/service"
	expsvc "exposure/internal/services/explorer/service"
)

// Module implements the datasets module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc dssvc.Service
	exp expsvc.Service
}

// New constructs the datasets module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("datasets"), modkit.WithPrefix("/datasets")}, opts...)...)

	store := dsrepo.NewMemory()
	svc := dssvc.New(store, FromConfig(deps.Cfg))
	exp := expsvc.New(svc)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
		exp:       exp,
	}
	m.ports = Ports{Datasets: svc, Explorer: exp}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dshttp.Register(r, m.svc, m.exp)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
