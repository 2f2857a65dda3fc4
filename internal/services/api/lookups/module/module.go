// Package module wires the lookup endpoints into the API using modkit
package module

import (
	"net/http"

	modkit "exposure/internal/modkit"
	"exposure/internal/modkit/httpkit"
	str "exposure/internal/platform/strings"
	lookupshttp "exposure/internal/services/api/lookups/http"
	dsdomain "exposure/internal/services/datasets/domain"
)

// Ports names the cross-module ports this module consumes
type Ports struct {
	Datasets dsdomain.ServicePort
}

// Module implements the lookups module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the lookups module; inject the datasets port via
// modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("lookups"), modkit.WithPrefix("/lookups")}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Datasets == nil {
		panic("lookups module requires a datasets port")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     p,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		lookupshttp.Register(r, p.Datasets)
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
