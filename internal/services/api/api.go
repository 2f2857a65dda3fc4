// Package api provides the HTTP API for the application
package api

import (
	"exposure/internal/platform/config"
	"exposure/internal/platform/logger"
	phttp "exposure/internal/platform/net/http"

	"exposure/internal/modkit"
	"exposure/internal/modkit/httpkit"
	"exposure/internal/modkit/module"
	"exposure/internal/modkit/swaggerkit"

	lookupsmod "exposure/internal/services/api/lookups/module"
	metamod "exposure/internal/services/api/meta/module"
	datasetsmod "exposure/internal/services/datasets/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// the datasets module owns the session store; pull its ports for the
	// modules that consume them
	datasets := datasetsmod.New(deps)
	dsPorts := module.MustPortsOf[datasetsmod.Ports](datasets)

	lookups := lookupsmod.New(
		deps,
		modkit.WithPorts(lookupsmod.Ports{Datasets: dsPorts.Datasets}),
	)
	meta := metamod.New(
		deps,
		modkit.WithPorts(metamod.Ports{Datasets: dsPorts.Datasets}),
	)

	mods := []module.Module{
		meta,
		datasets,
		lookups,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
