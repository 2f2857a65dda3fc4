package main

import (
	"context"

	"exposure/internal/platform/config"
	"exposure/internal/platform/logger"
	phttp "exposure/internal/platform/net/http"

	"exposure/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (EXPOSURE_API_*)
	root := config.New()
	apiCfg := root.Prefix("EXPOSURE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads EXPOSURE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
