// Package api provides the HTTP API for the application
package api

import (
	"time"

	"batakh/internal/core/langpack"
	"batakh/internal/core/temporal"
	"batakh/internal/platform/config"
	"batakh/internal/platform/logger"
	phttp "batakh/internal/platform/net/http"
	"batakh/internal/platform/net/middleware"

	metahttp "batakh/internal/services/api/meta/http"
	parsehttp "batakh/internal/services/api/parse/http"
	parsesvc "batakh/internal/services/api/parse/service"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
	Pack   *langpack.Pack
	Parser *temporal.Parser
}

// Mount wires the middleware stack, the Duckling-compatible protocol surface
// at the router root, and the operational endpoints under /meta
func Mount(r phttp.Router, opt Options) {
	r.Use(middleware.Defaults()...)
	r.Use(middleware.AccessLog(middleware.AccessLogOptions{
		Slow: opt.Config.MayDuration("SLOW", 250*time.Millisecond),
	}))
	if origins := opt.Config.MayString("CORS_ORIGINS", ""); origins != "" {
		r.Use(middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{origins}}))
	}

	parsehttp.Register(r, parsesvc.New(opt.Parser))

	r.Route("/meta", func(rr phttp.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: "batakh-api",
			StartedAt:   time.Now(),
			Pack:        opt.Pack,
		})
	})
}
