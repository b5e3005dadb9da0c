// Package api mounts the HTTP API
package api

import (
	"time"

	"findstrings/internal/modkit"
	"findstrings/internal/modkit/httpkit"
	"findstrings/internal/platform/config"
	"findstrings/internal/platform/logger"
	phttp "findstrings/internal/platform/net/http"
	"findstrings/internal/platform/net/middleware"

	metamod "findstrings/internal/services/api/meta/module"
	scanmod "findstrings/internal/services/scan/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf // FINDSTRINGS_ scoped
	Logger         *logger.Logger
	Scan           *scanmod.Options // nil reads env
	EnableProfiler bool
}

// Mount mounts the API onto r, which must not have routes yet:
//
//	GET  /health
//	GET  /api/v1/meta/{version,service,tables}
//	POST /api/v1/scan
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.Deps{Cfg: opt.Config, Log: opt.Logger}

	scan, err := scanmod.New(deps, opt.Scan)
	if err != nil {
		return err
	}
	so := scan.Options()

	mods := []modkit.Module{
		metamod.New(deps, scan.DefaultTable()),
		scan,
	}

	r.Use(middleware.Heartbeat("/health"))
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		Timeout: so.Timeout,
		Slow:    time.Second,
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			deps.Logger().Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})
	return nil
}
