// Package api assembles the HTTP API surface from the service modules
package api

import (
	"context"
	stdhttp "net/http"
	"time"

	"ledgerdesk/internal/modkit"
	"ledgerdesk/internal/modkit/httpkit"
	"ledgerdesk/internal/platform/config"
	perr "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/logger"
	phttp "ledgerdesk/internal/platform/net/http"
	"ledgerdesk/internal/platform/net/middleware"
	"ledgerdesk/internal/platform/store"

	stmtmod "ledgerdesk/internal/services/statements/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount attaches middleware, health, and every module's routes
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	r.Use(middleware.Defaults()...)
	r.Use(middleware.RecoverJSON)
	r.Use(middleware.AccessLogZerolog(middleware.AccessLogOptions{
		Slow: opt.Config.MayDuration("SLOW_REQUEST", time.Second),
	}))
	r.Use(middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"*"}),
	}))

	mountHealth(r, opt.Store)

	mods := []modkit.Module{
		stmtmod.New(deps),
	}
	for _, m := range mods {
		m.MountRoutes(r)
	}
}

// mountHealth answers liveness probes with a database round trip
func mountHealth(r phttp.Router, st *store.Store) {
	httpkit.Get(r, "/health", func(req *stdhttp.Request) (any, error) {
		ctx, cancel := context.WithTimeout(req.Context(), 5*time.Second)
		defer cancel()

		const probe = "healthy"
		got, err := store.Scalar[string](ctx, st.PG, "SELECT $1::TEXT", probe)
		if err != nil {
			return nil, perr.FromPostgres(err, "health probe")
		}
		if got != probe {
			return nil, perr.Newf(perr.ErrorCodeConnection, "health probe echoed %q", got)
		}
		return map[string]string{"status": "healthy"}, nil
	})
}
