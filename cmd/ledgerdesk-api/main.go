package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ledgerdesk/internal/platform/config"
	"ledgerdesk/internal/platform/logger"
	phttp "ledgerdesk/internal/platform/net/http"
	"ledgerdesk/internal/platform/store"

	"ledgerdesk/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (LEDGERDESK_API_*)
	root := config.New()
	apiCfg := root.Prefix("LEDGERDESK_API_")
	pgCfg := root.Prefix("LEDGERDESK_PGSQL_")

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "ledgerdesk-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 8)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads LEDGERDESK_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config: apiCfg,
			Store:  st,
			Logger: l,
		},
	)

	// SIGINT/SIGTERM drain the server before the store closes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
