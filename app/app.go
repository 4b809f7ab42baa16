package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shopsavvy/dealbot/bot"
	"github.com/shopsavvy/dealbot/bot/session"
	"github.com/shopsavvy/dealbot/catalog"
	"github.com/shopsavvy/dealbot/core/bootstrap"
	coreconfig "github.com/shopsavvy/dealbot/core/config"
	coredatabase "github.com/shopsavvy/dealbot/core/database"
	coretelegram "github.com/shopsavvy/dealbot/core/telegram"
	"github.com/shopsavvy/dealbot/core/telegram/router"
	tgsender "github.com/shopsavvy/dealbot/core/telegram/sender"
	"github.com/shopsavvy/dealbot/core/telegram/ui"
	"github.com/shopsavvy/dealbot/deals"
)

// App holds the bot's assembled services for the lifetime of the
// process.
type App struct {
	cfg  *Config
	db   *sqlx.DB
	flow *bot.Flow
}

// Bootstrap initializes logging, optional storage, and the conversation
// services.
func Bootstrap(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}

	var dbCfg *coredatabase.Config
	if cfg.Core.Catalog.Storage == coreconfig.CatalogStoragePostgres {
		dbCfg = &cfg.Database
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   &cfg.Core,
		Database: dbCfg,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	modules := catalogModules()
	for _, seeder := range modules.Seeders {
		if err := seeder.Seed(ctx, res.DB); err != nil {
			return nil, fmt.Errorf("app: catalog seed: %w", err)
		}
	}

	provided, err := modules.Services.Provide(ctx, cfg, res.DB)
	if err != nil {
		return nil, err
	}
	svc, ok := provided.(*catalog.Service)
	if !ok {
		return nil, fmt.Errorf("app: unexpected service type %T", provided)
	}

	flow := bot.NewFlow(session.NewMemoryManager(), svc, deals.NewFormatter())

	return &App{cfg: cfg, db: res.DB, flow: flow}, nil
}

// catalogModules lists the bootstrap hooks that prepare catalog
// storage. The seeder fills empty Postgres tables from the built-in
// fixture and is a no-op for the in-memory backends.
func catalogModules() bootstrap.Modules {
	return bootstrap.Modules{
		Seeders: []bootstrap.Seeder{
			bootstrap.SeederFunc(func(ctx context.Context, storage bootstrap.Storage) error {
				db, ok := storage.(*sqlx.DB)
				if !ok || db == nil {
					return nil
				}
				return catalog.SeedPostgres(ctx, db, catalog.Builtin())
			}),
		},
		Services: catalogProvider(),
	}
}

func catalogProvider() bootstrap.TypedServiceProvider[*catalog.Service] {
	return bootstrap.TypedServiceProviderFunc[*catalog.Service](
		func(ctx context.Context, cfg interface{}, storage bootstrap.Storage) (*catalog.Service, error) {
			appCfg, ok := cfg.(*Config)
			if !ok {
				return nil, fmt.Errorf("app: unexpected config type %T", cfg)
			}
			db, _ := storage.(*sqlx.DB)
			return catalogService(ctx, appCfg, db)
		},
	)
}

// catalogService selects the configured catalog source, loads it once,
// and wraps it in the query service.
func catalogService(ctx context.Context, cfg *Config, db *sqlx.DB) (*catalog.Service, error) {
	var source catalog.Source
	switch {
	case cfg.Core.Catalog.Storage == coreconfig.CatalogStoragePostgres:
		source = catalog.PostgresSource{DB: db}
	case cfg.Core.Catalog.File != "":
		source = catalog.FileSource{Path: cfg.Core.Catalog.File}
	default:
		source = catalog.StaticSource{}
	}

	loaded, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: catalog load: %w", err)
	}
	return catalog.NewService(loaded, cfg.Core.Catalog.Dedupe), nil
}

// TelegramRunOptions wires handlers, routes, and middlewares into the
// bot runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	handlers := bot.NewHandlers(a.flow)
	handlers.Register(reg)

	var fallbacks ui.FallbackProvider = bot.NewFallbacks(a.flow)
	reg.SetCallbackNotFound(fallbacks.UnknownCallback())

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Core.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		NotFound: fallbacks.UnknownCallback(),
	}))
	routes = append(routes, router.TextRoutes(bot.NewFSM(a.flow), reg, router.TextOptions{
		UnknownText:     fallbacks.UnknownText(),
		UnknownDocument: fallbacks.UnknownDocument(),
	})...)

	return coretelegram.RunOptions{
		Config:   &a.cfg.Core,
		Registry: reg,
		// One worker keeps the async helper sends in FIFO order.
		DispatcherOptions: tgsender.Options{Workers: 1},
		Middlewares:       coretelegram.DefaultMiddlewares(&a.cfg.Core, nil),
		Routes:            routes,
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}, nil
}
