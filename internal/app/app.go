// Package app wires the shop conversation engine to the Telegram core:
// configuration, command and callback registration, and the run options
// consumed by the shared runtime.
package app

import (
	"fmt"
	"time"

	corecmd "github.com/m3rciful/furnibot/core/cmd"
	"github.com/m3rciful/furnibot/core/logger"
	coretelegram "github.com/m3rciful/furnibot/core/telegram"
	"github.com/m3rciful/furnibot/core/telegram/router"
	tgsender "github.com/m3rciful/furnibot/core/telegram/sender"
	"github.com/m3rciful/furnibot/internal/cart"
	"github.com/m3rciful/furnibot/internal/catalog"
	"github.com/m3rciful/furnibot/internal/shop"
)

// App is the assembled bot: engine, registry, and outbound dispatcher.
type App struct {
	cfg        *Config
	engine     *shop.Engine
	registry   *coretelegram.Registry
	dispatcher *tgsender.Dispatcher
	startedAt  time.Time
}

// Bootstrap initializes logging and builds the bot from configuration.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	if err := logger.InitLogger(cfg.CoreConfig()); err != nil {
		return nil, fmt.Errorf("app: logger init failed: %w", err)
	}

	a := &App{
		cfg:        cfg,
		engine:     shop.NewEngine(catalog.NewClient(cfg.Catalog), cart.NewStore()),
		registry:   coretelegram.NewRegistry(),
		dispatcher: tgsender.NewDispatcher(tgsender.Options{}),
		startedAt:  time.Now(),
	}
	a.registerCommands()
	a.registerCallbacks()
	return a, nil
}

// TelegramRunOptions implements cmd.TelegramApp.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	core := a.cfg.CoreConfig()

	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{
		AdminID: core.Telegram.AdminID,
	})
	routes = append(routes,
		router.TextRoute(a.registry, router.TextOptions{}),
		router.CallbackRoute(a.registry, router.CallbackOptions{}),
	)

	return coretelegram.RunOptions{
		Config:      core,
		Registry:    a.registry,
		Dispatcher:  a.dispatcher,
		Middlewares: coretelegram.DefaultMiddlewares(core, nil),
		Routes:      routes,
	}, nil
}
