package ordersync

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/quickserve/quickserve/internal/config"
	"github.com/quickserve/quickserve/internal/pkg/localstore"
)

// Module wires the session manager into the fx graph.
var Module = fx.Options(
	fx.Provide(newManager),
	fx.Invoke(registerLifecycle),
)

type managerParams struct {
	fx.In

	Source    Source
	Feed      Subscriber `optional:"true"`
	Snapshots *localstore.Store
	Config    *config.Config
	Logger    *slog.Logger
}

func newManager(p managerParams) *Manager {
	m := NewManager(p.Source, p.Feed, Options{
		VendorPollInterval:   p.Config.VendorPollInterval,
		AdminPollInterval:    p.Config.AdminPollInterval,
		CustomerPollInterval: p.Config.CustomerPollInterval,
		PendingGrace:         p.Config.PendingGrace,
		IncrementalBatchSize: p.Config.IncrementalBatchSize,
		FullWindowSize:       p.Config.FullWindowSize,
		DismissalWindow:      p.Config.DismissalWindow,
	}, p.Logger)
	m.SetSnapshots(p.Snapshots)
	return m
}

func registerLifecycle(lc fx.Lifecycle, manager *Manager) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// Sessions must outlive the start hook; StopAll cancels them.
			manager.Bind(context.Background())
			return nil
		},
		OnStop: func(context.Context) error {
			manager.StopAll()
			return nil
		},
	})
}
