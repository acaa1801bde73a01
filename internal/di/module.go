package di

import (
	"go.uber.org/fx"

	"github.com/quickserve/quickserve/internal/adapter/feed"
	"github.com/quickserve/quickserve/internal/app"
	"github.com/quickserve/quickserve/internal/config"
	"github.com/quickserve/quickserve/internal/idgen"
	"github.com/quickserve/quickserve/internal/logger"
	"github.com/quickserve/quickserve/internal/ordersync"
	"github.com/quickserve/quickserve/internal/pkg/auth"
	"github.com/quickserve/quickserve/internal/server/http/router"
	"github.com/quickserve/quickserve/internal/storage/postgres"
	"github.com/quickserve/quickserve/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		feed.Module,
		idgen.Module,
		usecase.Module,
		ordersync.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
