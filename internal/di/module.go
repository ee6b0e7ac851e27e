package di

import (
	"go.uber.org/fx"

	"github.com/L1nkStart/authsvc/internal/app"
	"github.com/L1nkStart/authsvc/internal/config"
	"github.com/L1nkStart/authsvc/internal/logger"
	"github.com/L1nkStart/authsvc/internal/pkg/auth"
	"github.com/L1nkStart/authsvc/internal/server/http/handlers"
	"github.com/L1nkStart/authsvc/internal/server/http/router"
	"github.com/L1nkStart/authsvc/internal/storage/postgres"
	"github.com/L1nkStart/authsvc/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.AccountFacade) handlers.AuthFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
