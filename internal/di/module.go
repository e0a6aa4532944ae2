package di

import (
	"go.uber.org/fx"

	"github.com/bikestores/bikestore/internal/app"
	"github.com/bikestores/bikestore/internal/config"
	"github.com/bikestores/bikestore/internal/logger"
	"github.com/bikestores/bikestore/internal/pkg/auth"
	"github.com/bikestores/bikestore/internal/server/http/router"
	"github.com/bikestores/bikestore/internal/storage/postgres"
	"github.com/bikestores/bikestore/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
