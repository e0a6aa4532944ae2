package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/bikestores/bikestore/internal/app"
	"github.com/bikestores/bikestore/internal/config"
	"github.com/bikestores/bikestore/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(func(facade *app.BikeStoreFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	return Setup(facade, cfg, logger)
})

var _ handlers.BikeStoreFacade = (*app.BikeStoreFacade)(nil)
