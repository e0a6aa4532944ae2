package router

import (
	"html/template"
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/bikestores/bikestore/internal/config"
	"github.com/bikestores/bikestore/internal/server/http/handlers"
	"github.com/bikestores/bikestore/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BikeStoreFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.SetFuncMap(TemplateFuncs())
	engine.LoadHTMLGlob(cfg.TemplatesGlob)

	authHandler := handlers.NewAuthHandler(facade)
	dashboardHandler := handlers.NewDashboardHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	analyticsHandler := handlers.NewAnalyticsHandler(facade)

	engine.GET("/", authHandler.LoginPage)
	engine.POST("/login", authHandler.Login)
	engine.GET("/logout", authHandler.Logout)

	protected := engine.Group("")
	protected.Use(middleware.SessionRequired(facade))
	protected.GET("/dashboard", dashboardHandler.Summary)
	protected.GET("/customers", customerHandler.List)
	protected.GET("/customers/add", customerHandler.AddForm)
	protected.POST("/customers/add", customerHandler.Create)
	protected.GET("/customers/edit/:id", customerHandler.EditForm)
	protected.POST("/customers/edit/:id", customerHandler.Update)
	protected.GET("/customers/delete/:id", customerHandler.Delete)
	protected.GET("/analytics", analyticsHandler.ByCity)

	return engine
}

// TemplateFuncs exposes the helpers the views rely on for pagination links.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}
