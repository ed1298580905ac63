package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/octobees/company-lookup/api/internal/config"
	"github.com/octobees/company-lookup/api/internal/docs"
	"github.com/octobees/company-lookup/api/internal/handler"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Companies *handler.CompaniesHandler
}

// Register wires all HTTP routes for the API. Everything except the liveness
// probe is mounted under cfg.RootPath.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.JSON(c, http.StatusOK, map[string]any{"status": "ok"})
	})

	docs.SwaggerInfo.BasePath = cfg.RootPath
	if docs.SwaggerInfo.BasePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}

	api := e.Group(cfg.RootPath)
	if cfg.RootPath != "" {
		e.GET(cfg.RootPath, handlers.Companies.Root)
	}
	api.GET("/", handlers.Companies.Root)
	api.GET("/company/:company_id", handlers.Companies.Get)
	api.GET("/companies/", handlers.Companies.List)
	api.GET("/companies", handlers.Companies.List)
	api.GET("/docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, cfg.RootPath+"/docs/index.html")
	})
	api.GET("/docs/*", echoSwagger.WrapHandler)
}
