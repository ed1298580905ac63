package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/company-lookup/api/internal/config"
	"github.com/octobees/company-lookup/api/internal/handler"
	middlewarepkg "github.com/octobees/company-lookup/api/internal/middleware"
	"github.com/octobees/company-lookup/api/internal/registry"
	"github.com/octobees/company-lookup/api/internal/router"
	"github.com/octobees/company-lookup/api/internal/service"
	"github.com/octobees/company-lookup/api/internal/sic"
	"github.com/octobees/company-lookup/api/internal/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	sicTable, err := sic.Load(cfg.SICTablePath)
	if err != nil {
		log.Fatalf("failed to load sic table: %v", err)
	}
	log.Printf("loaded sic table path=%s codes=%d", cfg.SICTablePath, sicTable.Len())

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	registryClient, err := registry.NewClient(httpClient, cfg.RegistryBaseURL, cfg.APIKey)
	if err != nil {
		log.Fatalf("failed to build registry client: %v", err)
	}

	lookupService := service.NewCompanyLookupService(registryClient, sicTable, service.WithConcurrency(cfg.BatchConcurrency))
	companiesHandler := handler.NewCompaniesHandler(lookupService, cfg.RootPath)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{Companies: companiesHandler})

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening port=%s root_path=%q registry=%s", cfg.Port, cfg.RootPath, cfg.RegistryBaseURL)
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
