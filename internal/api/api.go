// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/freassets/curator/internal/config"
	"github.com/freassets/curator/internal/infrastructure"
	"github.com/freassets/curator/pkg/middleware"
	"github.com/freassets/curator/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	auth, err := middleware.Auth(context.Background(), &cfg.API.Auth)
	if err != nil {
		return nil, fmt.Errorf("auth middleware: %w", err)
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Infrastructure.Logger))
	m.Use(auth)

	return m, nil
}
