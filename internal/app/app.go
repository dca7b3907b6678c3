package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/db"
	apphttp "github.com/freightdesk/fleetadmin/internal/http"
	"github.com/freightdesk/fleetadmin/internal/observability"
	"github.com/freightdesk/fleetadmin/internal/pkg/envutil"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Clients  Clients
	Services Services
	Server   *apphttp.Server

	shutdownTracing func(context.Context) error
}

// New wires everything the HTTP server needs, including optional clients.
func New(ctx context.Context) (*App, error) {
	return build(ctx, true)
}

// NewCore wires config, database, repos and services only. CLI tasks use it
// so they do not depend on Redis or open a listener.
func NewCore(ctx context.Context) (*App, error) {
	return build(ctx, false)
}

func build(ctx context.Context, withServer bool) (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load config: %w", err)
	}

	a := &App{Log: log, Cfg: cfg, shutdownTracing: func(context.Context) error { return nil }}
	if withServer {
		a.shutdownTracing = observability.InitTracing(ctx, log, cfg.Tracing)
	}

	a.DB, err = db.Open(cfg.DB, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init database: %w", err)
	}
	a.Repos = wireRepos(a.DB, log)

	if withServer {
		a.Clients, err = wireClients(ctx, log, cfg)
		if err != nil {
			a.Close()
			return nil, err
		}
	}
	a.Services = wireServices(a.DB, log, cfg, a.Repos, a.Clients)

	if withServer {
		handlers := wireHandlers(log, a.DB, a.Services, a.Clients)
		middleware := wireMiddleware(log, a.Services)
		a.Server = wireServer(log, cfg, handlers, middleware)
	}
	return a, nil
}

func (a *App) Migrate() error {
	if a == nil || a.DB == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Running migrations...")
	return db.AutoMigrateAll(a.DB)
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(ctx, ":"+a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(context.Background()); err != nil && a.Log != nil {
			a.Log.Warn("tracing shutdown failed", "error", err)
		}
	}
	if a.DB != nil {
		if err := db.Close(a.DB); err != nil && a.Log != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
