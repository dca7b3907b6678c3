package app

import (
	"context"

	"gorm.io/gorm"

	apphttp "github.com/freightdesk/fleetadmin/internal/http"
	httpH "github.com/freightdesk/fleetadmin/internal/http/handlers"
	httpMW "github.com/freightdesk/fleetadmin/internal/http/middleware"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health *httpH.HealthHandler
	Auth   *httpH.AuthHandler

	Station *httpH.StationHandler
	Broker  *httpH.BrokerHandler
	Driver  *httpH.DriverHandler
	Owner   *httpH.OwnerHandler
	Lorry   *httpH.LorryHandler

	Consignee *httpH.PartyHandler
	Consignor *httpH.PartyHandler
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{Auth: httpMW.NewAuthMiddleware(log, services.Auth)}
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services, clients Clients) Handlers {
	log.Info("Wiring handlers...")
	checks := map[string]httpH.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if clients.CodeReservations != nil {
		checks["redis"] = clients.CodeReservations.Ping
	}
	return Handlers{
		Health:    httpH.NewHealthHandler(checks),
		Auth:      httpH.NewAuthHandler(log, services.Auth),
		Station:   httpH.NewStationHandler(log, services.Station),
		Broker:    httpH.NewBrokerHandler(log, services.Broker),
		Driver:    httpH.NewDriverHandler(log, services.Driver),
		Owner:     httpH.NewOwnerHandler(log, services.Owner),
		Lorry:     httpH.NewLorryHandler(log, services.Lorry),
		Consignee: httpH.NewPartyHandler(log, services.Consignee),
		Consignor: httpH.NewPartyHandler(log, services.Consignor),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *apphttp.Server {
	tracingService := ""
	if cfg.Tracing.Enabled {
		tracingService = cfg.Tracing.ServiceName
	}
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:              log,
		AllowedOrigins:   cfg.AllowedOrigins,
		TracingService:   tracingService,
		AuthHandler:      handlers.Auth,
		AuthMiddleware:   middleware.Auth,
		StationHandler:   handlers.Station,
		BrokerHandler:    handlers.Broker,
		DriverHandler:    handlers.Driver,
		OwnerHandler:     handlers.Owner,
		LorryHandler:     handlers.Lorry,
		ConsigneeHandler: handlers.Consignee,
		ConsignorHandler: handlers.Consignor,
		HealthHandler:    handlers.Health,
	})
}
