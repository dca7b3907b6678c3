package app

import (
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/codegen"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/services"
)

type Services struct {
	Auth services.AuthService

	Station services.StationService
	Broker  services.BrokerService
	Driver  services.DriverService
	Owner   services.OwnerService
	Lorry   services.LorryService

	Consignee services.PartyService
	Consignor services.PartyService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")

	var reserver services.CodeReserver
	if clients.CodeReservations != nil {
		reserver = clients.CodeReservations
	}
	codes := services.NewCodeAllocator(codegen.New(codegen.WithMaxAttempts(cfg.CodeMaxAttempts)), reserver, log)

	return Services{
		Auth: services.NewAuthService(
			db, log, repos.User, repos.UserToken,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
		),
		Station:   services.NewStationService(log, repos.Station, codes, cfg.DefaultCountry),
		Broker:    services.NewBrokerService(log, repos.Broker),
		Driver:    services.NewDriverService(log, repos.Driver),
		Owner:     services.NewOwnerService(db, log, repos.Owner, repos.Lorry),
		Lorry:     services.NewLorryService(log, repos.Lorry, repos.Owner),
		Consignee: services.NewPartyService(log, types.KindConsignee, repos.Party, codes, cfg.DefaultCountry),
		Consignor: services.NewPartyService(log, types.KindConsignor, repos.Party, codes, cfg.DefaultCountry),
	}
}
