package app

import (
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/repos"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

type Repos struct {
	User      repos.UserRepo
	UserToken repos.UserTokenRepo

	Station repos.StationRepo
	Broker  repos.BrokerRepo
	Driver  repos.DriverRepo
	Owner   repos.OwnerRepo
	Lorry   repos.LorryRepo

	Party repos.PartyRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      repos.NewUserRepo(db, log),
		UserToken: repos.NewUserTokenRepo(db, log),
		Station:   repos.NewStationRepo(db, log),
		Broker:    repos.NewBrokerRepo(db, log),
		Driver:    repos.NewDriverRepo(db, log),
		Owner:     repos.NewOwnerRepo(db, log),
		Lorry:     repos.NewLorryRepo(db, log),
		Party:     repos.NewPartyRepo(db, log),
	}
}
