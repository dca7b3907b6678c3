package repos

import (
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/repos/auth"
	"github.com/freightdesk/fleetadmin/internal/data/repos/client"
	"github.com/freightdesk/fleetadmin/internal/data/repos/fleet"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

type UserRepo = auth.UserRepo
type UserTokenRepo = auth.UserTokenRepo

type StationRepo = fleet.StationRepo
type BrokerRepo = fleet.BrokerRepo
type DriverRepo = fleet.DriverRepo
type OwnerRepo = fleet.OwnerRepo
type LorryRepo = fleet.LorryRepo

type PartyRepo = client.PartyRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return auth.NewUserRepo(db, baseLog)
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return auth.NewUserTokenRepo(db, baseLog)
}

func NewStationRepo(db *gorm.DB, baseLog *logger.Logger) StationRepo {
	return fleet.NewStationRepo(db, baseLog)
}

func NewBrokerRepo(db *gorm.DB, baseLog *logger.Logger) BrokerRepo {
	return fleet.NewBrokerRepo(db, baseLog)
}

func NewDriverRepo(db *gorm.DB, baseLog *logger.Logger) DriverRepo {
	return fleet.NewDriverRepo(db, baseLog)
}

func NewOwnerRepo(db *gorm.DB, baseLog *logger.Logger) OwnerRepo {
	return fleet.NewOwnerRepo(db, baseLog)
}

func NewLorryRepo(db *gorm.DB, baseLog *logger.Logger) LorryRepo {
	return fleet.NewLorryRepo(db, baseLog)
}

func NewPartyRepo(db *gorm.DB, baseLog *logger.Logger) PartyRepo {
	return client.NewPartyRepo(db, baseLog)
}
