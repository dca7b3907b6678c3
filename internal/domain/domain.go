package domain

import (
	"github.com/freightdesk/fleetadmin/internal/domain/auth"
	"github.com/freightdesk/fleetadmin/internal/domain/client"
	"github.com/freightdesk/fleetadmin/internal/domain/fleet"
)

type (
	User      = auth.User
	UserToken = auth.UserToken

	Station = fleet.Station
	Broker  = fleet.Broker
	Driver  = fleet.Driver
	Owner   = fleet.Owner
	Lorry   = fleet.Lorry

	Party     = client.Party
	PartyKind = client.Kind
)

const (
	RoleUser  = auth.RoleUser
	RoleAdmin = auth.RoleAdmin

	KindConsignee = client.KindConsignee
	KindConsignor = client.KindConsignor

	LorryStatusActive      = fleet.LorryStatusActive
	LorryStatusInactive    = fleet.LorryStatusInactive
	LorryStatusMaintenance = fleet.LorryStatusMaintenance
)

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&User{},
		&UserToken{},
		&Station{},
		&Broker{},
		&Driver{},
		&Owner{},
		&Lorry{},
		&Party{},
	}
}
