package fleet

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

var BrokerListSpec = listing.Spec{
	SearchColumns: []string{"broker_name", "fathers_name", "email", "city", "pan_number"},
	SortColumns: map[string]string{
		"id":          "id",
		"name":        "broker_name",
		"brokerName":  "broker_name",
		"broker_name": "broker_name",
		"email":       "email",
		"city":        "city",
		"country":     "country",
		"createdAt":   "created_at",
		"created_at":  "created_at",
	},
	DefaultSort: "id",
}

type BrokerRepo interface {
	Create(dbc dbctx.Context, broker *types.Broker) (*types.Broker, error)
	Update(dbc dbctx.Context, userID uuid.UUID, broker *types.Broker) (bool, error)
	GetByID(dbc dbctx.Context, userID uuid.UUID, id uint) (*types.Broker, error)
	List(dbc dbctx.Context, userID uuid.UUID, params listing.Params) (listing.Page[*types.Broker], error)
}

type brokerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBrokerRepo(db *gorm.DB, baseLog *logger.Logger) BrokerRepo {
	repoLog := baseLog.With("repo", "BrokerRepo")
	return &brokerRepo{db: db, log: repoLog}
}

func (br *brokerRepo) Create(dbc dbctx.Context, broker *types.Broker) (*types.Broker, error) {
	if err := dbc.DB(br.db).Create(broker).Error; err != nil {
		return nil, err
	}
	return broker, nil
}

func (br *brokerRepo) Update(dbc dbctx.Context, userID uuid.UUID, broker *types.Broker) (bool, error) {
	return updateOwned(dbc, br.db, userID, broker.ID, broker)
}

func (br *brokerRepo) GetByID(dbc dbctx.Context, userID uuid.UUID, id uint) (*types.Broker, error) {
	return getOwned[types.Broker](dbc, br.db, userID, id)
}

func (br *brokerRepo) List(dbc dbctx.Context, userID uuid.UUID, params listing.Params) (listing.Page[*types.Broker], error) {
	q := dbc.DB(br.db).Model(&types.Broker{}).Where("user_id = ?", userID)
	return listing.Run[*types.Broker](q, params, BrokerListSpec)
}
