package fleet

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

var LorryListSpec = listing.Spec{
	SearchColumns: []string{"registration_number", "name", "make", "model", "status"},
	SortColumns: map[string]string{
		"id":                 "id",
		"registrationNumber": "registration_number",
		"name":               "name",
		"make":               "make",
		"year":               "year",
		"status":             "status",
		"insuranceExpiry":    "insurance_expiry",
		"createdAt":          "created_at",
	},
	DefaultSort: "id",
}

type LorryRepo interface {
	Create(dbc dbctx.Context, lorry *types.Lorry) (*types.Lorry, error)
	Update(dbc dbctx.Context, userID uuid.UUID, lorry *types.Lorry) (bool, error)
	GetByID(dbc dbctx.Context, userID uuid.UUID, id uint) (*types.Lorry, error)
	List(dbc dbctx.Context, userID uuid.UUID, params listing.Params) (listing.Page[*types.Lorry], error)
	Delete(dbc dbctx.Context, userID uuid.UUID, id uint) (bool, error)
	// ClearOwner detaches every lorry of userID from ownerID.
	ClearOwner(dbc dbctx.Context, userID uuid.UUID, ownerID uint) error
}

type lorryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLorryRepo(db *gorm.DB, baseLog *logger.Logger) LorryRepo {
	repoLog := baseLog.With("repo", "LorryRepo")
	return &lorryRepo{db: db, log: repoLog}
}

func (lr *lorryRepo) Create(dbc dbctx.Context, lorry *types.Lorry) (*types.Lorry, error) {
	if err := dbc.DB(lr.db).Omit("Owner").Create(lorry).Error; err != nil {
		return nil, err
	}
	return lorry, nil
}

func (lr *lorryRepo) Update(dbc dbctx.Context, userID uuid.UUID, lorry *types.Lorry) (bool, error) {
	lorry.Owner = nil
	return updateOwned(dbc, lr.db, userID, lorry.ID, lorry)
}

func (lr *lorryRepo) GetByID(dbc dbctx.Context, userID uuid.UUID, id uint) (*types.Lorry, error) {
	return getOwned[types.Lorry](dbc, lr.db, userID, id)
}

func (lr *lorryRepo) List(dbc dbctx.Context, userID uuid.UUID, params listing.Params) (listing.Page[*types.Lorry], error) {
	q := dbc.DB(lr.db).Model(&types.Lorry{}).Where("user_id = ?", userID)
	return listing.Run[*types.Lorry](q, params, LorryListSpec)
}

func (lr *lorryRepo) Delete(dbc dbctx.Context, userID uuid.UUID, id uint) (bool, error) {
	return deleteOwned[types.Lorry](dbc, lr.db, userID, id)
}

func (lr *lorryRepo) ClearOwner(dbc dbctx.Context, userID uuid.UUID, ownerID uint) error {
	return dbc.DB(lr.db).
		Model(&types.Lorry{}).
		Where("user_id = ? AND owner_id = ?", userID, ownerID).
		Update("owner_id", nil).Error
}
