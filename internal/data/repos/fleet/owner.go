package fleet

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

var OwnerListSpec = listing.Spec{
	SearchColumns: []string{"owner_name", "father_name", "email", "city", "country"},
	SortColumns: map[string]string{
		"id":        "id",
		"sn_no":     "id",
		"name":      "owner_name",
		"ownerName": "owner_name",
		"email":     "email",
		"city":      "city",
		"country":   "country",
		"createdAt": "created_at",
	},
	DefaultSort: "id",
}

type OwnerRepo interface {
	Create(dbc dbctx.Context, owner *types.Owner) (*types.Owner, error)
	Update(dbc dbctx.Context, userID uuid.UUID, owner *types.Owner) (bool, error)
	GetByID(dbc dbctx.Context, userID uuid.UUID, id uint) (*types.Owner, error)
	List(dbc dbctx.Context, userID uuid.UUID, params listing.Params) (listing.Page[*types.Owner], error)
	Delete(dbc dbctx.Context, userID uuid.UUID, id uint) (bool, error)
}

type ownerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOwnerRepo(db *gorm.DB, baseLog *logger.Logger) OwnerRepo {
	repoLog := baseLog.With("repo", "OwnerRepo")
	return &ownerRepo{db: db, log: repoLog}
}

func (or *ownerRepo) Create(dbc dbctx.Context, owner *types.Owner) (*types.Owner, error) {
	if err := dbc.DB(or.db).Create(owner).Error; err != nil {
		return nil, err
	}
	return owner, nil
}

func (or *ownerRepo) Update(dbc dbctx.Context, userID uuid.UUID, owner *types.Owner) (bool, error) {
	return updateOwned(dbc, or.db, userID, owner.ID, owner)
}

func (or *ownerRepo) GetByID(dbc dbctx.Context, userID uuid.UUID, id uint) (*types.Owner, error) {
	return getOwned[types.Owner](dbc, or.db, userID, id)
}

func (or *ownerRepo) List(dbc dbctx.Context, userID uuid.UUID, params listing.Params) (listing.Page[*types.Owner], error) {
	q := dbc.DB(or.db).Model(&types.Owner{}).Where("user_id = ?", userID)
	return listing.Run[*types.Owner](q, params, OwnerListSpec)
}

func (or *ownerRepo) Delete(dbc dbctx.Context, userID uuid.UUID, id uint) (bool, error) {
	return deleteOwned[types.Owner](dbc, or.db, userID, id)
}
