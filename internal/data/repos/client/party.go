package client

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

var PartyListSpec = listing.Spec{
	SearchColumns: []string{"party_code", "name", "contact_person", "email", "city", "gst_number"},
	SortColumns: map[string]string{
		"id":            "id",
		"code":          "party_code",
		"name":          "name",
		"contactPerson": "contact_person",
		"city":          "city",
		"postalCode":    "postal_code",
		"createdAt":     "created_at",
	},
	DefaultSort: "id",
}

// PartyRepo stores consignees and consignors. Every read and write is
// scoped to one user and one kind.
type PartyRepo interface {
	Create(dbc dbctx.Context, party *types.Party) (*types.Party, error)
	Update(dbc dbctx.Context, party *types.Party) (bool, error)
	GetByID(dbc dbctx.Context, userID uuid.UUID, kind types.PartyKind, id uint) (*types.Party, error)
	List(dbc dbctx.Context, userID uuid.UUID, kind types.PartyKind, params listing.Params) (listing.Page[*types.Party], error)
	Delete(dbc dbctx.Context, userID uuid.UUID, kind types.PartyKind, id uint) (bool, error)
	// CodeExists checks the code across all parties regardless of owner or
	// kind, skipping excludeID when non-zero.
	CodeExists(dbc dbctx.Context, code string, excludeID uint) (bool, error)
}

type partyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPartyRepo(db *gorm.DB, baseLog *logger.Logger) PartyRepo {
	repoLog := baseLog.With("repo", "PartyRepo")
	return &partyRepo{db: db, log: repoLog}
}

func (pr *partyRepo) Create(dbc dbctx.Context, party *types.Party) (*types.Party, error) {
	if err := dbc.DB(pr.db).Create(party).Error; err != nil {
		return nil, err
	}
	return party, nil
}

func (pr *partyRepo) Update(dbc dbctx.Context, party *types.Party) (bool, error) {
	res := dbc.DB(pr.db).
		Model(party).
		Where("user_id = ? AND kind = ?", party.UserID, party.Kind).
		Select("*").
		Omit("id", "user_id", "kind", "created_at").
		Updates(party)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (pr *partyRepo) GetByID(dbc dbctx.Context, userID uuid.UUID, kind types.PartyKind, id uint) (*types.Party, error) {
	var results []*types.Party
	if err := dbc.DB(pr.db).
		Where("id = ? AND user_id = ? AND kind = ?", id, userID, kind).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (pr *partyRepo) List(dbc dbctx.Context, userID uuid.UUID, kind types.PartyKind, params listing.Params) (listing.Page[*types.Party], error) {
	q := dbc.DB(pr.db).
		Model(&types.Party{}).
		Where("user_id = ? AND kind = ?", userID, kind)
	return listing.Run[*types.Party](q, params, PartyListSpec)
}

func (pr *partyRepo) Delete(dbc dbctx.Context, userID uuid.UUID, kind types.PartyKind, id uint) (bool, error) {
	res := dbc.DB(pr.db).
		Where("id = ? AND user_id = ? AND kind = ?", id, userID, kind).
		Delete(&types.Party{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (pr *partyRepo) CodeExists(dbc dbctx.Context, code string, excludeID uint) (bool, error) {
	q := dbc.DB(pr.db).
		Model(&types.Party{}).
		Where("party_code = ?", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
