package fleet

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

var DriverListSpec = listing.Spec{
	SearchColumns: []string{"driver_name", "fathers_name", "email", "city", "country", "license_number"},
	SortColumns: map[string]string{
		"id":            "id",
		"name":          "driver_name",
		"driverName":    "driver_name",
		"email":         "email",
		"city":          "city",
		"country":       "country",
		"licenseNumber": "license_number",
		"createdAt":     "created_at",
	},
	DefaultSort: "id",
}

type DriverRepo interface {
	Create(dbc dbctx.Context, driver *types.Driver) (*types.Driver, error)
	Update(dbc dbctx.Context, userID uuid.UUID, driver *types.Driver) (bool, error)
	GetByID(dbc dbctx.Context, userID uuid.UUID, id uint) (*types.Driver, error)
	List(dbc dbctx.Context, userID uuid.UUID, params listing.Params) (listing.Page[*types.Driver], error)
	Delete(dbc dbctx.Context, userID uuid.UUID, id uint) (bool, error)
}

type driverRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDriverRepo(db *gorm.DB, baseLog *logger.Logger) DriverRepo {
	repoLog := baseLog.With("repo", "DriverRepo")
	return &driverRepo{db: db, log: repoLog}
}

func (dr *driverRepo) Create(dbc dbctx.Context, driver *types.Driver) (*types.Driver, error) {
	if err := dbc.DB(dr.db).Create(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

func (dr *driverRepo) Update(dbc dbctx.Context, userID uuid.UUID, driver *types.Driver) (bool, error) {
	return updateOwned(dbc, dr.db, userID, driver.ID, driver)
}

func (dr *driverRepo) GetByID(dbc dbctx.Context, userID uuid.UUID, id uint) (*types.Driver, error) {
	return getOwned[types.Driver](dbc, dr.db, userID, id)
}

func (dr *driverRepo) List(dbc dbctx.Context, userID uuid.UUID, params listing.Params) (listing.Page[*types.Driver], error) {
	q := dbc.DB(dr.db).Model(&types.Driver{}).Where("user_id = ?", userID)
	return listing.Run[*types.Driver](q, params, DriverListSpec)
}

func (dr *driverRepo) Delete(dbc dbctx.Context, userID uuid.UUID, id uint) (bool, error) {
	return deleteOwned[types.Driver](dbc, dr.db, userID, id)
}
