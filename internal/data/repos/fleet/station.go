package fleet

import (
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

var StationListSpec = listing.Spec{
	SearchColumns: []string{"station_name", "station_code", "city", "contact_person", "email_id"},
	SortColumns: map[string]string{
		"id":            "id",
		"stationCode":   "station_code",
		"station_code":  "station_code",
		"stationName":   "station_name",
		"station_name":  "station_name",
		"city":          "city",
		"zipCode":       "zip_code",
		"contactPerson": "contact_person",
		"createdAt":     "created_at",
		"created_at":    "created_at",
	},
	DefaultSort: "id",
}

type StationRepo interface {
	Create(dbc dbctx.Context, station *types.Station) (*types.Station, error)
	Update(dbc dbctx.Context, station *types.Station) error
	GetByID(dbc dbctx.Context, id uint) (*types.Station, error)
	List(dbc dbctx.Context, params listing.Params) (listing.Page[*types.Station], error)
	// CodeExists reports whether code is taken by a station other than
	// excludeID. Pass 0 to check against every station.
	CodeExists(dbc dbctx.Context, code string, excludeID uint) (bool, error)
}

type stationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStationRepo(db *gorm.DB, baseLog *logger.Logger) StationRepo {
	repoLog := baseLog.With("repo", "StationRepo")
	return &stationRepo{db: db, log: repoLog}
}

func (sr *stationRepo) Create(dbc dbctx.Context, station *types.Station) (*types.Station, error) {
	if err := dbc.DB(sr.db).Create(station).Error; err != nil {
		return nil, err
	}
	return station, nil
}

func (sr *stationRepo) Update(dbc dbctx.Context, station *types.Station) error {
	res := dbc.DB(sr.db).
		Model(station).
		Select("*").
		Omit("id", "created_at").
		Updates(station)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID returns nil when the station does not exist.
func (sr *stationRepo) GetByID(dbc dbctx.Context, id uint) (*types.Station, error) {
	var results []*types.Station
	if err := dbc.DB(sr.db).
		Where("id = ?", id).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (sr *stationRepo) List(dbc dbctx.Context, params listing.Params) (listing.Page[*types.Station], error) {
	return listing.Run[*types.Station](dbc.DB(sr.db).Model(&types.Station{}), params, StationListSpec)
}

func (sr *stationRepo) CodeExists(dbc dbctx.Context, code string, excludeID uint) (bool, error) {
	q := dbc.DB(sr.db).
		Model(&types.Station{}).
		Where("station_code = ?", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
