package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/db"
	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/data/repos"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/normalization"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

type StationInput struct {
	StationName   string
	DisplayName   string
	Email         string
	DialCode      string
	PhoneNumber   string
	Country       string
	Address       string
	City          string
	ZipCode       string
	ContactPerson string
	Activities    [6]bool
}

type StationService interface {
	List(ctx context.Context, params listing.Params) (listing.Page[*types.Station], error)
	Get(ctx context.Context, id uint) (*types.Station, error)
	Create(ctx context.Context, in StationInput) (*types.Station, error)
	Update(ctx context.Context, id uint, in StationInput) (*types.Station, error)
}

type stationService struct {
	log            *logger.Logger
	stationRepo    repos.StationRepo
	codes          *CodeAllocator
	defaultCountry string
}

func NewStationService(log *logger.Logger, stationRepo repos.StationRepo, codes *CodeAllocator, defaultCountry string) StationService {
	if defaultCountry == "" {
		defaultCountry = "India"
	}
	return &stationService{
		log:            log.With("service", "StationService"),
		stationRepo:    stationRepo,
		codes:          codes,
		defaultCountry: defaultCountry,
	}
}

func (ss *stationService) List(ctx context.Context, params listing.Params) (listing.Page[*types.Station], error) {
	return ss.stationRepo.List(dbctx.Context{Ctx: ctx}, params)
}

func (ss *stationService) Get(ctx context.Context, id uint) (*types.Station, error) {
	st, err := ss.stationRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apierr.NotFound("station_not_found", "Station not found")
	}
	return st, nil
}

func (ss *stationService) Create(ctx context.Context, in StationInput) (*types.Station, error) {
	st := &types.Station{}
	if err := ss.apply(st, in); err != nil {
		return nil, err
	}

	code, release, err := ss.allocate(ctx, in, 0)
	if err != nil {
		return nil, err
	}
	defer release()
	st.StationCode = code

	if _, err := ss.stationRepo.Create(dbctx.Context{Ctx: ctx}, st); err != nil {
		return nil, ss.writeFailure("create", err)
	}
	ss.log.Info("station created", "station_id", st.ID, "station_code", st.StationCode)
	return st, nil
}

// Update keeps the existing code unless the station name or zip code
// changed, in which case a new code is generated that may not collide with
// any other station.
func (ss *stationService) Update(ctx context.Context, id uint, in StationInput) (*types.Station, error) {
	st, err := ss.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prevName, prevZip := st.StationName, st.ZipCode
	if err := ss.apply(st, in); err != nil {
		return nil, err
	}

	if st.StationName != prevName || st.ZipCode != prevZip {
		code, release, err := ss.allocate(ctx, in, st.ID)
		if err != nil {
			return nil, err
		}
		defer release()
		ss.log.Debug("station code regenerated", "station_id", st.ID, "old_code", st.StationCode, "new_code", code)
		st.StationCode = code
	}

	if err := ss.stationRepo.Update(dbctx.Context{Ctx: ctx}, st); err != nil {
		return nil, ss.writeFailure("update", err)
	}
	return st, nil
}

func (ss *stationService) allocate(ctx context.Context, in StationInput, excludeID uint) (string, func(), error) {
	taken := func(ctx context.Context, code string) (bool, error) {
		return ss.stationRepo.CodeExists(dbctx.Context{Ctx: ctx}, code, excludeID)
	}
	code, release, err := ss.codes.Allocate(ctx, CodeScopeStation, strings.TrimSpace(in.StationName), strings.TrimSpace(in.ZipCode), taken)
	if err != nil {
		ss.log.Error("station code generation failed", "error", err, "exclude_id", excludeID)
		return "", release, codeFailure("station", err)
	}
	return code, release, nil
}

func (ss *stationService) apply(st *types.Station, in StationInput) error {
	name := strings.TrimSpace(in.StationName)
	contact := strings.TrimSpace(in.ContactPerson)
	if name == "" || strings.TrimSpace(in.ZipCode) == "" || contact == "" {
		return apierr.BadRequest("missing_fields", "Missing required fields: stationName, zipCode, and contactPerson are required")
	}
	zip, ok := normalization.PositiveInt(in.ZipCode)
	if !ok {
		return apierr.BadRequest("invalid_zip_code", "Invalid zip code. Please enter a valid numeric zip code.")
	}
	phone, err := normalization.Phone(in.DialCode, in.PhoneNumber)
	if err != nil {
		return apierr.BadRequest("invalid_phone", "Invalid phone number format")
	}

	st.StationName = name
	st.DisplayName = strings.TrimSpace(in.DisplayName)
	if st.DisplayName == "" {
		st.DisplayName = name
	}
	st.EmailID = strings.TrimSpace(in.Email)
	st.Telephone = phone
	st.Country = strings.TrimSpace(in.Country)
	if st.Country == "" {
		st.Country = ss.defaultCountry
	}
	st.Address = strings.TrimSpace(in.Address)
	st.City = strings.TrimSpace(in.City)
	st.ZipCode = zip
	st.ContactPerson = contact

	flags := []*int{&st.Activity1, &st.Activity2, &st.Activity3, &st.Activity4, &st.Activity5, &st.Activity6}
	for i, on := range in.Activities {
		*flags[i] = boolToInt(on)
	}
	return nil
}

func (ss *stationService) writeFailure(op string, err error) error {
	if db.IsUniqueViolation(err) {
		return apierr.Conflict("station_exists", "Station with this information already exists")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.NotFound("station_not_found", "Station not found")
	}
	ss.log.Error("station write failed", "op", op, "error", err)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
