package services

import (
	"context"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/data/repos"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

type DriverService interface {
	List(ctx context.Context, params listing.Params) (listing.Page[*types.Driver], error)
	Get(ctx context.Context, id uint) (*types.Driver, error)
	Create(ctx context.Context, in PersonInput) (*types.Driver, error)
	Update(ctx context.Context, id uint, in PersonInput) (*types.Driver, error)
	Delete(ctx context.Context, id uint) error
}

type driverService struct {
	log        *logger.Logger
	driverRepo repos.DriverRepo
}

func NewDriverService(log *logger.Logger, driverRepo repos.DriverRepo) DriverService {
	return &driverService{log: log.With("service", "DriverService"), driverRepo: driverRepo}
}

func (ds *driverService) List(ctx context.Context, params listing.Params) (listing.Page[*types.Driver], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return listing.Page[*types.Driver]{}, err
	}
	return ds.driverRepo.List(dbctx.Context{Ctx: ctx}, userID, params)
}

func (ds *driverService) Get(ctx context.Context, id uint) (*types.Driver, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	d, err := ds.driverRepo.GetByID(dbctx.Context{Ctx: ctx}, userID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apierr.NotFound("driver_not_found", "Driver not found")
	}
	return d, nil
}

func (ds *driverService) Create(ctx context.Context, in PersonInput) (*types.Driver, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	p, err := in.normalize(false)
	if err != nil {
		return nil, err
	}
	d := &types.Driver{UserID: userID}
	applyDriver(d, p, in)
	if _, err := ds.driverRepo.Create(dbctx.Context{Ctx: ctx}, d); err != nil {
		ds.log.Error("create driver failed", "error", err)
		return nil, err
	}
	return d, nil
}

func (ds *driverService) Update(ctx context.Context, id uint, in PersonInput) (*types.Driver, error) {
	d, err := ds.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := in.normalize(false)
	if err != nil {
		return nil, err
	}
	applyDriver(d, p, in)
	ok, err := ds.driverRepo.Update(dbctx.Context{Ctx: ctx}, d.UserID, d)
	if err != nil {
		ds.log.Error("update driver failed", "driver_id", id, "error", err)
		return nil, err
	}
	if !ok {
		return nil, apierr.NotFound("driver_not_found", "Driver not found")
	}
	return d, nil
}

func (ds *driverService) Delete(ctx context.Context, id uint) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	ok, err := ds.driverRepo.Delete(dbctx.Context{Ctx: ctx}, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return apierr.NotFound("driver_not_found", "Driver not found")
	}
	return nil
}

func applyDriver(d *types.Driver, p person, in PersonInput) {
	d.DriverName = p.name
	d.FathersName = p.fatherName
	d.Email = p.email
	d.MobileNumber = p.phone
	d.Country = p.country
	d.Address = p.address
	d.City = p.city
	d.PostalCode = p.postcode
	d.LicenseNumber = trimUpper(in.LicenseNumber)
	d.IssuedBy = trimSpace(in.IssuedBy)
	d.LicenseDate = in.LicenseDate
	d.Tags = p.tags
}
