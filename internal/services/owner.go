package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/data/repos"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

type OwnerService interface {
	List(ctx context.Context, params listing.Params) (listing.Page[*types.Owner], error)
	Get(ctx context.Context, id uint) (*types.Owner, error)
	Create(ctx context.Context, in PersonInput) (*types.Owner, error)
	Update(ctx context.Context, id uint, in PersonInput) (*types.Owner, error)
	// Delete removes the owner and detaches it from the user's lorries.
	Delete(ctx context.Context, id uint) error
}

type ownerService struct {
	db        *gorm.DB
	log       *logger.Logger
	ownerRepo repos.OwnerRepo
	lorryRepo repos.LorryRepo
}

func NewOwnerService(db *gorm.DB, log *logger.Logger, ownerRepo repos.OwnerRepo, lorryRepo repos.LorryRepo) OwnerService {
	return &ownerService{
		db:        db,
		log:       log.With("service", "OwnerService"),
		ownerRepo: ownerRepo,
		lorryRepo: lorryRepo,
	}
}

func (ows *ownerService) List(ctx context.Context, params listing.Params) (listing.Page[*types.Owner], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return listing.Page[*types.Owner]{}, err
	}
	return ows.ownerRepo.List(dbctx.Context{Ctx: ctx}, userID, params)
}

func (ows *ownerService) Get(ctx context.Context, id uint) (*types.Owner, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	o, err := ows.ownerRepo.GetByID(dbctx.Context{Ctx: ctx}, userID, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apierr.NotFound("owner_not_found", "Owner not found")
	}
	return o, nil
}

func (ows *ownerService) Create(ctx context.Context, in PersonInput) (*types.Owner, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	p, err := in.normalize(false)
	if err != nil {
		return nil, err
	}
	o := &types.Owner{UserID: userID}
	applyOwner(o, p)
	if _, err := ows.ownerRepo.Create(dbctx.Context{Ctx: ctx}, o); err != nil {
		ows.log.Error("create owner failed", "error", err)
		return nil, err
	}
	return o, nil
}

func (ows *ownerService) Update(ctx context.Context, id uint, in PersonInput) (*types.Owner, error) {
	o, err := ows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := in.normalize(false)
	if err != nil {
		return nil, err
	}
	applyOwner(o, p)
	ok, err := ows.ownerRepo.Update(dbctx.Context{Ctx: ctx}, o.UserID, o)
	if err != nil {
		ows.log.Error("update owner failed", "owner_id", id, "error", err)
		return nil, err
	}
	if !ok {
		return nil, apierr.NotFound("owner_not_found", "Owner not found")
	}
	return o, nil
}

func (ows *ownerService) Delete(ctx context.Context, id uint) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	return ows.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if err := ows.lorryRepo.ClearOwner(dbc, userID, id); err != nil {
			return err
		}
		ok, err := ows.ownerRepo.Delete(dbc, userID, id)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("owner_not_found", "Owner not found")
		}
		return nil
	})
}

func applyOwner(o *types.Owner, p person) {
	o.OwnerName = p.name
	o.FatherName = p.fatherName
	o.Email = p.email
	o.PhoneNumber = p.phone
	o.PanNumber = p.pan
	o.Country = p.country
	o.Address = p.address
	o.City = p.city
	o.PostalCode = p.postcode
	o.Tags = p.tags
}
