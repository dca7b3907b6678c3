package services

import (
	"context"
	"strings"
	"time"

	"github.com/freightdesk/fleetadmin/internal/data/db"
	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/data/repos"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/domain/fleet"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

type LorryInput struct {
	RegistrationNumber string
	Name               string
	Make               string
	Model              string
	Year               *int
	CapacityKg         *int
	Status             string
	OwnerID            *uint
	LastServiceDate    *time.Time
	InsuranceExpiry    *time.Time
}

type LorryService interface {
	List(ctx context.Context, params listing.Params) (listing.Page[*types.Lorry], error)
	Get(ctx context.Context, id uint) (*types.Lorry, error)
	Create(ctx context.Context, in LorryInput) (*types.Lorry, error)
	Update(ctx context.Context, id uint, in LorryInput) (*types.Lorry, error)
	Delete(ctx context.Context, id uint) error
}

type lorryService struct {
	log       *logger.Logger
	lorryRepo repos.LorryRepo
	ownerRepo repos.OwnerRepo
}

func NewLorryService(log *logger.Logger, lorryRepo repos.LorryRepo, ownerRepo repos.OwnerRepo) LorryService {
	return &lorryService{
		log:       log.With("service", "LorryService"),
		lorryRepo: lorryRepo,
		ownerRepo: ownerRepo,
	}
}

func (ls *lorryService) List(ctx context.Context, params listing.Params) (listing.Page[*types.Lorry], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return listing.Page[*types.Lorry]{}, err
	}
	return ls.lorryRepo.List(dbctx.Context{Ctx: ctx}, userID, params)
}

func (ls *lorryService) Get(ctx context.Context, id uint) (*types.Lorry, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	l, err := ls.lorryRepo.GetByID(dbctx.Context{Ctx: ctx}, userID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apierr.NotFound("lorry_not_found", "Lorry not found")
	}
	return l, nil
}

func (ls *lorryService) Create(ctx context.Context, in LorryInput) (*types.Lorry, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	l := &types.Lorry{UserID: userID}
	if err := ls.apply(ctx, l, in); err != nil {
		return nil, err
	}
	if _, err := ls.lorryRepo.Create(dbctx.Context{Ctx: ctx}, l); err != nil {
		return nil, ls.writeFailure(err)
	}
	return l, nil
}

func (ls *lorryService) Update(ctx context.Context, id uint, in LorryInput) (*types.Lorry, error) {
	l, err := ls.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ls.apply(ctx, l, in); err != nil {
		return nil, err
	}
	ok, err := ls.lorryRepo.Update(dbctx.Context{Ctx: ctx}, l.UserID, l)
	if err != nil {
		return nil, ls.writeFailure(err)
	}
	if !ok {
		return nil, apierr.NotFound("lorry_not_found", "Lorry not found")
	}
	return l, nil
}

func (ls *lorryService) Delete(ctx context.Context, id uint) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	ok, err := ls.lorryRepo.Delete(dbctx.Context{Ctx: ctx}, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return apierr.NotFound("lorry_not_found", "Lorry not found")
	}
	return nil
}

func (ls *lorryService) apply(ctx context.Context, l *types.Lorry, in LorryInput) error {
	reg := strings.ToUpper(strings.Join(strings.Fields(in.RegistrationNumber), ""))
	if reg == "" {
		return apierr.BadRequest("missing_fields", "Missing required fields: registrationNumber is required")
	}
	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status == "" {
		status = fleet.LorryStatusActive
	}
	if !fleet.ValidLorryStatus(status) {
		return apierr.BadRequest("invalid_status", "status must be one of active, inactive, maintenance")
	}
	if in.Year != nil && (*in.Year < 1900 || *in.Year > time.Now().Year()+1) {
		return apierr.BadRequest("invalid_year", "Invalid year")
	}
	if in.CapacityKg != nil && *in.CapacityKg < 0 {
		return apierr.BadRequest("invalid_capacity", "capacityKg must not be negative")
	}
	if in.OwnerID != nil {
		owner, err := ls.ownerRepo.GetByID(dbctx.Context{Ctx: ctx}, l.UserID, *in.OwnerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return apierr.BadRequest("invalid_owner", "Owner not found")
		}
	}

	l.RegistrationNumber = reg
	l.Name = strings.TrimSpace(in.Name)
	l.Make = strings.TrimSpace(in.Make)
	l.Model = strings.TrimSpace(in.Model)
	l.Year = in.Year
	l.CapacityKg = in.CapacityKg
	l.Status = status
	l.OwnerID = in.OwnerID
	l.Owner = nil
	l.LastServiceDate = in.LastServiceDate
	l.InsuranceExpiry = in.InsuranceExpiry
	return nil
}

func (ls *lorryService) writeFailure(err error) error {
	if db.IsUniqueViolation(err) {
		return apierr.Conflict("lorry_exists", "A lorry with this registration number already exists")
	}
	ls.log.Error("lorry write failed", "error", err)
	return err
}
