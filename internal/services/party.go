package services

import (
	"context"
	"strings"

	"github.com/freightdesk/fleetadmin/internal/data/db"
	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/data/repos"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/normalization"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

type PartyInput struct {
	Name          string
	ContactPerson string
	Email         string
	DialCode      string
	PhoneNumber   string
	GSTNumber     string
	Address       string
	City          string
	PostalCode    string
	Country       string
}

// PartyService manages one kind of party: consignees or consignors.
type PartyService interface {
	Kind() types.PartyKind
	List(ctx context.Context, params listing.Params) (listing.Page[*types.Party], error)
	Get(ctx context.Context, id uint) (*types.Party, error)
	Create(ctx context.Context, in PartyInput) (*types.Party, error)
	Update(ctx context.Context, id uint, in PartyInput) (*types.Party, error)
	Delete(ctx context.Context, id uint) error
}

type partyService struct {
	log            *logger.Logger
	kind           types.PartyKind
	label          string
	title          string
	partyRepo      repos.PartyRepo
	codes          *CodeAllocator
	defaultCountry string
}

func NewPartyService(log *logger.Logger, kind types.PartyKind, partyRepo repos.PartyRepo, codes *CodeAllocator, defaultCountry string) PartyService {
	if defaultCountry == "" {
		defaultCountry = "India"
	}
	return &partyService{
		log:            log.With("service", "PartyService", "kind", string(kind)),
		kind:           kind,
		label:          string(kind),
		title:          strings.ToUpper(string(kind)[:1]) + string(kind)[1:],
		partyRepo:      partyRepo,
		codes:          codes,
		defaultCountry: defaultCountry,
	}
}

func (ps *partyService) Kind() types.PartyKind { return ps.kind }

func (ps *partyService) List(ctx context.Context, params listing.Params) (listing.Page[*types.Party], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return listing.Page[*types.Party]{}, err
	}
	return ps.partyRepo.List(dbctx.Context{Ctx: ctx}, userID, ps.kind, params)
}

func (ps *partyService) Get(ctx context.Context, id uint) (*types.Party, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	p, err := ps.partyRepo.GetByID(dbctx.Context{Ctx: ctx}, userID, ps.kind, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apierr.NotFound(ps.label+"_not_found", ps.title+" not found")
	}
	return p, nil
}

func (ps *partyService) Create(ctx context.Context, in PartyInput) (*types.Party, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	p := &types.Party{UserID: userID, Kind: ps.kind}
	if err := ps.apply(p, in); err != nil {
		return nil, err
	}
	code, release, err := ps.allocate(ctx, p, 0)
	if err != nil {
		return nil, err
	}
	defer release()
	p.PartyCode = code

	if _, err := ps.partyRepo.Create(dbctx.Context{Ctx: ctx}, p); err != nil {
		return nil, ps.writeFailure(err)
	}
	ps.log.Info("party created", "party_id", p.ID, "party_code", p.PartyCode)
	return p, nil
}

func (ps *partyService) Update(ctx context.Context, id uint, in PartyInput) (*types.Party, error) {
	p, err := ps.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prevName, prevPostal := p.Name, p.PostalCode
	if err := ps.apply(p, in); err != nil {
		return nil, err
	}
	if p.Name != prevName || p.PostalCode != prevPostal {
		code, release, err := ps.allocate(ctx, p, p.ID)
		if err != nil {
			return nil, err
		}
		defer release()
		p.PartyCode = code
	}
	ok, err := ps.partyRepo.Update(dbctx.Context{Ctx: ctx}, p)
	if err != nil {
		return nil, ps.writeFailure(err)
	}
	if !ok {
		return nil, apierr.NotFound(ps.label+"_not_found", ps.title+" not found")
	}
	return p, nil
}

func (ps *partyService) Delete(ctx context.Context, id uint) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	ok, err := ps.partyRepo.Delete(dbctx.Context{Ctx: ctx}, userID, ps.kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return apierr.NotFound(ps.label+"_not_found", ps.title+" not found")
	}
	return nil
}

func (ps *partyService) allocate(ctx context.Context, p *types.Party, excludeID uint) (string, func(), error) {
	taken := func(ctx context.Context, code string) (bool, error) {
		return ps.partyRepo.CodeExists(dbctx.Context{Ctx: ctx}, code, excludeID)
	}
	code, release, err := ps.codes.Allocate(ctx, CodeScopeParty, p.Name, p.PostalCode, taken)
	if err != nil {
		ps.log.Error("party code generation failed", "error", err)
		return "", release, codeFailure(ps.label, err)
	}
	return code, release, nil
}

func (ps *partyService) apply(p *types.Party, in PartyInput) error {
	name := strings.TrimSpace(in.Name)
	postal := strings.TrimSpace(in.PostalCode)
	if name == "" || postal == "" {
		return apierr.BadRequest("missing_fields", "Missing required fields: name and postalCode are required")
	}
	if normalization.Digits(postal) == "" {
		return apierr.BadRequest("invalid_postal_code", "postalCode must contain digits")
	}
	phone, err := normalization.Phone(in.DialCode, in.PhoneNumber)
	if err != nil {
		return apierr.BadRequest("invalid_phone", "Invalid phone number format")
	}
	p.Name = name
	p.PostalCode = postal
	p.ContactPerson = strings.TrimSpace(in.ContactPerson)
	p.Email = strings.TrimSpace(in.Email)
	p.PhoneNumber = phone
	p.GSTNumber = strings.ToUpper(strings.TrimSpace(in.GSTNumber))
	p.Address = strings.TrimSpace(in.Address)
	p.City = strings.TrimSpace(in.City)
	p.Country = strings.TrimSpace(in.Country)
	if p.Country == "" {
		p.Country = ps.defaultCountry
	}
	return nil
}

func (ps *partyService) writeFailure(err error) error {
	if db.IsUniqueViolation(err) {
		return apierr.Conflict(ps.label+"_exists", ps.title+" with this information already exists")
	}
	ps.log.Error("party write failed", "error", err)
	return err
}
