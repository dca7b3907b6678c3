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

type BrokerService interface {
	List(ctx context.Context, params listing.Params) (listing.Page[*types.Broker], error)
	Get(ctx context.Context, id uint) (*types.Broker, error)
	Create(ctx context.Context, in PersonInput) (*types.Broker, error)
	Update(ctx context.Context, id uint, in PersonInput) (*types.Broker, error)
}

type brokerService struct {
	log        *logger.Logger
	brokerRepo repos.BrokerRepo
}

func NewBrokerService(log *logger.Logger, brokerRepo repos.BrokerRepo) BrokerService {
	return &brokerService{log: log.With("service", "BrokerService"), brokerRepo: brokerRepo}
}

func (bs *brokerService) List(ctx context.Context, params listing.Params) (listing.Page[*types.Broker], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return listing.Page[*types.Broker]{}, err
	}
	return bs.brokerRepo.List(dbctx.Context{Ctx: ctx}, userID, params)
}

func (bs *brokerService) Get(ctx context.Context, id uint) (*types.Broker, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	b, err := bs.brokerRepo.GetByID(dbctx.Context{Ctx: ctx}, userID, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apierr.NotFound("broker_not_found", "Broker not found")
	}
	return b, nil
}

func (bs *brokerService) Create(ctx context.Context, in PersonInput) (*types.Broker, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	p, err := in.normalize(true)
	if err != nil {
		return nil, err
	}
	b := &types.Broker{UserID: userID}
	applyBroker(b, p)
	if _, err := bs.brokerRepo.Create(dbctx.Context{Ctx: ctx}, b); err != nil {
		bs.log.Error("create broker failed", "error", err)
		return nil, err
	}
	return b, nil
}

func (bs *brokerService) Update(ctx context.Context, id uint, in PersonInput) (*types.Broker, error) {
	b, err := bs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := in.normalize(true)
	if err != nil {
		return nil, err
	}
	applyBroker(b, p)
	ok, err := bs.brokerRepo.Update(dbctx.Context{Ctx: ctx}, b.UserID, b)
	if err != nil {
		bs.log.Error("update broker failed", "broker_id", id, "error", err)
		return nil, err
	}
	if !ok {
		return nil, apierr.NotFound("broker_not_found", "Broker not found")
	}
	return b, nil
}

func applyBroker(b *types.Broker, p person) {
	b.BrokerName = p.name
	b.FathersName = p.fatherName
	b.Email = p.email
	b.PhoneNumber = p.phone
	b.PanNumber = p.pan
	b.Country = p.country
	b.Address = p.address
	b.City = p.city
	b.PostalCode = p.postcode
}
