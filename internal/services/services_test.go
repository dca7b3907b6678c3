package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/codegen"
	"github.com/freightdesk/fleetadmin/internal/data/repos"
	"github.com/freightdesk/fleetadmin/internal/data/repos/testutil"
	"github.com/freightdesk/fleetadmin/internal/pkg/ctxutil"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

// fixedSymbol always picks the same trailing symbol so collisions can be
// forced.
func fixedSymbol(idx int) codegen.Option {
	return codegen.WithRand(func(n int) int { return idx % n })
}

func asUser(id uuid.UUID) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: id})
}

func wantAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	ae, ok := apierr.As(err)
	if !ok {
		t.Fatalf("expected *apierr.Error(%d %s), got %v", status, code, err)
	}
	if ae.Status != status || ae.Code != code {
		t.Fatalf("got %d %s (%v), want %d %s", ae.Status, ae.Code, ae, status, code)
	}
}

type fixture struct {
	db *gorm.DB
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	return fixture{db: testutil.DB(t)}
}

func (f fixture) seedUser(t *testing.T, email string) uuid.UUID {
	t.Helper()
	return testutil.SeedUser(t, context.Background(), f.db, email).ID
}

func (f fixture) stations(t *testing.T, reserver CodeReserver, opts ...codegen.Option) StationService {
	t.Helper()
	log := testutil.Logger(t)
	alloc := NewCodeAllocator(codegen.New(opts...), reserver, log)
	return NewStationService(log, repos.NewStationRepo(f.db, log), alloc, "India")
}
