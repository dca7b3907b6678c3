package services

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/freightdesk/fleetadmin/internal/codegen"
	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/data/repos"
	"github.com/freightdesk/fleetadmin/internal/data/repos/testutil"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
)

func parties(t *testing.T, f fixture, kind types.PartyKind, opts ...codegen.Option) PartyService {
	t.Helper()
	log := testutil.Logger(t)
	alloc := NewCodeAllocator(codegen.New(opts...), nil, log)
	return NewPartyService(log, kind, repos.NewPartyRepo(f.db, log), alloc, "India")
}

func TestPartyCreateGeneratesCode(t *testing.T) {
	f := newFixture(t)
	svc := parties(t, f, types.KindConsignee)
	ctx := asUser(f.seedUser(t, "c@example.com"))

	p, err := svc.Create(ctx, PartyInput{Name: "Acme Traders", PostalCode: "560 034", GSTNumber: "27aapfu0939f1zv"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !regexp.MustCompile(`^ACM034[!@#$%^&*]$`).MatchString(p.PartyCode) {
		t.Fatalf("code=%q", p.PartyCode)
	}
	if p.Kind != types.KindConsignee || p.Country != "India" || p.GSTNumber != "27AAPFU0939F1ZV" {
		t.Fatalf("unexpected party %+v", p)
	}

	_, err = svc.Create(ctx, PartyInput{Name: "No Postal"})
	wantAPIError(t, err, http.StatusBadRequest, "missing_fields")
}

func TestPartyKindsAreIsolated(t *testing.T) {
	f := newFixture(t)
	consignees := parties(t, f, types.KindConsignee)
	consignors := parties(t, f, types.KindConsignor)
	ctx := asUser(f.seedUser(t, "k@example.com"))

	p, err := consignees.Create(ctx, PartyInput{Name: "Acme", PostalCode: "400001"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = consignors.Get(ctx, p.ID)
	wantAPIError(t, err, http.StatusNotFound, "consignor_not_found")

	page, err := consignors.List(ctx, listing.Params{})
	if err != nil || page.Total != 0 {
		t.Fatalf("consignor list: %+v %v", page, err)
	}
}

func TestPartyUpdateRegeneratesOnlyOnKeyChange(t *testing.T) {
	f := newFixture(t)
	svc := parties(t, f, types.KindConsignor, fixedSymbol(3), codegen.WithMaxAttempts(1))
	ctx := asUser(f.seedUser(t, "u@example.com"))

	p, err := svc.Create(ctx, PartyInput{Name: "Bharat Steel", PostalCode: "831001"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.PartyCode != "BHA001$" {
		t.Fatalf("code=%q", p.PartyCode)
	}
	p2, err := svc.Update(ctx, p.ID, PartyInput{Name: "Bharat Steel", PostalCode: "831001", City: "Jamshedpur"})
	if err != nil || p2.PartyCode != "BHA001$" {
		t.Fatalf("Update same key: %+v %v", p2, err)
	}
	p3, err := svc.Update(ctx, p.ID, PartyInput{Name: "Tata Steel", PostalCode: "831001"})
	if err != nil || p3.PartyCode != "TAT001$" {
		t.Fatalf("Update new key: %+v %v", p3, err)
	}

	_, err = svc.Create(ctx, PartyInput{Name: "Tata Motors", PostalCode: "831001"})
	wantAPIError(t, err, http.StatusInternalServerError, "code_generation_failed")

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestPartyCodeUniqueAcrossKinds(t *testing.T) {
	f := newFixture(t)
	ctx := asUser(f.seedUser(t, "x@example.com"))
	consignees := parties(t, f, types.KindConsignee, fixedSymbol(0), codegen.WithMaxAttempts(1))
	consignors := parties(t, f, types.KindConsignor, fixedSymbol(0), codegen.WithMaxAttempts(1))

	if _, err := consignees.Create(ctx, PartyInput{Name: "Delta", PostalCode: "110001"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := consignors.Create(ctx, PartyInput{Name: "Delta", PostalCode: "110001"})
	wantAPIError(t, err, http.StatusInternalServerError, "code_generation_failed")
}

// freePartyCodes reports every candidate as free, leaving the unique index on
// party_code as the only guard.
type freePartyCodes struct {
	repos.PartyRepo
}

func (freePartyCodes) CodeExists(dbctx.Context, string, uint) (bool, error) {
	return false, nil
}

func TestPartyCreateConflictAtWrite(t *testing.T) {
	f := newFixture(t)
	log := testutil.Logger(t)
	repo := freePartyCodes{repos.NewPartyRepo(f.db, log)}
	alloc := NewCodeAllocator(codegen.New(fixedSymbol(0)), nil, log)
	consignees := NewPartyService(log, types.KindConsignee, repo, alloc, "India")
	consignors := NewPartyService(log, types.KindConsignor, repo, alloc, "India")
	ctx := asUser(f.seedUser(t, "race@example.com"))
	in := PartyInput{Name: "Acme Traders", PostalCode: "560034"}

	p, err := consignees.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.PartyCode != "ACM034!" {
		t.Fatalf("code=%q", p.PartyCode)
	}

	_, err = consignees.Create(ctx, in)
	wantAPIError(t, err, http.StatusConflict, "consignee_exists")

	_, err = consignors.Create(ctx, in)
	wantAPIError(t, err, http.StatusConflict, "consignor_exists")
}
