package fleet

import (
	"context"
	"testing"

	"github.com/freightdesk/fleetadmin/internal/data/db"
	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/data/repos/testutil"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/pointers"
)

func TestDriverRepoIsUserScoped(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	dbc := testutil.Ctx(tx)
	repo := NewDriverRepo(gdb, testutil.Logger(t))

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com")
	bob := testutil.SeedUser(t, ctx, tx, "bob@example.com")

	d := &types.Driver{UserID: alice.ID, DriverName: "Raju", MobileNumber: 919812345678, Tags: []string{"night", "hazmat"}}
	if _, err := repo.Create(dbc, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got, err := repo.GetByID(dbc, bob.ID, d.ID); err != nil || got != nil {
		t.Fatalf("bob should not see alice's driver: got=%v err=%v", got, err)
	}
	got, err := repo.GetByID(dbc, alice.ID, d.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if len(got.Tags) != 2 || got.Tags[1] != "hazmat" {
		t.Fatalf("tags not round-tripped: %v", got.Tags)
	}

	got.City = "Nagpur"
	if ok, err := repo.Update(dbc, bob.ID, got); err != nil || ok {
		t.Fatalf("bob update: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Update(dbc, alice.ID, got); err != nil || !ok {
		t.Fatalf("alice update: ok=%v err=%v", ok, err)
	}

	page, err := repo.List(dbc, bob.ID, listing.Params{})
	if err != nil || page.Total != 0 {
		t.Fatalf("bob list: page=%+v err=%v", page, err)
	}
	page, err = repo.List(dbc, alice.ID, listing.Params{Search: "nag"})
	if err != nil || page.Total != 1 {
		t.Fatalf("alice list: page=%+v err=%v", page, err)
	}

	if ok, err := repo.Delete(dbc, bob.ID, d.ID); err != nil || ok {
		t.Fatalf("bob delete: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Delete(dbc, alice.ID, d.ID); err != nil || !ok {
		t.Fatalf("alice delete: ok=%v err=%v", ok, err)
	}
}

func TestLorryRepoRegistrationUniquePerUser(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	dbc := testutil.Ctx(tx)
	repo := NewLorryRepo(gdb, testutil.Logger(t))

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com")
	bob := testutil.SeedUser(t, ctx, tx, "bob@example.com")
	owner := testutil.SeedOwner(t, ctx, tx, alice.ID, "Kiran")

	l := &types.Lorry{UserID: alice.ID, RegistrationNumber: "MH12AB1234", Status: types.LorryStatusActive, OwnerID: pointers.Uint(owner.ID)}
	if _, err := repo.Create(dbc, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	dup := &types.Lorry{UserID: alice.ID, RegistrationNumber: "MH12AB1234", Status: types.LorryStatusActive}
	if _, err := repo.Create(dbc, dup); !db.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
	other := &types.Lorry{UserID: bob.ID, RegistrationNumber: "MH12AB1234", Status: types.LorryStatusActive}
	if _, err := repo.Create(dbc, other); err != nil {
		t.Fatalf("same registration for another user: %v", err)
	}

	if err := repo.ClearOwner(dbc, alice.ID, owner.ID); err != nil {
		t.Fatalf("ClearOwner: %v", err)
	}
	got, err := repo.GetByID(dbc, alice.ID, l.ID)
	if err != nil || got == nil || got.OwnerID != nil {
		t.Fatalf("owner not cleared: got=%+v err=%v", got, err)
	}
}
