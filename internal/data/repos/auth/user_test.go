package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/freightdesk/fleetadmin/internal/data/db"
	"github.com/freightdesk/fleetadmin/internal/data/repos/testutil"
	types "github.com/freightdesk/fleetadmin/internal/domain"
)

func TestUserRepo(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	dbc := testutil.Ctx(tx)
	repo := NewUserRepo(gdb, testutil.Logger(t))

	u := &types.User{Name: "Asha", Email: "asha@example.com", PhoneNumber: "919800000001", Password: "hash"}
	if _, err := repo.Create(dbc, []*types.User{u}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Fatalf("expected id assigned on create")
	}

	got, err := repo.GetByEmail(dbc, "  ASHA@example.com ")
	if err != nil || got == nil || got.ID != u.ID {
		t.Fatalf("GetByEmail: got=%v err=%v", got, err)
	}
	if missing, err := repo.GetByEmail(dbc, "nobody@example.com"); err != nil || missing != nil {
		t.Fatalf("GetByEmail missing: got=%v err=%v", missing, err)
	}
	if ok, err := repo.EmailExists(dbc, "asha@example.com"); err != nil || !ok {
		t.Fatalf("EmailExists: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.PhoneExists(dbc, "919800000002"); err != nil || ok {
		t.Fatalf("PhoneExists: ok=%v err=%v", ok, err)
	}
	if err := repo.UpdateRole(dbc, u.ID, types.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	rows, err := repo.GetByIDs(dbc, []uuid.UUID{u.ID})
	if err != nil || len(rows) != 1 || !rows[0].IsAdmin() {
		t.Fatalf("GetByIDs: rows=%v err=%v", rows, err)
	}

	dup := &types.User{Name: "Other", Email: "asha@example.com", PhoneNumber: "919800000003", Password: "hash"}
	if _, err := repo.Create(dbc, []*types.User{dup}); !db.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}

func TestUserTokenRepo(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	dbc := testutil.Ctx(tx)
	repo := NewUserTokenRepo(gdb, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "tokens@example.com")
	makeToken := func(access, refresh string) *types.UserToken {
		return &types.UserToken{
			UserID:       u.ID,
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresAt:    time.Now().Add(time.Hour),
		}
	}

	t1 := makeToken("access-1", "refresh-1")
	t2 := makeToken("access-2", "refresh-2")
	if _, err := repo.Create(dbc, []*types.UserToken{t1, t2}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rows, err := repo.GetByAccessTokens(dbc, []string{"access-1"}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByAccessTokens: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByRefreshTokens(dbc, []string{"refresh-2"}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByRefreshTokens: err=%v len=%d", err, len(rows))
	}
	if err := repo.FullDeleteByIDs(dbc, []uuid.UUID{t1.ID}); err != nil {
		t.Fatalf("FullDeleteByIDs: %v", err)
	}
	if rows, _ := repo.GetByAccessTokens(dbc, []string{"access-1"}); len(rows) != 0 {
		t.Fatalf("token survived delete")
	}
	if err := repo.FullDeleteByUserIDs(dbc, []uuid.UUID{u.ID}); err != nil {
		t.Fatalf("FullDeleteByUserIDs: %v", err)
	}
	if rows, _ := repo.GetByRefreshTokens(dbc, []string{"refresh-2"}); len(rows) != 0 {
		t.Fatalf("token survived user delete")
	}
}
