package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/freightdesk/fleetadmin/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:          uuid.New(),
		Name:        "Test User",
		Email:       email,
		PhoneNumber: fmt.Sprintf("9%09d", uuid.New().ID()%1_000_000_000),
		Password:    "pw",
		Role:        types.RoleUser,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedAdmin(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := SeedUser(tb, ctx, tx, email)
	if err := tx.WithContext(ctx).Model(u).Update("role", types.RoleAdmin).Error; err != nil {
		tb.Fatalf("promote admin: %v", err)
	}
	u.Role = types.RoleAdmin
	return u
}

func SeedStation(tb testing.TB, ctx context.Context, tx *gorm.DB, code, name string, zip int) *types.Station {
	tb.Helper()
	s := &types.Station{
		StationCode:   code,
		StationName:   name,
		DisplayName:   name,
		ZipCode:       zip,
		City:          "Mumbai",
		Country:       "India",
		ContactPerson: "Ravi",
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed station: %v", err)
	}
	return s
}

func SeedOwner(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string) *types.Owner {
	tb.Helper()
	o := &types.Owner{
		UserID:      userID,
		OwnerName:   name,
		FatherName:  "Senior",
		PhoneNumber: 919876543210,
		Country:     "India",
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed owner: %v", err)
	}
	return o
}

func SeedParty(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind types.PartyKind, code, name string) *types.Party {
	tb.Helper()
	p := &types.Party{
		UserID:     userID,
		Kind:       kind,
		PartyCode:  code,
		Name:       name,
		PostalCode: "400001",
		Country:    "India",
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed party: %v", err)
	}
	return p
}
