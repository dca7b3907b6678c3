package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/freightdesk/fleetadmin/internal/codegen"
	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/data/repos/testutil"
)

type memReserver struct {
	mu   sync.Mutex
	held map[string]bool
	err  error
}

func (m *memReserver) Reserve(_ context.Context, scope, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	key := scope + ":" + code
	if m.held[key] {
		return false, nil
	}
	m.held[key] = true
	return true, nil
}

func (m *memReserver) Release(_ context.Context, scope, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, scope+":"+code)
	return nil
}

// sequence walks the symbol alphabet in order.
func sequence() func(int) int {
	i := -1
	return func(n int) int {
		i++
		return i % n
	}
}

func listingParams(search string) listing.Params {
	return listing.Params{Search: search}
}

func TestAllocateReservationFailureFallsBackToDatabase(t *testing.T) {
	res := &memReserver{held: map[string]bool{}, err: errors.New("redis down")}
	a := NewCodeAllocator(codegen.New(), res, testutil.Logger(t))
	code, release, err := a.Allocate(context.Background(), CodeScopeStation, "Main", "400001", func(context.Context, string) (bool, error) {
		return false, nil
	})
	if err != nil || !codegen.Valid(code) {
		t.Fatalf("code=%q err=%v", code, err)
	}
	release()
}

func TestAllocateReleaseIsNeverNil(t *testing.T) {
	a := NewCodeAllocator(codegen.New(codegen.WithMaxAttempts(2)), nil, testutil.Logger(t))
	_, release, err := a.Allocate(context.Background(), CodeScopeParty, "x", "1", func(context.Context, string) (bool, error) {
		return true, nil
	})
	if !errors.Is(err, codegen.ErrGenerationExhausted) {
		t.Fatalf("err=%v", err)
	}
	if release == nil {
		t.Fatalf("release is nil")
	}
	release()
}

func TestAllocatePredicateErrorIsInternal(t *testing.T) {
	a := NewCodeAllocator(codegen.New(), nil, testutil.Logger(t))
	boom := errors.New("db gone")
	_, _, err := a.Allocate(context.Background(), CodeScopeStation, "x", "1", func(context.Context, string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
	mapped := codeFailure("station", err)
	wantAPIError(t, mapped, 500, "internal_error")
}
