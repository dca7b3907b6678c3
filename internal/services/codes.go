package services

import (
	"context"
	"errors"

	"github.com/freightdesk/fleetadmin/internal/codegen"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

const (
	CodeScopeStation = "station"
	CodeScopeParty   = "party"
)

// CodeReserver holds a short-lived claim on a code between the uniqueness
// check and the insert. The database unique index stays authoritative.
type CodeReserver interface {
	Reserve(ctx context.Context, scope, code string) (bool, error)
	Release(ctx context.Context, scope, code string) error
}

// CodeAllocator wraps the generator with the persistence check and the
// optional reservation.
type CodeAllocator struct {
	gen      *codegen.Generator
	reserver CodeReserver
	log      *logger.Logger
}

func NewCodeAllocator(gen *codegen.Generator, reserver CodeReserver, log *logger.Logger) *CodeAllocator {
	if gen == nil {
		gen = codegen.New()
	}
	return &CodeAllocator{gen: gen, reserver: reserver, log: log.With("service", "CodeAllocator")}
}

// Allocate returns a code for which taken reported false and, when a
// reserver is configured, which was reserved. The returned release func is
// never nil and must run once the record is written or abandoned.
func (a *CodeAllocator) Allocate(
	ctx context.Context,
	scope, name, postalCode string,
	taken func(ctx context.Context, code string) (bool, error),
) (string, func(), error) {
	var reserved string
	isUnique := func(ctx context.Context, code string) (bool, error) {
		exists, err := taken(ctx, code)
		if err != nil || exists {
			return false, err
		}
		if a.reserver == nil {
			return true, nil
		}
		ok, err := a.reserver.Reserve(ctx, scope, code)
		if err != nil {
			a.log.Warn("code reservation unavailable, relying on unique index", "scope", scope, "error", err)
			return true, nil
		}
		if ok {
			reserved = code
		}
		return ok, nil
	}

	code, err := a.gen.GenerateUnique(ctx, name, postalCode, isUnique)
	if err != nil {
		return "", func() {}, err
	}
	release := func() {}
	if reserved != "" {
		release = func() {
			if rErr := a.reserver.Release(context.WithoutCancel(ctx), scope, reserved); rErr != nil {
				a.log.Warn("release code reservation failed", "scope", scope, "code", reserved, "error", rErr)
			}
		}
	}
	return code, release, nil
}

// codeFailure maps allocation errors for the given entity label.
func codeFailure(label string, err error) error {
	if errors.Is(err, codegen.ErrGenerationExhausted) {
		return apierr.Internal("code_generation_failed", "Failed to generate "+label+" code. Please try again.", err)
	}
	return apierr.Internal("internal_error", "internal server error", err)
}
