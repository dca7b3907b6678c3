package app

import (
	"context"
	"fmt"

	"github.com/freightdesk/fleetadmin/internal/clients/redis"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

type Clients struct {
	// CodeReservations is nil when REDIS_ADDR is unset.
	CodeReservations *redis.CodeReservations
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	if cfg.Redis.Addr == "" {
		log.Info("redis not configured; code uniqueness relies on the database only")
		return Clients{}, nil
	}
	codes, err := redis.NewCodeReservations(ctx, log, cfg.Redis)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis code reservations: %w", err)
	}
	return Clients{CodeReservations: codes}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.CodeReservations != nil {
		_ = c.CodeReservations.Close()
	}
}
