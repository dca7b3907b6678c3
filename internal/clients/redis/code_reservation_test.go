package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

func TestNewCodeReservationsRequiresAddress(t *testing.T) {
	if _, err := NewCodeReservations(context.Background(), logger.Nop(), Config{}); err == nil {
		t.Fatalf("expected error for empty address")
	}
	if _, err := NewCodeReservations(context.Background(), nil, Config{Addr: "localhost:6379"}); err == nil {
		t.Fatalf("expected error for nil logger")
	}
}

func TestDefaultsAndKeys(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	defer rdb.Close()

	r := newCodeReservations(logger.Nop(), rdb, Config{KeyPrefix: "fa:codes:"})
	if got := r.key("station", "MUM001!"); got != "fa:codes:station:MUM001!" {
		t.Fatalf("key=%q", got)
	}
	if r.ttl != defaultTTL {
		t.Fatalf("ttl=%v", r.ttl)
	}

	r = newCodeReservations(logger.Nop(), rdb, Config{TTL: time.Minute})
	if r.prefix != defaultKeyPrefix || r.ttl != time.Minute {
		t.Fatalf("prefix=%q ttl=%v", r.prefix, r.ttl)
	}
	if r.owner == "" {
		t.Fatalf("owner token not set")
	}
}

func TestNilReceiver(t *testing.T) {
	var r *CodeReservations
	if _, err := r.Reserve(context.Background(), "party", "ABC123!"); err == nil {
		t.Fatalf("expected error from nil reservations")
	}
	if err := r.Release(context.Background(), "party", "ABC123!"); err != nil {
		t.Fatalf("Release on nil: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close on nil: %v", err)
	}
}
