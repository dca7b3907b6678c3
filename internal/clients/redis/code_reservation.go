package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

const (
	defaultKeyPrefix = "fleetadmin:code"
	defaultTTL       = 30 * time.Second
)

type Config struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration
}

// releaseScript deletes the key only while this process still owns it, so a
// reservation that expired and was claimed elsewhere is left alone.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CodeReservations claims generated codes with SET NX so concurrent requests
// on any instance do not hand out the same code before it is persisted.
type CodeReservations struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
	owner  string
}

func NewCodeReservations(ctx context.Context, log *logger.Logger, cfg Config) (*CodeReservations, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newCodeReservations(log, rdb, cfg), nil
}

func newCodeReservations(log *logger.Logger, rdb *goredis.Client, cfg Config) *CodeReservations {
	prefix := strings.TrimSuffix(strings.TrimSpace(cfg.KeyPrefix), ":")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &CodeReservations{
		log:    log.With("client", "RedisCodeReservations"),
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		owner:  uuid.NewString(),
	}
}

func (r *CodeReservations) key(scope, code string) string {
	return r.prefix + ":" + scope + ":" + code
}

// Reserve reports whether the code was free and is now held for the TTL.
func (r *CodeReservations) Reserve(ctx context.Context, scope, code string) (bool, error) {
	if r == nil || r.rdb == nil {
		return false, errors.New("redis code reservations not initialized")
	}
	ok, err := r.rdb.SetNX(ctx, r.key(scope, code), r.owner, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve %s code: %w", scope, err)
	}
	if !ok {
		r.log.Debug("code already reserved", "scope", scope, "code", code)
	}
	return ok, nil
}

func (r *CodeReservations) Release(ctx context.Context, scope, code string) error {
	if r == nil || r.rdb == nil {
		return nil
	}
	if err := releaseScript.Run(ctx, r.rdb, []string{r.key(scope, code)}, r.owner).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("release %s code: %w", scope, err)
	}
	return nil
}

func (r *CodeReservations) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *CodeReservations) Close() error {
	if r == nil || r.rdb == nil {
		return nil
	}
	return r.rdb.Close()
}
