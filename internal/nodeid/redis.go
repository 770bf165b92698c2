package nodeid

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"k8s.io/utils/clock"

	pkglog "github.com/weiawesome/snowflake128/pkg/log"
	"github.com/weiawesome/snowflake128/pkg/snowflake"
)

// Both scripts only touch the key while it still holds our owner token.
var (
	renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

	releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)
)

// RedisLease claims the lowest free node ID slot in Redis and keeps it alive
// with a TTL lease renewed at a third of the TTL. Lost is closed when the
// slot is taken over, or when a renewal fails and the next attempt would
// come too late to keep the lease alive.
type RedisLease struct {
	client   redis.UniversalClient
	prefix   string
	ttl      time.Duration
	owner    string
	maxNodes uint32
	clock    clock.WithTicker
	logger   zerolog.Logger

	mu     sync.Mutex
	nodeID uint32
	held   bool
	stop   chan struct{}
	done   chan struct{}

	lost     chan struct{}
	lostOnce sync.Once
}

// LeaseOption configures a RedisLease.
type LeaseOption func(*RedisLease)

// WithMaxNodes limits the slots scanned to [0, n).
func WithMaxNodes(n uint32) LeaseOption {
	return func(l *RedisLease) {
		l.maxNodes = n
	}
}

// WithLeaseClock sets the clock driving renewals.
func WithLeaseClock(c clock.WithTicker) LeaseOption {
	return func(l *RedisLease) {
		l.clock = c
	}
}

// WithLeaseLogger sets the logger.
func WithLeaseLogger(logger zerolog.Logger) LeaseOption {
	return func(l *RedisLease) {
		l.logger = logger
	}
}

// NewRedisLease creates a lease manager storing slots under
// "<prefix>:node:<n>".
func NewRedisLease(client redis.UniversalClient, prefix string, ttl time.Duration, opts ...LeaseOption) *RedisLease {
	l := &RedisLease{
		client:   client,
		prefix:   prefix,
		ttl:      ttl,
		owner:    uuid.New().String(),
		maxNodes: snowflake.MaxNodeID + 1,
		clock:    clock.RealClock{},
		logger:   zerolog.Nop(),
		lost:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key returns the Redis key of a node ID slot.
func (l *RedisLease) Key(nodeID uint32) string {
	return l.prefix + ":node:" + strconv.FormatUint(uint64(nodeID), 10)
}

// Owner returns the token stored in the claimed slot.
func (l *RedisLease) Owner() string {
	return l.owner
}

func (l *RedisLease) Acquire(ctx context.Context) (uint32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held {
		return l.nodeID, nil
	}

	for n := uint32(0); n < l.maxNodes; n++ {
		ok, err := l.client.SetNX(ctx, l.Key(n), l.owner, l.ttl).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to claim node id %d: %w", n, err)
		}
		if !ok {
			continue
		}

		l.nodeID = n
		l.held = true
		l.stop = make(chan struct{})
		l.done = make(chan struct{})

		ticker := l.clock.NewTicker(l.ttl / 3)
		go l.renewLoop(l.Key(n), ticker, l.stop, l.done)

		l.logger.Info().
			Uint32(pkglog.FieldNodeID, n).
			Str("key", l.Key(n)).
			Dur("ttl", l.ttl).
			Msg("node id lease acquired")
		return n, nil
	}

	return 0, ErrExhausted
}

func (l *RedisLease) renewLoop(key string, ticker clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	expires := l.clock.Now().Add(l.ttl)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
		}

		ctx, cancel := context.WithTimeout(context.Background(), l.ttl/3)
		res, err := renewScript.Run(ctx, l.client, []string{key}, l.owner, l.ttl.Milliseconds()).Int()
		cancel()

		switch {
		case err != nil && l.clock.Now().Add(l.ttl/3).Before(expires):
			l.logger.Warn().Err(err).Str("key", key).Msg("node id lease renewal failed, retrying")
			continue
		case err != nil:
			// The next tick would land at or after expiry, when another
			// process may already hold the slot.
			l.logger.Error().Err(err).Str("key", key).Msg("node id lease about to expire, giving up")
		case res == 0:
			l.logger.Error().Str("key", key).Msg("node id lease taken over by another owner")
		default:
			expires = l.clock.Now().Add(l.ttl)
			l.logger.Debug().Str("key", key).Msg("node id lease renewed")
			continue
		}

		l.lostOnce.Do(func() { close(l.lost) })
		return
	}
}

func (l *RedisLease) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.held {
		return ErrNotAcquired
	}
	close(l.stop)
	<-l.done
	l.held = false

	key := l.Key(l.nodeID)
	if err := releaseScript.Run(ctx, l.client, []string{key}, l.owner).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to release node id %d: %w", l.nodeID, err)
	}
	l.logger.Info().Uint32(pkglog.FieldNodeID, l.nodeID).Msg("node id lease released")
	return nil
}

func (l *RedisLease) Lost() <-chan struct{} {
	return l.lost
}
