package snowflake

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"k8s.io/utils/clock"
)

// maxStateTimestamp is the largest timestamp the packed generator state can
// record, about 71,000 years after Epoch.
const maxStateTimestamp = 1<<(64-CounterBits) - 2

// Generator issues IDs for one node. It is safe for concurrent use and must
// not be copied after first use.
type Generator struct {
	nodeID     uint32
	apiVersion uint32
	node       uint64 // pre-shifted nodeID and apiVersion

	guard  bool
	clock  clock.Clock
	logger zerolog.Logger
	spins  int

	// state holds (last timestamp + 1) above the low CounterBits bits and
	// the counter of that millisecond below them. Zero means no ID has been
	// issued yet. It is only ever changed by compare-and-swap.
	state atomic.Uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithRollbackGuard enables or disables blocking when the clock moves
// backward. The guard is enabled by default. Without it a clock rollback is
// accepted as is, which may produce IDs out of time order and, if the
// rollback revisits a millisecond that was already used, duplicates.
func WithRollbackGuard(enabled bool) Option {
	return func(g *Generator) {
		g.guard = enabled
	}
}

// WithClock sets the time source. Its Sleep method is used while waiting for
// the clock to advance.
func WithClock(c clock.Clock) Option {
	return func(g *Generator) {
		g.clock = c
	}
}

// WithLogger sets the logger used to report clock rollbacks.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator for the given node and API version. It returns an
// error wrapping ErrInvalidConfig if either value does not fit its field.
func New(nodeID, apiVersion uint32, opts ...Option) (*Generator, error) {
	if err := checkRange("node_id", uint64(nodeID), MaxNodeID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := checkRange("api_version", uint64(apiVersion), MaxAPIVersion); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	g := &Generator{
		nodeID:     nodeID,
		apiVersion: apiVersion,
		node:       nodeWord(nodeID, apiVersion),
		guard:      true,
		clock:      clock.RealClock{},
		logger:     zerolog.Nop(),
		spins:      defaultSpins,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NodeID returns the node identifier stamped into every ID.
func (g *Generator) NodeID() uint32 {
	return g.nodeID
}

// APIVersion returns the API version stamped into every ID.
func (g *Generator) APIVersion() uint32 {
	return g.apiVersion
}

// RollbackGuard reports whether the rollback guard is enabled.
func (g *Generator) RollbackGuard() bool {
	return g.guard
}

// Generate returns a new ID tagged with entityType.
//
// It fails with a *RangeError if entityType exceeds MaxEntityType and with
// ErrClockBeforeEpoch if the clock reads earlier than Epoch. Counter
// exhaustion and clock rollback are not errors; Generate waits them out.
func (g *Generator) Generate(entityType uint32) (ID, error) {
	if err := checkRange("entity_type", uint64(entityType), MaxEntityType); err != nil {
		return Nil, err
	}
	ts, counter, err := g.next()
	if err != nil {
		return Nil, err
	}
	return pack(ts, entityType, counter, g.node), nil
}

// next claims a unique (timestamp, counter) pair.
func (g *Generator) next() (uint64, uint32, error) {
	for {
		// Load the state before reading the clock. A timestamp stored by
		// another goroutine was then read from the clock before ours, so
		// now < last can only mean the clock really went backwards.
		prev := g.state.Load()
		last, counter, issued := unpackState(prev)

		now, err := g.now()
		if err != nil {
			return 0, 0, err
		}

		var next uint64
		switch {
		case !issued || now > last:
			next = packState(now, 0)
		case now == last:
			if counter == MaxCounter {
				if err := g.waitUntil(last + 1); err != nil {
					return 0, 0, err
				}
				continue
			}
			next = prev + 1
		case g.guard:
			g.logger.Warn().
				Uint64("last_timestamp_ms", last).
				Uint64("behind_ms", last-now).
				Msg("system clock moved backwards, holding id generation until it catches up")
			if err := g.waitUntil(last); err != nil {
				return 0, 0, err
			}
			continue
		default:
			next = packState(now, 0)
		}

		if g.state.CompareAndSwap(prev, next) {
			ts, c, _ := unpackState(next)
			return ts, c, nil
		}
	}
}

// now reads the clock as milliseconds since Epoch.
func (g *Generator) now() (uint64, error) {
	ms, err := Since(g.clock.Now())
	if err != nil {
		return 0, err
	}
	if ms > maxStateTimestamp {
		return 0, &RangeError{Field: "timestamp", Value: ms, Max: maxStateTimestamp}
	}
	return ms, nil
}

func packState(ts uint64, counter uint32) uint64 {
	return (ts+1)<<CounterBits | uint64(counter)
}

func unpackState(s uint64) (ts uint64, counter uint32, issued bool) {
	if s == 0 {
		return 0, 0, false
	}
	return s>>CounterBits - 1, uint32(s & MaxCounter), true
}
