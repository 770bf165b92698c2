package snowflake

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

// atEpochMs returns a fake clock reading ms milliseconds after Epoch. Sleeping
// on it steps it forward, which drives the generator's wait loops.
func atEpochMs(ms int64) *clocktesting.FakeClock {
	return clocktesting.NewFakeClock(Epoch.Add(time.Duration(ms) * time.Millisecond))
}

func TestNew(t *testing.T) {
	gen, err := New(42, 3)
	require.NoError(t, err)

	assert.Equal(t, uint32(42), gen.NodeID())
	assert.Equal(t, uint32(3), gen.APIVersion())
	assert.True(t, gen.RollbackGuard(), "rollback guard is enabled by default")
}

func TestNew_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name       string
		nodeID     uint32
		apiVersion uint32
	}{
		{"node id 2^16", 1 << 16, 0},
		{"node id max uint32", ^uint32(0), 0},
		{"api version 256", 0, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := New(tt.nodeID, tt.apiVersion)
			require.Error(t, err)
			assert.Nil(t, gen)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorIs(t, err, ErrFieldRange)
		})
	}
}

func TestNew_AcceptsFieldMaximums(t *testing.T) {
	gen, err := New(MaxNodeID, MaxAPIVersion)
	require.NoError(t, err)

	id, err := gen.Generate(MaxEntityType)
	require.NoError(t, err)

	f := Decode(id)
	assert.Equal(t, uint32(MaxNodeID), f.NodeID)
	assert.Equal(t, uint32(MaxAPIVersion), f.APIVersion)
	assert.Equal(t, uint32(MaxEntityType), f.EntityType)
}

func TestGenerate_Example(t *testing.T) {
	gen, err := New(42, 3, WithClock(atEpochMs(1000)))
	require.NoError(t, err)

	// Counters 0 through 6 are taken by the first seven calls.
	for i := 0; i < 7; i++ {
		_, err := gen.Generate(1)
		require.NoError(t, err)
	}

	id, err := gen.Generate(1)
	require.NoError(t, err)
	assert.Equal(t, Fields{TimestampMs: 1000, EntityType: 1, Counter: 7, APIVersion: 3, NodeID: 42}, Decode(id))
}

func TestGenerate_EntityTypeOutOfRange(t *testing.T) {
	gen, err := New(1, 1, WithClock(atEpochMs(1000)))
	require.NoError(t, err)

	id, err := gen.Generate(MaxEntityType + 1)
	require.ErrorIs(t, err, ErrFieldRange)
	assert.True(t, id.IsNil())

	// A rejected call does not consume a counter value.
	id, err = gen.Generate(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), Decode(id).Counter)
}

func TestGenerate_ClockBeforeEpoch(t *testing.T) {
	gen, err := New(1, 1, WithClock(atEpochMs(-1)))
	require.NoError(t, err)

	id, err := gen.Generate(0)
	require.ErrorIs(t, err, ErrClockBeforeEpoch)
	assert.True(t, id.IsNil())
}

func TestGenerate_AtEpoch(t *testing.T) {
	gen, err := New(1, 1, WithClock(atEpochMs(0)))
	require.NoError(t, err)

	first, err := gen.Generate(0)
	require.NoError(t, err)
	second, err := gen.Generate(0)
	require.NoError(t, err)

	assert.Equal(t, Fields{TimestampMs: 0, Counter: 0, APIVersion: 1, NodeID: 1}, Decode(first))
	assert.Equal(t, Fields{TimestampMs: 0, Counter: 1, APIVersion: 1, NodeID: 1}, Decode(second))
}

func TestGenerate_ZeroIDAtEpoch(t *testing.T) {
	gen, err := New(0, 0, WithClock(atEpochMs(0)))
	require.NoError(t, err)

	id, err := gen.Generate(0)
	require.NoError(t, err)
	assert.True(t, id.IsNil(), "the all-zero ID is a legitimate first ID")
	assert.Equal(t, "0", id.String())

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, Nil, parsed)
}

func TestGenerate_CounterResetsOnNewMillisecond(t *testing.T) {
	clk := atEpochMs(1000)
	gen, err := New(1, 1, WithClock(clk))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := gen.Generate(0)
		require.NoError(t, err)
	}

	clk.Step(time.Millisecond)
	id, err := gen.Generate(0)
	require.NoError(t, err)

	f := Decode(id)
	assert.Equal(t, uint64(1001), f.TimestampMs)
	assert.Equal(t, uint32(0), f.Counter)
}

func TestGenerate_SubMillisecondStepKeepsCounting(t *testing.T) {
	clk := atEpochMs(1000)
	gen, err := New(1, 1, WithClock(clk))
	require.NoError(t, err)

	_, err = gen.Generate(0)
	require.NoError(t, err)

	clk.Step(400 * time.Microsecond)
	id, err := gen.Generate(0)
	require.NoError(t, err)

	f := Decode(id)
	assert.Equal(t, uint64(1000), f.TimestampMs)
	assert.Equal(t, uint32(1), f.Counter)
}

// The counter is 13 bits wide: 8192 IDs fit in one millisecond and the
// next call waits for the following millisecond.
func TestGenerate_CounterRollover(t *testing.T) {
	clk := atEpochMs(1000)
	gen, err := New(7, 2, WithClock(clk))
	require.NoError(t, err)

	seen := make(map[ID]struct{}, MaxCounter+2)
	for want := uint32(0); want <= MaxCounter; want++ {
		id, err := gen.Generate(5)
		require.NoError(t, err)

		f := Decode(id)
		require.Equal(t, uint64(1000), f.TimestampMs)
		require.Equal(t, want, f.Counter)
		seen[id] = struct{}{}
	}

	id, err := gen.Generate(5)
	require.NoError(t, err)

	f := Decode(id)
	assert.Greater(t, f.TimestampMs, uint64(1000), "overflow must move to a later millisecond")
	assert.Equal(t, uint32(0), f.Counter)
	assert.NotContains(t, seen, id)
	assert.False(t, clk.Now().Before(Epoch.Add(1001*time.Millisecond)), "generator waited on the clock")
}

func TestGenerate_RollbackGuardWaits(t *testing.T) {
	clk := atEpochMs(1000)
	var logs bytes.Buffer
	gen, err := New(1, 1, WithClock(clk), WithLogger(zerolog.New(&logs)))
	require.NoError(t, err)

	first, err := gen.Generate(0)
	require.NoError(t, err)

	clk.SetTime(Epoch.Add(997 * time.Millisecond))
	second, err := gen.Generate(0)
	require.NoError(t, err)

	f := Decode(second)
	assert.GreaterOrEqual(t, f.TimestampMs, uint64(1000), "timestamp never moves backward")
	if f.TimestampMs == 1000 {
		assert.Equal(t, uint32(1), f.Counter)
	}
	assert.Equal(t, 1, second.Compare(first))
	assert.False(t, clk.Now().Before(Epoch.Add(1000*time.Millisecond)), "generator waited for the clock to catch up")
	assert.Contains(t, logs.String(), "system clock moved backwards")
}

// stallingClock parks the first Now call made after stallNext is set, once
// the time has been read, until resume is closed.
type stallingClock struct {
	*clocktesting.FakeClock
	stallNext atomic.Bool
	stalled   chan struct{}
	resume    chan struct{}
}

func (c *stallingClock) Now() time.Time {
	now := c.FakeClock.Now()
	if c.stallNext.CompareAndSwap(true, false) {
		close(c.stalled)
		<-c.resume
	}
	return now
}

func TestGenerate_StaleClockReadIsNotRollback(t *testing.T) {
	clk := &stallingClock{
		FakeClock: atEpochMs(1000),
		stalled:   make(chan struct{}),
		resume:    make(chan struct{}),
	}
	var logs bytes.Buffer
	gen, err := New(1, 1, WithClock(clk), WithLogger(zerolog.New(&logs)))
	require.NoError(t, err)

	_, err = gen.Generate(0)
	require.NoError(t, err)

	// One caller reads 1000ms and is preempted before it claims an ID.
	clk.stallNext.Store(true)
	var slow ID
	var slowErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		slow, slowErr = gen.Generate(0)
	}()
	<-clk.stalled

	// Meanwhile the clock ticks and another caller claims 1001ms.
	clk.Step(time.Millisecond)
	fast, err := gen.Generate(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1001), Decode(fast).TimestampMs)

	close(clk.resume)
	<-done
	require.NoError(t, slowErr)

	assert.Equal(t, 1, slow.Compare(fast))
	assert.Equal(t, uint64(1001), Decode(slow).TimestampMs)
	assert.NotContains(t, logs.String(), "system clock moved backwards")
	assert.True(t, clk.Now().Equal(Epoch.Add(1001*time.Millisecond)), "no rollback wait")
}

func TestGenerate_RollbackGuardDisabled(t *testing.T) {
	clk := atEpochMs(1000)
	gen, err := New(1, 1, WithClock(clk), WithRollbackGuard(false))
	require.NoError(t, err)
	assert.False(t, gen.RollbackGuard())

	_, err = gen.Generate(0)
	require.NoError(t, err)

	clk.SetTime(Epoch.Add(997 * time.Millisecond))
	id, err := gen.Generate(0)
	require.NoError(t, err)

	f := Decode(id)
	assert.Equal(t, uint64(997), f.TimestampMs, "rollback accepted without the guard")
	assert.Equal(t, uint32(0), f.Counter)
	assert.True(t, clk.Now().Equal(Epoch.Add(997*time.Millisecond)), "no waiting without the guard")
}

func TestGenerate_RollbackBeforeEpochFails(t *testing.T) {
	clk := atEpochMs(1000)
	gen, err := New(1, 1, WithClock(clk))
	require.NoError(t, err)

	_, err = gen.Generate(0)
	require.NoError(t, err)

	clk.SetTime(Epoch.Add(-time.Hour))
	_, err = gen.Generate(0)
	assert.ErrorIs(t, err, ErrClockBeforeEpoch)
}

func TestGenerate_MonotonicIDs(t *testing.T) {
	gen, err := New(3, 1)
	require.NoError(t, err)

	prev, err := gen.Generate(9)
	require.NoError(t, err)
	for i := 0; i < 50000; i++ {
		id, err := gen.Generate(9)
		require.NoError(t, err)
		require.GreaterOrEqual(t, id.Timestamp(), prev.Timestamp())
		require.Equal(t, 1, id.Compare(prev), "ids from one generator and entity type increase")
		prev = id
	}
}

func TestGenerate_ConcurrentUniqueness(t *testing.T) {
	gen, err := New(11, 1)
	require.NoError(t, err)

	goroutines, perGoroutine := 16, 5000
	if testing.Short() {
		perGoroutine = 500
	}

	results := make([][]ID, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids := make([]ID, 0, perGoroutine)
			for j := 0; j < perGoroutine; j++ {
				id, err := gen.Generate(uint32(i % 4))
				if err != nil {
					t.Errorf("Generate() error = %v", err)
					return
				}
				ids = append(ids, id)
			}
			results[i] = ids
		}(i)
	}
	wg.Wait()

	type pair struct {
		ts      uint64
		counter uint32
	}
	seen := make(map[pair]struct{}, goroutines*perGoroutine)
	for _, ids := range results {
		for _, id := range ids {
			f := Decode(id)
			p := pair{f.TimestampMs, f.Counter}
			if _, dup := seen[p]; dup {
				t.Fatalf("duplicate (timestamp, counter) pair %+v", p)
			}
			seen[p] = struct{}{}
		}
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}

// Many goroutines overflow the counter of a frozen clock; the waiting ones
// advance it by sleeping.
func TestGenerate_ConcurrentRollover(t *testing.T) {
	gen, err := New(1, 1, WithClock(atEpochMs(5000)))
	require.NoError(t, err)

	const goroutines, perGoroutine = 8, 3000
	results := make(chan ID, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				id, err := gen.Generate(0)
				if err != nil {
					t.Errorf("Generate() error = %v", err)
					return
				}
				results <- id
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[ID]struct{}, goroutines*perGoroutine)
	var maxTs uint64
	for id := range results {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
		if ts := id.Timestamp(); ts > maxTs {
			maxTs = ts
		}
	}
	assert.Len(t, seen, goroutines*perGoroutine)
	assert.GreaterOrEqual(t, maxTs, uint64(5002), "24000 ids need at least three milliseconds")
}

func TestGenerate_Latency(t *testing.T) {
	if testing.Short() || raceEnabled {
		t.Skip("latency is not meaningful in short or race mode")
	}

	gen, err := New(1, 1)
	require.NoError(t, err)

	const n = 200000
	start := time.Now()
	for i := 0; i < n; i++ {
		if _, err := gen.Generate(0); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
	}
	avg := time.Since(start) / n
	assert.Less(t, avg, 5*time.Microsecond, "average generation latency")
}
