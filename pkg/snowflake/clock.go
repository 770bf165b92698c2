package snowflake

import (
	"math"
	"time"
)

// EpochUnixMilli is 2020-01-01T00:00:00Z in unix milliseconds.
const EpochUnixMilli int64 = 1_577_836_800_000

// Epoch is the instant every ID timestamp is measured from.
var Epoch = time.UnixMilli(EpochUnixMilli).UTC()

// Since returns the whole milliseconds elapsed between Epoch and t.
// Sub-millisecond precision is truncated.
func Since(t time.Time) (uint64, error) {
	ms := t.UnixMilli() - EpochUnixMilli
	if ms < 0 {
		return 0, ErrClockBeforeEpoch
	}
	return uint64(ms), nil
}

// Time converts a timestamp field back to wall-clock time. Timestamps past
// the range of time.UnixMilli are clamped.
func Time(ms uint64) time.Time {
	if ms > uint64(math.MaxInt64-EpochUnixMilli) {
		return time.UnixMilli(math.MaxInt64).UTC()
	}
	return time.UnixMilli(EpochUnixMilli + int64(ms)).UTC()
}
