package microshard

import (
	"fmt"
	"sync"
	"time"

	"github.com/dilipvamsi/microshard-uuid/pkg/civil"
	"github.com/dilipvamsi/microshard-uuid/pkg/entropy"
)

// defaultSource is the process-wide entropy source behind the package-level
// constructors. It is seeded lazily on first use so that programs which only
// parse identifiers never touch the OS entropy pool. Generators built with
// WithSource bypass it entirely.
var (
	defaultOnce   sync.Once
	defaultLocked *entropy.Locked
)

func defaultSource() *entropy.Locked {
	defaultOnce.Do(func() {
		defaultLocked = entropy.NewLocked(entropy.New())
	})
	return defaultLocked
}

// build packs micros and shard with one masked draw from src. It is the
// single funnel every construction path goes through.
func build(micros uint64, shard uint32, src Source) (UUID, error) {
	if err := validateShard(shard); err != nil {
		return Nil, err
	}
	if err := validateMicros(micros); err != nil {
		return Nil, err
	}
	return pack(micros, shard, src.Uint64()&mask36), nil
}

// Generate returns a new identifier for shard stamped with the current wall
// clock. It fails with ErrTimeBeforeEpoch if the clock is set before 1970.
func Generate(shard uint32) (UUID, error) {
	now := time.Now().UnixMicro()
	if now < 0 {
		return Nil, fmt.Errorf("%w: clock reads %d us", ErrTimeBeforeEpoch, now)
	}
	return build(uint64(now), shard, defaultSource())
}

// FromMicros returns a new identifier for shard stamped with the given
// microsecond timestamp. Timestamps above MaxTimestamp fail with
// ErrTimeOverflow.
func FromMicros(micros uint64, shard uint32) (UUID, error) {
	return build(micros, shard, defaultSource())
}

// FromTime returns a new identifier for shard stamped with t. Times before
// the epoch fail with ErrTimeBeforeEpoch; times past the 54-bit range fail
// with ErrTimeOverflow.
func FromTime(t time.Time, shard uint32) (UUID, error) {
	micros := t.UnixMicro()
	if micros < 0 {
		return Nil, fmt.Errorf("%w: %s", ErrTimeBeforeEpoch, t.UTC().Format(time.RFC3339))
	}
	return build(uint64(micros), shard, defaultSource())
}

// FromISO returns a new identifier for shard stamped with the given strict
// ISO-8601 timestamp, YYYY-MM-DDTHH:MM:SS[.ffffff]Z. Malformed or
// out-of-range input fails with ErrInvalidISO.
func FromISO(iso string, shard uint32) (UUID, error) {
	micros, err := civil.ParseMicros(iso)
	if err != nil {
		return Nil, fmt.Errorf("%w: %w", ErrInvalidISO, err)
	}
	return build(micros, shard, defaultSource())
}
