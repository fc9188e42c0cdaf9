package microshard_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	microshard "github.com/dilipvamsi/microshard-uuid"
	"github.com/dilipvamsi/microshard-uuid/pkg/entropy"
)

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	t.Run("stamps its shard into every identifier", func(t *testing.T) {
		t.Parallel()

		gen, err := microshard.NewGenerator(321)
		require.NoError(t, err)
		assert.Equal(t, uint32(321), gen.ShardID())

		for range 10 {
			id, err := gen.New()
			require.NoError(t, err)
			assert.Equal(t, uint32(321), id.ShardID())
		}
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		t.Parallel()

		gen, err := microshard.NewGenerator(1,
			microshard.WithSource(nil),
			microshard.WithClock(nil),
		)
		require.NoError(t, err)

		id, err := gen.New()
		require.NoError(t, err)
		assert.Equal(t, uint32(1), id.ShardID())
	})
}

func TestGeneratorWithClock(t *testing.T) {
	t.Parallel()

	t.Run("uses the injected clock", func(t *testing.T) {
		t.Parallel()

		fixed := time.Date(2024, 5, 1, 12, 34, 56, 789_012_000, time.UTC)
		gen, err := microshard.NewGenerator(42,
			microshard.WithClock(func() time.Time { return fixed }),
		)
		require.NoError(t, err)

		id, err := gen.New()
		require.NoError(t, err)
		assert.Equal(t, uint64(1_714_566_896_789_012), id.TimestampMicros())
		assert.Equal(t, "2024-05-01T12:34:56.789012Z", id.ISOTime())
	})

	t.Run("rejects a clock before the epoch", func(t *testing.T) {
		t.Parallel()

		gen, err := microshard.NewGenerator(42,
			microshard.WithClock(func() time.Time {
				return time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC)
			}),
		)
		require.NoError(t, err)

		_, err = gen.New()
		assert.ErrorIs(t, err, microshard.ErrTimeBeforeEpoch)
	})

	t.Run("rejects a clock past the 54-bit range", func(t *testing.T) {
		t.Parallel()

		gen, err := microshard.NewGenerator(42,
			microshard.WithClock(func() time.Time {
				return time.Date(2541, 1, 1, 0, 0, 0, 0, time.UTC)
			}),
		)
		require.NoError(t, err)

		_, err = gen.New()
		assert.ErrorIs(t, err, microshard.ErrTimeOverflow)
	})
}

func TestGeneratorWithSource(t *testing.T) {
	t.Parallel()

	t.Run("seeded sources reproduce identifiers exactly", func(t *testing.T) {
		t.Parallel()

		fixed := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		clock := func() time.Time { return fixed }

		a, err := microshard.NewGenerator(7,
			microshard.WithSource(entropy.NewSeeded(1234)),
			microshard.WithClock(clock),
		)
		require.NoError(t, err)
		b, err := microshard.NewGenerator(7,
			microshard.WithSource(entropy.NewSeeded(1234)),
			microshard.WithClock(clock),
		)
		require.NoError(t, err)

		for range 32 {
			idA, err := a.New()
			require.NoError(t, err)
			idB, err := b.New()
			require.NoError(t, err)
			assert.Equal(t, idA, idB)
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		t.Parallel()

		a, err := microshard.NewGenerator(7, microshard.WithSource(entropy.NewSeeded(1)))
		require.NoError(t, err)
		b, err := microshard.NewGenerator(7, microshard.WithSource(entropy.NewSeeded(2)))
		require.NoError(t, err)

		idA, err := a.FromMicros(1_000_000)
		require.NoError(t, err)
		idB, err := b.FromMicros(1_000_000)
		require.NoError(t, err)
		assert.NotEqual(t, idA.RandomBits(), idB.RandomBits())
	})
}

func TestGeneratorConstructors(t *testing.T) {
	t.Parallel()

	gen, err := microshard.NewGenerator(55, microshard.WithSource(entropy.NewSeeded(9)))
	require.NoError(t, err)

	t.Run("FromMicros", func(t *testing.T) {
		id, err := gen.FromMicros(1_672_574_400_000_000)
		require.NoError(t, err)
		assert.Equal(t, uint32(55), id.ShardID())
		assert.Equal(t, uint64(1_672_574_400_000_000), id.TimestampMicros())

		_, err = gen.FromMicros(microshard.MaxTimestamp + 1)
		assert.ErrorIs(t, err, microshard.ErrTimeOverflow)
	})

	t.Run("FromTime", func(t *testing.T) {
		id, err := gen.FromTime(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, uint64(1_672_574_400_000_000), id.TimestampMicros())

		_, err = gen.FromTime(time.Unix(-1, 0))
		assert.ErrorIs(t, err, microshard.ErrTimeBeforeEpoch)
	})

	t.Run("FromISO", func(t *testing.T) {
		id, err := gen.FromISO("2023-01-01T12:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, uint64(1_672_574_400_000_000), id.TimestampMicros())

		_, err = gen.FromISO("2023-02-29T00:00:00Z")
		assert.ErrorIs(t, err, microshard.ErrInvalidISO)
	})
}

func TestConcurrentGeneration(t *testing.T) {
	t.Parallel()

	const goroutines = 20
	const perGoroutine = 200

	gen, err := microshard.NewGenerator(99)
	require.NoError(t, err)

	ids := make(chan microshard.UUID, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for range goroutines {
		wg.Go(func() {
			for range perGoroutine {
				id, err := gen.New()
				if err != nil {
					t.Error(err)
					return
				}
				ids <- id
			}
		})
	}
	wg.Wait()
	close(ids)

	seen := make(map[microshard.UUID]struct{}, goroutines*perGoroutine)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate identifier %s", id)
		seen[id] = struct{}{}
		assert.Equal(t, uint32(99), id.ShardID())
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}

func TestPackageLevelConcurrentGeneration(t *testing.T) {
	t.Parallel()

	const goroutines = 10
	const perGoroutine = 100

	ids := make(chan microshard.UUID, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for i := range goroutines {
		shard := uint32(i)
		wg.Go(func() {
			for range perGoroutine {
				id, err := microshard.Generate(shard)
				if err != nil {
					t.Error(err)
					return
				}
				ids <- id
			}
		})
	}
	wg.Wait()
	close(ids)

	seen := make(map[microshard.UUID]struct{}, goroutines*perGoroutine)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate identifier %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}
