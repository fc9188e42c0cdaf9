package microshard

import "fmt"

// validateShard checks shard against the 32-bit shard field. Every uint32
// fits, so this never fails through the public API; it exists so that the
// range rule lives in one place should the shard domain ever narrow.
func validateShard(shard uint32) error {
	if uint64(shard) > MaxShardID {
		return fmt.Errorf("%w: %d", ErrInvalidShardID, shard)
	}
	return nil
}

// validateMicros checks a microsecond timestamp against the 54-bit time
// field.
func validateMicros(micros uint64) error {
	if micros > MaxTimestamp {
		return fmt.Errorf("%w: %d", ErrTimeOverflow, micros)
	}
	return nil
}

// validateMarkers checks the fixed version and variant bits of an imported
// value. Both errors carry the observed value.
func validateMarkers(id UUID) error {
	if v := id.Version(); v != Version {
		return fmt.Errorf("%w (got %d)", ErrInvalidVersion, v)
	}
	if v := id.Variant(); v != Variant {
		return fmt.Errorf("%w (got %d)", ErrInvalidVariant, v)
	}
	return nil
}
