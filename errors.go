package microshard

import "errors"

// Construction and parsing failures. Every fallible operation in this
// package returns one of these sentinels, usually wrapped with the offending
// value; match them with errors.Is.
var (
	// ErrInvalidShardID reports a shard id outside the 32-bit shard field.
	// Unreachable through the uint32 API surface; kept for symmetry with
	// ports whose shard domain is narrower than their integer types.
	ErrInvalidShardID = errors.New("microshard: shard id out of range")

	// ErrTimeOverflow reports a timestamp beyond the 54-bit microsecond
	// field, which runs out late in the year 2540.
	ErrTimeOverflow = errors.New("microshard: timestamp exceeds 54-bit microsecond range")

	// ErrTimeBeforeEpoch reports a wall clock or caller-supplied time
	// earlier than 1970-01-01T00:00:00Z.
	ErrTimeBeforeEpoch = errors.New("microshard: time predates the Unix epoch")

	// ErrInvalidISO reports a textual timestamp that failed structural,
	// range, or calendar-validity checks. It wraps the civil package error
	// carrying the specific reason.
	ErrInvalidISO = errors.New("microshard: invalid ISO-8601 timestamp")

	// ErrInvalidLength reports a byte slice or string whose length cannot
	// hold a 128-bit identifier.
	ErrInvalidLength = errors.New("microshard: invalid identifier length")

	// ErrInvalidHex reports non-hexadecimal characters in a textual
	// identifier.
	ErrInvalidHex = errors.New("microshard: invalid hex in identifier")

	// ErrInvalidVersion reports an imported value whose version bits are
	// not 8. The wrapped message carries the observed version.
	ErrInvalidVersion = errors.New("microshard: version bits are not 8")

	// ErrInvalidVariant reports an imported value whose variant bits are
	// not 2. The wrapped message carries the observed variant.
	ErrInvalidVariant = errors.New("microshard: variant bits are not 2")
)
