package microshard

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/dilipvamsi/microshard-uuid/pkg/civil"
)

// Field limits and marker values. The three payload fields share the 122
// bits left over after the fixed version and variant markers.
const (
	// MaxTimestamp is the largest microsecond timestamp the 54-bit time
	// field can hold, 2^54-1, which falls on 2540-11-07T23:35:09.481983Z.
	MaxTimestamp uint64 = 1<<54 - 1

	// MaxShardID is the largest shard id, 2^32-1. The shard field covers
	// the full uint32 range.
	MaxShardID uint64 = 1<<32 - 1

	// MaxRandom is the largest value of the 36-bit random field, 2^36-1.
	MaxRandom uint64 = 1<<36 - 1

	// Version is the fixed value of the four version bits. It sits outside
	// the RFC 4122 range 1..7, marking these identifiers as a custom
	// version while keeping the standard layout.
	Version uint8 = 8

	// Variant is the fixed value of the two variant bits, binary 10, the
	// RFC 4122 variant.
	Variant uint8 = 2
)

// Field masks for packing and unpacking.
const (
	mask48 = 1<<48 - 1 // time_high
	mask36 = 1<<36 - 1 // random
	mask26 = 1<<26 - 1 // shard_low
	mask6  = 1<<6 - 1  // time_low, shard_high
)

// UUID is a 128-bit identifier carrying a 54-bit microsecond timestamp, a
// 32-bit shard id, and 36 random bits, stored big-endian so that byte order,
// numeric order, and the lexicographic order of the canonical string all
// agree.
//
// Bit layout, most significant first:
//
//	high word: time_high(48) version(4) time_low(6) shard_high(6)
//	low word:  variant(2) shard_low(26) random(36)
//
// The zero value is Nil, which carries no marker bits and is rejected by
// every import path.
type UUID [16]byte

// Nil is the zero UUID, all 128 bits zero. It is not a valid identifier.
var Nil UUID

// pack assembles an identifier from its three payload fields, setting the
// fixed version and variant markers. Arguments must already be in range;
// random is masked to its 36 bits.
func pack(micros uint64, shard uint32, random uint64) UUID {
	s := uint64(shard)

	hi := (micros >> 6 & mask48) << 16
	hi |= uint64(Version) << 12
	hi |= (micros & mask6) << 6
	hi |= s >> 26 & mask6

	lo := uint64(Variant) << 62
	lo |= (s & mask26) << 36
	lo |= random & mask36

	var id UUID
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return id
}

func (id UUID) hi() uint64 { return binary.BigEndian.Uint64(id[:8]) }
func (id UUID) lo() uint64 { return binary.BigEndian.Uint64(id[8:]) }

// ShardID returns the 32-bit shard id embedded in the identifier.
func (id UUID) ShardID() uint32 {
	shardHigh := id.hi() & mask6
	shardLow := id.lo() >> 36 & mask26
	return uint32(shardHigh<<26 | shardLow)
}

// TimestampMicros returns the embedded creation time as microseconds since
// the Unix epoch.
func (id UUID) TimestampMicros() uint64 {
	timeHigh := id.hi() >> 16 & mask48
	timeLow := id.hi() >> 6 & mask6
	return timeHigh<<6 | timeLow
}

// Time returns the embedded creation time in UTC. Resolution is one
// microsecond.
func (id UUID) Time() time.Time {
	return time.UnixMicro(int64(id.TimestampMicros())).UTC()
}

// ISOTime renders the embedded creation time as an ISO-8601 UTC timestamp
// with microsecond precision, for example 2024-02-29T10:00:00.000000Z.
func (id UUID) ISOTime() string {
	// The 54-bit timestamp tops out in year 2540, safely inside the
	// four-digit year field.
	s, _ := civil.FormatMicros(id.TimestampMicros())
	return s
}

// RandomBits returns the 36-bit entropy field.
func (id UUID) RandomBits() uint64 {
	return id.lo() & mask36
}

// Version returns the four version bits. Valid identifiers always return 8.
func (id UUID) Version() uint8 {
	return uint8(id.hi() >> 12 & 0xF)
}

// Variant returns the two variant bits. Valid identifiers always return 2.
func (id UUID) Variant() uint8 {
	return uint8(id.lo() >> 62)
}

// Bytes returns the big-endian 16-byte representation. The slice is a copy;
// mutating it does not affect the identifier.
func (id UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, id[:])
	return b
}

// Uint128 returns the identifier as two 64-bit words, most significant
// first. (hi, lo) compares like the underlying 128-bit unsigned value:
// compare hi first, then lo.
func (id UUID) Uint128() (hi, lo uint64) {
	return id.hi(), id.lo()
}

// IsNil reports whether the identifier is the zero value.
func (id UUID) IsNil() bool {
	return id == Nil
}

// String renders the canonical 8-4-4-4-12 hyphenated lowercase hex form,
// for example 185d8edb-4e98-8500-8000-02a2d3fe2c5a. The rendering reads the
// big-endian bytes, so it is identical on every host architecture.
func (id UUID) String() string {
	var buf [36]byte
	hex.Encode(buf[:8], id[:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], id[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], id[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], id[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], id[10:])
	return string(buf[:])
}
