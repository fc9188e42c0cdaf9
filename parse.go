package microshard

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// FromBytes imports a 16-byte big-endian representation, validating the
// version and variant marker bits.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != 16 {
		return Nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(b))
	}

	var id UUID
	copy(id[:], b)
	if err := validateMarkers(id); err != nil {
		return Nil, err
	}
	return id, nil
}

// FromUint128 imports an identifier from its two 64-bit words, most
// significant first, validating the version and variant marker bits.
func FromUint128(hi, lo uint64) (UUID, error) {
	var id UUID
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	if err := validateMarkers(id); err != nil {
		return Nil, err
	}
	return id, nil
}

// Parse imports a textual identifier: the canonical hyphenated form or bare
// 32-digit hex, upper or lower case. Hyphens are ignored wherever they
// appear, so grouping variants parse too. The marker bits are validated the
// same way FromBytes validates them.
func Parse(s string) (UUID, error) {
	plain := strings.ReplaceAll(s, "-", "")
	if len(plain) != 32 {
		return Nil, fmt.Errorf("%w: %d hex digits", ErrInvalidLength, len(plain))
	}

	var id UUID
	if _, err := hex.Decode(id[:], []byte(plain)); err != nil {
		return Nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	if err := validateMarkers(id); err != nil {
		return Nil, err
	}
	return id, nil
}

// MustParse is Parse for compile-time constant input such as fixtures and
// tests. It panics on any error.
func MustParse(s string) UUID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("microshard: MustParse(%q): %v", s, err))
	}
	return id
}
