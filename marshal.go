package microshard

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler using the canonical
// hyphenated form. encoding/json uses this for UUID-typed struct fields.
func (id UUID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts everything
// Parse accepts and validates the marker bits.
func (id *UUID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the 16-byte
// big-endian representation.
func (id UUID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It accepts exactly
// 16 bytes and validates the marker bits.
func (id *UUID) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes(b)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer, rendering the canonical string form. That
// form is accepted by every SQL dialect's uuid or text column; the pgxuuid
// subpackage provides the native binary format for pgx users.
func (id UUID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner. It accepts the canonical or bare-hex textual
// forms as string or []byte, and the raw 16-byte representation as []byte.
// Scanning SQL NULL leaves the receiver untouched.
func (id *UUID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == 16 {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("microshard: cannot scan %T into UUID", src)
	}
}
