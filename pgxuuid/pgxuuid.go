// Package pgxuuid integrates microshard identifiers with the
// github.com/jackc/pgx/v5 driver, encoding them as the native postgres uuid
// type instead of text.
//
// Register the package once per connection, then use UUID values directly
// as query arguments and scan targets:
//
//	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
//	    pgxuuid.Register(conn.TypeMap())
//	    return nil
//	}
//
//	var id pgxuuid.UUID
//	err := conn.QueryRow(ctx, `SELECT id FROM events WHERE ...`).Scan(&id)
//	shard := microshard.UUID(id).ShardID()
//
// Without registration, microshard.UUID values still work as query arguments
// through their database/sql Valuer, which sends the canonical text form;
// this package exists for the binary wire format and for scanning uuid
// columns back without a text round trip.
package pgxuuid

import (
	"errors"

	"github.com/jackc/pgx/v5/pgtype"

	microshard "github.com/dilipvamsi/microshard-uuid"
)

// UUID wraps microshard.UUID for pgx. Conversions in both directions are
// plain type conversions; the wrapper only adds the pgtype plumbing.
type UUID microshard.UUID

var (
	_ pgtype.UUIDScanner = (*UUID)(nil)
	_ pgtype.UUIDValuer  = UUID{}
)

// ScanUUID implements pgtype.UUIDScanner. The marker bits are validated, so
// scanning a column that holds foreign UUIDs fails instead of producing a
// value that misdecodes.
func (u *UUID) ScanUUID(v pgtype.UUID) error {
	if !v.Valid {
		return errors.New("pgxuuid: cannot scan NULL into *UUID")
	}

	id, err := microshard.FromBytes(v.Bytes[:])
	if err != nil {
		return err
	}
	*u = UUID(id)
	return nil
}

// UUIDValue implements pgtype.UUIDValuer.
func (u UUID) UUIDValue() (pgtype.UUID, error) {
	return pgtype.UUID{Bytes: [16]byte(u), Valid: true}, nil
}

// String renders the canonical hyphenated form.
func (u UUID) String() string {
	return microshard.UUID(u).String()
}

// NullUUID maps a nullable uuid column. Valid is false when the column was
// NULL, mirroring database/sql's Null types.
type NullUUID struct {
	UUID  microshard.UUID
	Valid bool
}

var (
	_ pgtype.UUIDScanner = (*NullUUID)(nil)
	_ pgtype.UUIDValuer  = NullUUID{}
)

// ScanUUID implements pgtype.UUIDScanner.
func (u *NullUUID) ScanUUID(v pgtype.UUID) error {
	if !v.Valid {
		*u = NullUUID{}
		return nil
	}

	id, err := microshard.FromBytes(v.Bytes[:])
	if err != nil {
		return err
	}
	*u = NullUUID{UUID: id, Valid: true}
	return nil
}

// UUIDValue implements pgtype.UUIDValuer, sending NULL when Valid is false.
func (u NullUUID) UUIDValue() (pgtype.UUID, error) {
	if !u.Valid {
		return pgtype.UUID{}, nil
	}
	return pgtype.UUID{Bytes: [16]byte(u.UUID), Valid: true}, nil
}

// Register adds codec support for UUID and NullUUID to m so pgx encodes and
// decodes both as postgres uuid.
func Register(m *pgtype.Map) {
	m.RegisterDefaultPgType(UUID{}, "uuid")
	m.RegisterDefaultPgType((*UUID)(nil), "uuid")
	m.RegisterDefaultPgType(NullUUID{}, "uuid")
	m.RegisterDefaultPgType((*NullUUID)(nil), "uuid")
}
