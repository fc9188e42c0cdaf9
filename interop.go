package microshard

import "github.com/google/uuid"

// FromUUID imports a github.com/google/uuid value, validating the microshard
// marker bits. Standard v1 through v7 UUIDs fail with ErrInvalidVersion;
// only values originally produced by this package carry version 8 with the
// RFC 4122 variant.
func FromUUID(u uuid.UUID) (UUID, error) {
	return FromBytes(u[:])
}

// AsUUID reexpresses the identifier as a github.com/google/uuid value for
// APIs built around that type. The canonical strings of both values are
// identical.
func (id UUID) AsUUID() uuid.UUID {
	return uuid.UUID(id)
}
