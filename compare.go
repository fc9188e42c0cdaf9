package microshard

import (
	"bytes"
	"slices"
)

// Compare orders two identifiers by their unsigned 128-bit magnitude and
// returns -1, 0, or 1. Because the timestamp occupies the most significant
// bits, this order is creation order; identifiers from the same microsecond
// order arbitrarily by shard and random bits. The canonical string form
// sorts identically.
func (id UUID) Compare(other UUID) int {
	return bytes.Compare(id[:], other[:])
}

// Before reports whether id was created before other, under the Compare
// contract.
func (id UUID) Before(other UUID) bool {
	return id.Compare(other) < 0
}

// After reports whether id was created after other, under the Compare
// contract.
func (id UUID) After(other UUID) bool {
	return id.Compare(other) > 0
}

// Sort sorts ids in place into ascending creation order.
func Sort(ids []UUID) {
	slices.SortFunc(ids, UUID.Compare)
}
