package publicid

import "math/rand"

// Public identifiers are 19-digit numeric surrogate keys exposed on the API,
// distinct from the database primary keys. They are never zero.
const (
	Length = 19

	min  = int64(1_000_000_000_000_000_000)
	span = int64(8_000_000_000_000_000_000)
)

func New() int64 {
	return min + rand.Int63n(span)
}
