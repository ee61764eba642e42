package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used as the run identifier of one analysis pass.
var NewULID = func() string {
	return ulid.Make().String()
}
