package snapshot

import (
	"fmt"
	"time"
)

// SealError means a collection run was attempted at or after the seal date.
// The collection window is closed; only analysis of already-collected
// snapshots is appropriate. This is a pure time gate, not a cryptographic
// seal.
type SealError struct {
	SealDate time.Time
}

func (e *SealError) Error() string {
	return fmt.Sprintf("collection period ended on %s: data is sealed", e.SealDate.Format(time.RFC3339))
}
