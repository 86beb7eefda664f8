package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The upstream client and stores
// return these (optionally wrapped) so services can translate them into
// domain errors:
//   - ErrNotFound: the upstream resource does not exist
//   - ErrUnavailable: the upstream or a store is temporarily unavailable
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
