package pokeapi

import (
	"context"
	"errors"

	dErrors "pokedex/pkg/domain-errors"
	"pokedex/pkg/platform/sentinel"
)

// DomainError maps an upstream failure onto a domain error describing what
// was being fetched.
func DomainError(err error, what string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, what+" not found")
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, what+": upstream timed out")
	default:
		return dErrors.Wrap(err, dErrors.CodeUnavailable, what+": upstream unavailable")
	}
}
