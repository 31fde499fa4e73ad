package cvrp

import (
	"fmt"

	"github.com/RamiMohamed12/projectVRP/cvrperr"
)

// assertionErrorf builds an InternalAssertion error. These indicate a bug
// in the solver itself, never a problem with caller-supplied data — by the
// time Verify or a debug check runs, Instance and Config have already been
// validated.
func assertionErrorf(format string, args ...any) error {
	return cvrperr.New(cvrperr.InternalAssertion, fmt.Sprintf(format, args...))
}
