package cvrperr_test

import (
	"errors"
	"testing"

	"github.com/RamiMohamed12/projectVRP/cvrperr"
)

var errSentinel = errors.New("boom")

func TestWrap_UnwrapsToSentinel(t *testing.T) {
	e := cvrperr.Wrap(cvrperr.InvalidConfig, "alpha", errSentinel)
	if !errors.Is(e, errSentinel) {
		t.Fatalf("errors.Is() did not find wrapped sentinel")
	}
}

func TestIs_DistinguishesKinds(t *testing.T) {
	e := cvrperr.New(cvrperr.InvalidInstance, "demand exceeds capacity")
	if !cvrperr.Is(e, cvrperr.InvalidInstance) {
		t.Fatalf("Is(InvalidInstance) = false, want true")
	}
	if cvrperr.Is(e, cvrperr.InvalidConfig) {
		t.Fatalf("Is(InvalidConfig) = true, want false")
	}
}

func TestError_IncludesField(t *testing.T) {
	e := cvrperr.Wrap(cvrperr.InvalidConfig, "alpha", errSentinel)
	if got := e.Error(); got == "" {
		t.Fatalf("Error() returned empty string")
	}
}
