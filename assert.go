//go:build !fixedcap_debug

package fixedcap

// debugAssert is compiled out unless the fixedcap_debug build tag is set. It
// guards internal invariants during development; contract checks at the
// public boundary are always on.
func debugAssert(bool, string) {}
