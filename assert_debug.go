//go:build fixedcap_debug

package fixedcap

// debugAssert halts the process when an internal invariant does not hold.
// Active only under the fixedcap_debug build tag.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic("fixedcap: assertion failed: " + msg)
	}
}
