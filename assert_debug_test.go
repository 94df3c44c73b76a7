//go:build fixedcap_debug

package fixedcap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugAssertActive(t *testing.T) {
	require.NotPanics(t, func() { debugAssert(true, "holds") })
	require.PanicsWithValue(t, "fixedcap: assertion failed: broken",
		func() { debugAssert(false, "broken") })
}
