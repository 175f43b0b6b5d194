//go:build !assertions_disabled

package assert_test

import (
	"testing"

	"github.com/amp-labs/amp-collections/assert"
	testify "github.com/stretchr/testify/assert"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	testify.True(t, assert.Enabled)

	testify.NotPanics(t, func() { assert.True(true) })
	testify.PanicsWithValue(t, "assertion failed", func() { assert.True(false) })
	testify.PanicsWithValue(t, "bad height 3", func() { assert.True(false, "bad height %d", 3) })
	testify.PanicsWithValue(t, "assertion failed: [42 x]", func() { assert.True(false, 42, "x") })
}

func TestFalse(t *testing.T) {
	t.Parallel()

	testify.NotPanics(t, func() { assert.False(false) })
	testify.PanicsWithValue(t, "unexpected", func() { assert.False(true, "unexpected") })
}
