// SPDX-License-Identifier: MIT

package namespace_test

import (
	"testing"

	"github.com/QTB-HHU/modelbase/namespace"
	"github.com/stretchr/testify/require"
)

// TestRegisterAssignsRegistrationOrder checks index == registration order.
func TestRegisterAssignsRegistrationOrder(t *testing.T) {
	r := namespace.New()
	for i, name := range []string{"X", "Y", "Z"} {
		id, err := r.Register(name)
		require.NoError(t, err)
		require.Equal(t, i, id)
	}
	require.Equal(t, []string{"X", "Y", "Z"}, r.Names())
	require.Equal(t, 3, r.Len())
}

// TestRegisterDuplicate ensures a repeated name is rejected and state is untouched.
func TestRegisterDuplicate(t *testing.T) {
	r := namespace.New()
	_, err := r.Register("X")
	require.NoError(t, err)

	_, err = r.Register("X")
	require.ErrorIs(t, err, namespace.ErrDuplicateName)
	require.Equal(t, 1, r.Len()) // nothing appended
}

func TestRegisterEmpty(t *testing.T) {
	_, err := namespace.New().Register("")
	require.ErrorIs(t, err, namespace.ErrEmptyName)
}

// TestExtendAtomic verifies that a colliding batch commits nothing.
func TestExtendAtomic(t *testing.T) {
	r := namespace.New()
	_, err := r.Register("A")
	require.NoError(t, err)

	_, err = r.Extend([]string{"B", "C", "A"}) // collides with the registry
	require.ErrorIs(t, err, namespace.ErrDuplicateName)
	require.Equal(t, []string{"A"}, r.Names())

	_, err = r.Extend([]string{"B", "C", "B"}) // collides inside the batch
	require.ErrorIs(t, err, namespace.ErrDuplicateName)
	require.Equal(t, []string{"A"}, r.Names())

	ids, err := r.Extend([]string{"B", "C"})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, ids)
}

func TestExtendEmptyBatch(t *testing.T) {
	r := namespace.New()
	ids, err := r.Extend(nil)
	require.NoError(t, err)
	require.Empty(t, ids)
	require.Zero(t, r.Len())
}

// TestResolve covers ordered resolution and the unknown-name path.
func TestResolve(t *testing.T) {
	r := namespace.New()
	_, err := r.Extend([]string{"X", "Y", "Z"})
	require.NoError(t, err)

	ids, err := r.Resolve("Z", "X", "Z")
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 2}, ids)

	_, err = r.Resolve("X", "Q")
	require.ErrorIs(t, err, namespace.ErrUnknownName)
	require.ErrorContains(t, err, `"Q"`)

	ids, err = r.Resolve()
	require.NoError(t, err)
	require.Empty(t, ids)
}

// TestResolveMatching checks regular-expression lookup in registration order.
func TestResolveMatching(t *testing.T) {
	r := namespace.New()
	_, err := r.Extend([]string{"FBP000001", "GAP100", "FBP001000", "FBP", "FBP001001"})
	require.NoError(t, err)

	ids, err := r.ResolveMatching(`\AFBP..1...\z`)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, ids)

	ids, err = r.ResolveMatching(`\AXYZ`)
	require.NoError(t, err)
	require.Empty(t, ids)

	_, err = r.ResolveMatching(`(`)
	require.ErrorIs(t, err, namespace.ErrBadPattern)
}

func TestNameAndIndex(t *testing.T) {
	r := namespace.New()
	_, err := r.Extend([]string{"X", "Y"})
	require.NoError(t, err)

	name, err := r.Name(1)
	require.NoError(t, err)
	require.Equal(t, "Y", name)

	_, err = r.Name(2)
	require.ErrorIs(t, err, namespace.ErrOutOfRange)

	id, ok := r.Index("X")
	require.True(t, ok)
	require.Equal(t, 0, id)
	require.False(t, r.Has("Q"))
}

// TestCloneIndependence ensures growing a clone leaves the original alone.
func TestCloneIndependence(t *testing.T) {
	r := namespace.New()
	_, err := r.Register("X")
	require.NoError(t, err)

	c := r.Clone()
	_, err = c.Register("Y")
	require.NoError(t, err)

	require.Equal(t, 1, r.Len())
	require.Equal(t, 2, c.Len())
	require.False(t, r.Has("Y"))
}
