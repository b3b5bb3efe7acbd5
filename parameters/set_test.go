// SPDX-License-Identifier: MIT

package parameters_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/QTB-HHU/modelbase/parameters"
	"github.com/stretchr/testify/require"
)

// TestNewDefaults checks that explicit values win over defaults.
func TestNewDefaults(t *testing.T) {
	s := parameters.New(map[string]float64{"k1": 2}, map[string]float64{"k1": 1, "k2": 3})

	k1, err := s.Get("k1")
	require.NoError(t, err)
	require.Equal(t, 2.0, k1)
	require.Equal(t, 3.0, s.MustGet("k2"))
	require.Equal(t, []string{"k1", "k2"}, s.Names())
	require.Equal(t, 2, s.Len())
}

func TestGetUnknown(t *testing.T) {
	s := parameters.New(nil, nil)
	_, err := s.Get("k")
	require.ErrorIs(t, err, parameters.ErrUnknownParameter)
	require.Panics(t, func() { s.MustGet("k") })
	require.False(t, s.Has("k"))
}

// TestUpdateReportsOverwrites verifies returned keys and the logged warning.
func TestUpdateReportsOverwrites(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := parameters.New(map[string]float64{"a": 1, "b": 2}, nil).WithLogger(logger)

	replaced := s.Update(map[string]float64{"b": 5, "c": 7, "a": 0})
	require.Equal(t, []string{"a", "b"}, replaced)
	require.Equal(t, 5.0, s.MustGet("b"))
	require.Equal(t, 7.0, s.MustGet("c"))
	require.Contains(t, buf.String(), "overwriting parameters")

	buf.Reset()
	require.Empty(t, s.Update(map[string]float64{"d": 1}))
	require.Empty(t, buf.String()) // no warning without overwrites
}

func TestMergeAndClone(t *testing.T) {
	s := parameters.New(map[string]float64{"a": 1}, nil)
	c := s.Clone()
	c.Update(map[string]float64{"a": 9})
	require.Equal(t, 1.0, s.MustGet("a"))

	require.Equal(t, []string{"a"}, s.Merge(c))
	require.Equal(t, 9.0, s.MustGet("a"))
	require.Nil(t, s.Merge(nil))
}

// TestLoadYAML covers both the sectioned and the flat layout.
func TestLoadYAML(t *testing.T) {
	sectioned := `
defaults:
  k1: 0.5
  K: 5
parameters:
  v0: 1
  K: 7
`
	s, err := parameters.LoadYAML(strings.NewReader(sectioned))
	require.NoError(t, err)
	require.Equal(t, 0.5, s.MustGet("k1"))
	require.Equal(t, 1.0, s.MustGet("v0"))
	require.Equal(t, 7.0, s.MustGet("K"))

	flat := "kf_TPI: 1.0\nKeq_TPI: 21\n"
	s, err = parameters.LoadYAML(strings.NewReader(flat))
	require.NoError(t, err)
	require.Equal(t, []string{"Keq_TPI", "kf_TPI"}, s.Names())
}

func TestLoadYAMLRejectsNonFinite(t *testing.T) {
	_, err := parameters.LoadYAML(strings.NewReader("k: .nan\n"))
	require.ErrorIs(t, err, parameters.ErrInvalidValue)

	_, err = parameters.LoadYAML(strings.NewReader("defaults:\n  k: .inf\n"))
	require.ErrorIs(t, err, parameters.ErrInvalidValue)
}

func TestLoadYAMLMalformed(t *testing.T) {
	_, err := parameters.LoadYAML(strings.NewReader("k: [1, 2\n"))
	require.Error(t, err)

	_, err = parameters.LoadYAML(strings.NewReader("k: not-a-number\n"))
	require.Error(t, err)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: 2\n"), 0o600))

	s, err := parameters.LoadYAMLFile(path)
	require.NoError(t, err)
	require.Equal(t, 2.0, s.MustGet("k"))

	_, err = parameters.LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
