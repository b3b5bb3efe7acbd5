// SPDX-License-Identifier: MIT

package algebraic_test

import (
	"errors"
	"testing"

	"github.com/QTB-HHU/modelbase/algebraic"
	"github.com/QTB-HHU/modelbase/parameters"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNilFunc(t *testing.T) {
	_, err := algebraic.New(nil, nil)
	require.ErrorIs(t, err, algebraic.ErrNilFunc)
}

// TestConcentrationsSingle evaluates a rapid-equilibrium split.
func TestConcentrationsSingle(t *testing.T) {
	m, err := algebraic.New(algebraic.RapidEquilibrium("K"), parameters.New(map[string]float64{"K": 5}, nil))
	require.NoError(t, err)

	xy, err := m.Concentrations([]float64{6})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 5}, xy, 1e-12)
	require.Equal(t, 5.0, m.Params().MustGet("K"))
}

// TestBatchRowWise checks that Batch equals per-row Concentrations.
func TestBatchRowWise(t *testing.T) {
	m, err := algebraic.New(algebraic.Sum, nil)
	require.NoError(t, err)

	out, err := m.Batch([][]float64{{1, 2, 3}, {0, 0, 0}, {0.5, 0.5, 1}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6}, {0}, {2}}, out)

	out, err = m.Batch(nil)
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = m.Batch([][]float64{{1, 2}, {1}})
	require.ErrorIs(t, err, algebraic.ErrRaggedBatch)
}

func TestBatchPropagatesModuleError(t *testing.T) {
	boom := errors.New("boom")
	m, err := algebraic.New(func(_ *parameters.Set, x []float64) ([]float64, error) {
		if x[0] < 0 {
			return nil, boom
		}
		return x, nil
	}, nil)
	require.NoError(t, err)

	_, err = m.Batch([][]float64{{1}, {-1}})
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "row 1")
}

func TestConservation(t *testing.T) {
	m, err := algebraic.New(algebraic.Conservation("tot"), parameters.New(map[string]float64{"tot": 1}, nil))
	require.NoError(t, err)
	xi, err := m.Concentrations([]float64{0.25})
	require.NoError(t, err)
	require.Equal(t, []float64{0.75}, xi)

	missing, err := algebraic.New(algebraic.Conservation("tot"), nil)
	require.NoError(t, err)
	_, err = missing.Concentrations([]float64{0.25})
	require.ErrorIs(t, err, parameters.ErrUnknownParameter)
}
