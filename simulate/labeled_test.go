// SPDX-License-Identifier: MIT

package simulate_test

import (
	"context"
	"testing"

	"github.com/QTB-HHU/modelbase/labelmodel"
	"github.com/QTB-HHU/modelbase/model"
	"github.com/QTB-HHU/modelbase/parameters"
	"github.com/QTB-HHU/modelbase/ratelaw"
	"github.com/QTB-HHU/modelbase/simulate"
	"github.com/QTB-HHU/modelbase/trajectory"
	"github.com/stretchr/testify/require"
)

// TestLabeledTriosePhosphates simulates GAP <=> DHAP with carbon order
// reversal, starting from GAP labeled at position 0.
func TestLabeledTriosePhosphates(t *testing.T) {
	lm := labelmodel.New(parameters.New(map[string]float64{"kf": 2, "kr": 1}, nil),
		labelmodel.WithModelOptions(model.WithLogger(quiet)))
	_, err := lm.AddBaseCompound("GAP", 3)
	require.NoError(t, err)
	_, err = lm.AddBaseCompound("DHAP", 3)
	require.NoError(t, err)
	rate := func(k string) model.RateFunc {
		return func(p *parameters.Set, x []float64) float64 { return ratelaw.MassAction(p.MustGet(k), x[0]) }
	}
	require.NoError(t, lm.AddCarbonMapReaction("TPIf", rate("kf"), []int{2, 1, 0}, []string{"GAP"}, []string{"DHAP"}))
	require.NoError(t, lm.AddCarbonMapReaction("TPIr", rate("kr"), []int{2, 1, 0}, []string{"DHAP"}, []string{"GAP"}))

	y0, err := lm.InitialConcentrations(map[string]float64{"GAP": 1}, map[string][]int{"GAP": {0}})
	require.NoError(t, err)

	s, err := simulate.New(lm, newEuler(), simulate.Config{MinStep: 1e-4, MaxStep: 1e-3, NSteps: 100}, simulate.WithLogger(quiet))
	require.NoError(t, err)
	_, err = s.TimeCourse(context.Background(), []float64{0, 1, 5}, y0)
	require.NoError(t, err)

	q := trajectory.NewLabelQuery(s.Results(), lm)
	gap, err := q.Total("GAP")
	require.NoError(t, err)
	dhap, err := q.Total("DHAP")
	require.NoError(t, err)
	for i := range gap {
		require.InDelta(t, 1.0, gap[i]+dhap[i], 1e-9)
	}
	// equilibrium DHAP/GAP = kf/kr
	require.InDelta(t, 2.0/3.0, dhap[2], 1e-3)

	// the label travels to DHAP position 2 only
	at2, err := q.LabelAtPos("DHAP", []int{2})
	require.NoError(t, err)
	require.InDelta(t, dhap[2], at2[2], 1e-9)
	at0, err := q.LabelAtPos("DHAP", []int{0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, at0)

	// one labeled atom per molecule, conserved
	lg, err := q.TotalLabel("GAP")
	require.NoError(t, err)
	ld, err := q.TotalLabel("DHAP")
	require.NoError(t, err)
	require.InDelta(t, 1.0, lg[2]+ld[2], 1e-9)

	// the aggregate name is available on the full vector
	full, err := s.Results().Full(lm)
	require.NoError(t, err)
	idx, err := lm.Resolve("DHAP")
	require.NoError(t, err)
	require.InDelta(t, dhap[2], full[2][idx[0]], 1e-12)
}
