// SPDX-License-Identifier: MIT

package simulate_test

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/QTB-HHU/modelbase/algebraic"
	"github.com/QTB-HHU/modelbase/model"
	"github.com/QTB-HHU/modelbase/parameters"
	"github.com/QTB-HHU/modelbase/ratelaw"
	"github.com/QTB-HHU/modelbase/simulate"
)

// cascadeParams holds the kinase cascade parameters.
const cascadeParams = `
defaults:
  tot: 1
parameters:
  l: 0.5
  k1: 1
  k2: 1
  p: 0.5
`

// ExampleSimulator_TimeCourse simulates a two-stage kinase cascade
// driven by a decaying stimulus exp(-l·t). The inactive forms Xi and Yi
// come from conservation modules X + Xi = tot and Y + Yi = tot.
func ExampleSimulator_TimeCourse() {
	pars, err := parameters.LoadYAML(strings.NewReader(cascadeParams))
	if err != nil {
		fmt.Println(err)
		return
	}
	m := model.New(pars, model.WithLogger(quiet))
	_, _ = m.AddCompounds("X", "Y")
	for _, c := range []string{"X", "Y"} {
		cons, _ := algebraic.New(algebraic.Conservation("tot"), pars)
		_ = m.AddAlgebraicModule("cons"+c, cons, []string{c}, []string{c + "i"})
	}
	_ = m.AddReactionContext("stimulus", func(_ *parameters.Set, x []float64, ctx model.Context) float64 {
		return x[0] * math.Exp(-pars.MustGet("l")*ctx[model.TimeKey])
	}, map[string]float64{"X": 1}, "Xi")
	_ = m.AddReaction("kinase", func(p *parameters.Set, x []float64) float64 {
		return ratelaw.MassAction(p.MustGet("k1"), x...)
	}, map[string]float64{"Y": 1}, "X", "Yi")
	for _, c := range []string{"X", "Y"} {
		_ = m.AddReaction("phosphatase"+c, func(p *parameters.Set, x []float64) float64 {
			return ratelaw.MassAction(p.MustGet("p"), x[0])
		}, map[string]float64{c: -1}, c)
	}

	s, _ := simulate.New(m, newEuler(), simulate.Config{MinStep: 1e-5, MaxStep: 1e-3, NSteps: 100}, simulate.WithLogger(quiet))
	res, err := s.TimeCourse(context.Background(), []float64{0, 20}, []float64{0, 0})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(res.Y), s.Successful(), s.Results().Len())
	fmt.Printf("X(20) < 0.01: %v\n", res.Y[1][0] < 0.01)
	// Output:
	// 2 true 1
	// X(20) < 0.01: true
}
