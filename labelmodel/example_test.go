// SPDX-License-Identifier: MIT

package labelmodel_test

import (
	"fmt"

	"github.com/QTB-HHU/modelbase/labelmodel"
	"github.com/QTB-HHU/modelbase/parameters"
)

// ExampleLabelModel_AddCarbonMapReaction expands triose phosphate
// isomerase, which reverses the carbon order of GAP.
func ExampleLabelModel_AddCarbonMapReaction() {
	lm := labelmodel.New(parameters.New(map[string]float64{"k": 1}, nil))
	_, _ = lm.AddBaseCompound("GAP", 3)
	_, _ = lm.AddBaseCompound("DHAP", 3)
	_ = lm.AddCarbonMapReaction("TPI", func(p *parameters.Set, x []float64) float64 {
		return p.MustGet("k") * x[0]
	}, []int{2, 1, 0}, []string{"GAP"}, []string{"DHAP"})

	r, _ := lm.Reaction("TPI110")
	fmt.Println(lm.NumReactions(), r.Args, r.Stoichiometry)
	// Output:
	// 8 [GAP110] map[DHAP011:1 GAP110:-1]
}

// ExampleLabelModel_AddBaseCompound lists the isotopologues of a
// two-carbon compound.
func ExampleLabelModel_AddBaseCompound() {
	lm := labelmodel.New(nil)
	names, _ := lm.AddBaseCompound("A", 2)
	fmt.Println(names)
	fmt.Println(lm.AllCompoundNames())
	// Output:
	// [A00 A01 A10 A11]
	// [A00 A01 A10 A11 A]
}
