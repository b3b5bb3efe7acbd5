// SPDX-License-Identifier: MIT

package model_test

import (
	"fmt"
	"testing"

	"github.com/QTB-HHU/modelbase/model"
	"github.com/QTB-HHU/modelbase/parameters"
)

// chain builds a linear chain of n compounds with n-1 mass-action steps.
func chain(b *testing.B, n int) *model.Model {
	b.Helper()
	m := model.New(parameters.New(map[string]float64{"k": 1}, nil))
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("S%d", i)
	}
	if _, err := m.AddCompounds(names...); err != nil {
		b.Fatal(err)
	}
	for i := 0; i+1 < n; i++ {
		err := m.AddReaction(fmt.Sprintf("v%d", i), func(p *parameters.Set, x []float64) float64 {
			return p.MustGet("k") * x[0]
		}, map[string]float64{names[i]: -1, names[i+1]: 1}, names[i])
		if err != nil {
			b.Fatal(err)
		}
	}
	return m
}

func BenchmarkDerivativeChain100(b *testing.B) {
	m := chain(b, 100)
	y := make([]float64, m.NumCompounds())
	for i := range y {
		y[i] = 1
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.RHS(0, y); err != nil {
			b.Fatal(err)
		}
	}
}
