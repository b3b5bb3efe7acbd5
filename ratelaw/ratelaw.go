// SPDX-License-Identifier: MIT

// Package ratelaw provides common kinetic rate expressions for use inside
// model rate functions.
package ratelaw

// MassAction returns k·Πxs.
func MassAction(k float64, xs ...float64) float64 {
	v := k
	for _, x := range xs {
		v *= x
	}

	return v
}

// MichaelisMenten returns vmax·x/(km+x), the irreversible one-substrate
// Michaelis-Menten rate.
func MichaelisMenten(vmax, km, x float64) float64 {
	return vmax * x / (km + x)
}

// ReversibleMassAction returns kf·(Πsubs - Πprods/keq).
func ReversibleMassAction(kf, keq float64, subs, prods []float64) float64 {
	return kf * (MassAction(1, subs...) - MassAction(1, prods...)/keq)
}

// CompetitiveInhibition returns vmax·x/(km·(1+i/ki)+x).
func CompetitiveInhibition(vmax, km, ki, x, i float64) float64 {
	return vmax * x / (km*(1+i/ki) + x)
}
