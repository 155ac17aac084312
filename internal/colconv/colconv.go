// seehuhn.de/go/colorspace - convert colors between color models
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package colconv contains the scalar functions used by the color
// conversions: the CIE L*a*b* compression function and the RGB transfer
// curves.
package colconv

import "math"

const (
	// Delta is the CIE constant δ = 6/29.
	Delta = 6.0 / 29.0

	// Epsilon is the CIE breakpoint ε = δ³ ≈ 0.008856.
	Epsilon = Delta * Delta * Delta

	// Kappa = (29/3)³ is the slope of the L* curve near black.
	Kappa = 24389.0 / 27.0
)

// LabF is the compression function f of the CIE L*a*b* transform.  The
// argument is a tristimulus value divided by the corresponding white point
// value.
func LabF(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return t/(3*Delta*Delta) + 4.0/29.0
}

// LabFInv is the inverse of [LabF].  The breakpoint is taken on the input
// value, t > δ.
func LabFInv(t float64) float64 {
	if t > Delta {
		return t * t * t
	}
	return 3 * Delta * Delta * (t - 4.0/29.0)
}

// SRGBToLinear applies the inverse sRGB transfer function (IEC 61966-2-1)
// to an encoded value in [0,1].
func SRGBToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB transfer function to a linear value in [0,1].
func LinearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// GammaToLinear removes a simple power-law encoding.
func GammaToLinear(v, gamma float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Pow(v, gamma)
}

// LinearToGamma applies a simple power-law encoding.
func LinearToGamma(v, gamma float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Pow(v, 1/gamma)
}

// LStarToLinear removes the L* encoding used by ECI RGB v2.
func LStarToLinear(v float64) float64 {
	if v <= 0.08 {
		return 100 * v / Kappa
	}
	t := (v + 0.16) / 1.16
	return t * t * t
}

// LinearToLStar applies the L* encoding used by ECI RGB v2.
func LinearToLStar(v float64) float64 {
	if v <= Epsilon {
		return v * Kappa / 100
	}
	return 1.16*math.Cbrt(v) - 0.16
}
