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

package colorspace

import (
	"strconv"

	"seehuhn.de/go/colorspace/internal/colconv"
)

// Companding is the transfer function of an RGB working space.  It maps
// between the (possibly gamma encoded) channel values of an [RGB] color and
// linear light, which is what the working space matrices operate on.
//
// Both methods map [0,1] onto [0,1].
type Companding interface {
	// Linearize converts an encoded channel value to linear light.
	Linearize(v float64) float64

	// Compand converts a linear channel value to its encoded form.
	Compand(v float64) float64

	String() string
}

// The following types implement the Companding interface.
var (
	_ Companding = LinearCompanding{}
	_ Companding = SRGBCompanding{}
	_ Companding = GammaCompanding{}
	_ Companding = LStarCompanding{}
)

// LinearCompanding is used for working spaces where RGB values are already
// linear.
type LinearCompanding struct{}

// Linearize implements the [Companding] interface.
func (LinearCompanding) Linearize(v float64) float64 { return v }

// Compand implements the [Companding] interface.
func (LinearCompanding) Compand(v float64) float64 { return v }

func (LinearCompanding) String() string { return "linear" }

// SRGBCompanding is the piecewise transfer function of IEC 61966-2-1.
type SRGBCompanding struct{}

// Linearize implements the [Companding] interface.
func (SRGBCompanding) Linearize(v float64) float64 { return colconv.SRGBToLinear(v) }

// Compand implements the [Companding] interface.
func (SRGBCompanding) Compand(v float64) float64 { return colconv.LinearToSRGB(v) }

func (SRGBCompanding) String() string { return "sRGB" }

// GammaCompanding is a simple power law, linear = encoded^Gamma.
type GammaCompanding struct {
	Gamma float64
}

// Linearize implements the [Companding] interface.
func (c GammaCompanding) Linearize(v float64) float64 { return colconv.GammaToLinear(v, c.Gamma) }

// Compand implements the [Companding] interface.
func (c GammaCompanding) Compand(v float64) float64 { return colconv.LinearToGamma(v, c.Gamma) }

func (c GammaCompanding) String() string {
	return "gamma " + strconv.FormatFloat(c.Gamma, 'g', -1, 64)
}

// LStarCompanding is the CIE L* transfer function, as used by ECI RGB v2.
type LStarCompanding struct{}

// Linearize implements the [Companding] interface.
func (LStarCompanding) Linearize(v float64) float64 { return colconv.LStarToLinear(v) }

// Compand implements the [Companding] interface.
func (LStarCompanding) Compand(v float64) float64 { return colconv.LinearToLStar(v) }

func (LStarCompanding) String() string { return "L*" }
