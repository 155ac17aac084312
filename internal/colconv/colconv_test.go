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

package colconv

import (
	"math"
	"testing"
)

func TestLabFRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.001, Epsilon / 2, Epsilon, 0.01, 0.2126, 0.5, 1, 1.2} {
		y := LabFInv(LabF(x))
		if math.Abs(x-y) > 1e-12 {
			t.Errorf("LabFInv(LabF(%g)) = %g", x, y)
		}
	}
}

func TestLabFContinuous(t *testing.T) {
	below := LabF(Epsilon)
	above := LabF(Epsilon * (1 + 1e-12))
	if math.Abs(below-above) > 1e-9 {
		t.Errorf("LabF jumps at ε: %g vs %g", below, above)
	}
	if math.Abs(below-Delta) > 1e-12 {
		t.Errorf("LabF(ε) = %g, want δ = %g", below, Delta)
	}
}

func TestTransferRoundTrip(t *testing.T) {
	type pair struct {
		name     string
		decode   func(float64) float64
		encode   func(float64) float64
		maxError float64
	}
	pairs := []pair{
		{"sRGB", SRGBToLinear, LinearToSRGB, 1e-12},
		{"L*", LStarToLinear, LinearToLStar, 1e-12},
		{"gamma 2.2", func(v float64) float64 { return GammaToLinear(v, 2.2) },
			func(v float64) float64 { return LinearToGamma(v, 2.2) }, 1e-12},
	}
	for _, p := range pairs {
		for i := 0; i <= 100; i++ {
			v := float64(i) / 100
			got := p.encode(p.decode(v))
			if math.Abs(got-v) > p.maxError {
				t.Errorf("%s: encode(decode(%g)) = %g", p.name, v, got)
			}
		}
	}
}

func TestTransferEndpoints(t *testing.T) {
	fns := map[string]func(float64) float64{
		"SRGBToLinear":  SRGBToLinear,
		"LinearToSRGB":  LinearToSRGB,
		"LStarToLinear": LStarToLinear,
		"LinearToLStar": LinearToLStar,
	}
	for name, fn := range fns {
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %g", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s(1) = %g", name, got)
		}
	}
}
