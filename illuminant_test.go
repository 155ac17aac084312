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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIlluminants(t *testing.T) {
	ill := NewIlluminants()

	if d := cmp.Diff([]float64{1, 95.047, 100, 108.883}, xyzValues(ill.D65Degree2.WhitePoint())); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]float64{1, 96.422, 100, 82.521}, xyzValues(ill.D50Degree2.WhitePoint())); d != "" {
		t.Error(d)
	}

	d65, ok := ill.Lookup("d65", 2)
	if !ok || d65 != ill.D65Degree2 {
		t.Errorf("Lookup(d65, 2) = %v, %t", d65, ok)
	}
	if _, ok := ill.Lookup("D65", 5); ok {
		t.Error("found D65 for a 5° observer")
	}
	if _, ok := ill.Lookup("D93", 2); ok {
		t.Error("found D93")
	}

	a10, ok := ill.Lookup("A", 10)
	if !ok {
		t.Fatal("A/10° missing")
	}
	if a10.Degree() != 10 || a10.Name() != "A" || a10.String() != "A/10°" {
		t.Errorf("unexpected illuminant %s", a10)
	}

	all := ill.All()
	if len(all) != 22 {
		t.Errorf("got %d illuminants, want 22", len(all))
	}
	for i := 1; i < len(all); i++ {
		a, b := all[i-1], all[i]
		if a.Name() > b.Name() || a.Name() == b.Name() && a.Degree() >= b.Degree() {
			t.Errorf("%s sorted before %s", a, b)
		}
	}
	for _, x := range all {
		if x.WhitePoint().Y() != 100 {
			t.Errorf("%s: Y = %g", x, x.WhitePoint().Y())
		}
	}
}

func TestNewIlluminant(t *testing.T) {
	ill, err := NewIlluminant("D60", 2, mustXYZ(t, 95.264, 100, 100.882))
	if err != nil {
		t.Fatal(err)
	}
	if ill.String() != "D60/2°" {
		t.Errorf("got %s", ill)
	}

	bad := []struct {
		degree int
		white  XYZ
	}{
		{2, mustXYZ(t, 0, 100, 100)},
		{2, mustXYZ(t, 100, -1, 100)},
		{0, mustXYZ(t, 100, 100, 100)},
		{2, XYZ{alpha: 1, x: math.Inf(1), y: 100, z: 100}},
		{2, XYZ{alpha: 1, x: 100, y: 100, z: math.NaN()}},
	}
	for _, b := range bad {
		if _, err := NewIlluminant("bad", b.degree, b.white); err == nil {
			t.Errorf("NewIlluminant(%d, %s) succeeded", b.degree, b.white)
		}
	}
}
