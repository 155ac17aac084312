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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestXYZToLab(t *testing.T) {
	ws := NewRGBWorkingSpaces().SRGBD65Degree2

	lab := mustXYZ(t, 41.240, 21.260, 1.930).Lab(ws)
	if d := cmp.Diff([]float64{1, 53.233, 80.10, 67.22}, labValues(lab), approx(0.01)); d != "" {
		t.Error(d)
	}

	lab = mustRGB(t, 1, 0, 0).XYZ(ws).Lab(ws)
	if d := cmp.Diff([]float64{1, 53.233, 80.10, 67.22}, labValues(lab), approx(0.1)); d != "" {
		t.Error(d)
	}

	// the reference white has L=100, a=b=0
	lab = ws.ReferenceWhite().WhitePoint().Lab(ws)
	if d := cmp.Diff([]float64{1, 100, 0, 0}, labValues(lab), approx(1e-9)); d != "" {
		t.Error(d)
	}

	// grays have a=b=0
	lab = mustRGB(t, 0.5, 0.5, 0.5).XYZ(ws).Lab(ws)
	if d := cmp.Diff([]float64{1, 53.389, 0, 0}, labValues(lab), approx(1e-3)); d != "" {
		t.Error(d)
	}

	lab = mustXYZ(t, 0, 0, 0).Lab(ws)
	if d := cmp.Diff([]float64{1, 0, 0, 0}, labValues(lab), approx(1e-12)); d != "" {
		t.Error(d)
	}
}

func TestLabToXYZ(t *testing.T) {
	ws := NewRGBWorkingSpaces().SRGBD65Degree2

	xyz := mustLab(t, 53.233, 80.10, 67.22).XYZ(ws)
	if d := cmp.Diff([]float64{1, 41.240, 21.260, 1.930}, xyzValues(xyz), approx(0.01)); d != "" {
		t.Error(d)
	}

	rgb := xyz.RGB(ws)
	if d := cmp.Diff([]float64{1, 1, 0, 0}, rgbValues(rgb), approx(0.01)); d != "" {
		t.Error(d)
	}
}

// TestLabRelativeTo checks that the same XYZ value gives different Lab
// values for different reference whites, and that each converts back.
func TestLabRelativeTo(t *testing.T) {
	ill := NewIlluminants()
	c := mustXYZ(t, 30, 40, 50)

	d50 := c.LabRelativeTo(ill.D50Degree2)
	d65 := c.LabRelativeTo(ill.D65Degree2)
	if d50 == d65 {
		t.Errorf("D50 and D65 give the same Lab value %s", d50)
	}
	if d := cmp.Diff(xyzValues(c), xyzValues(d50.XYZRelativeTo(ill.D50Degree2)), approx(1e-9)); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(xyzValues(c), xyzValues(d65.XYZRelativeTo(ill.D65Degree2)), approx(1e-9)); d != "" {
		t.Error(d)
	}
}

func TestNewLabA(t *testing.T) {
	if _, err := NewLabA(-0.5, 50, 0, 0); !errors.Is(err, &RangeError{}) {
		t.Errorf("got %v, want RangeError", err)
	}
	c, err := NewLabA(0.5, 50, -20, 120)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.String(), "Lab(0.5,50.0,-20.0,120.0)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewLabNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		inputs := [][3]float64{{v, 0, 0}, {50, v, 0}, {50, 0, v}}
		for _, in := range inputs {
			if _, err := NewLab(in[0], in[1], in[2]); !errors.Is(err, &RangeError{}) {
				t.Errorf("NewLab(%v): got %v, want RangeError", in, err)
			}
			if _, err := NewLabA(0.5, in[0], in[1], in[2]); !errors.Is(err, &RangeError{}) {
				t.Errorf("NewLabA(0.5, %v): got %v, want RangeError", in, err)
			}
		}
	}
}
