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
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Illuminant is a named reference white, given in CIE XYZ, together with
// the angle of the standard observer (2 or 10 degrees).
//
// Illuminants are immutable and are shared by reference.
type Illuminant struct {
	name   string
	degree int
	white  XYZ
}

// NewIlluminant returns a new illuminant.  The white point must have
// positive, finite tristimulus values.
func NewIlluminant(name string, degree int, white XYZ) (*Illuminant, error) {
	if !(isPositive(white.x) && isPositive(white.y) && isPositive(white.z)) {
		return nil, fmt.Errorf("illuminant %q: invalid white point %s", name, white)
	}
	if degree <= 0 {
		return nil, fmt.Errorf("illuminant %q: invalid observer angle %d", name, degree)
	}
	return &Illuminant{name: name, degree: degree, white: white}, nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Name returns the name of the illuminant, for example "D65".
func (ill *Illuminant) Name() string { return ill.name }

// Degree returns the observer angle in degrees.
func (ill *Illuminant) Degree() int { return ill.degree }

// WhitePoint returns the reference white.
func (ill *Illuminant) WhitePoint() XYZ { return ill.white }

func (ill *Illuminant) String() string {
	return fmt.Sprintf("%s/%d°", ill.name, ill.degree)
}

type illuminantKey struct {
	name   string
	degree int
}

// Illuminants is a table of illuminants, indexed by name and observer
// angle.  A table is not modified after construction and can be used
// concurrently.
type Illuminants struct {
	D50Degree2 *Illuminant
	D65Degree2 *Illuminant

	byKey map[illuminantKey]*Illuminant
}

// NewIlluminants returns the standard CIE illuminants A, B, C, D50, D55,
// D65, D75, E, F2, F7 and F11, for the 2° and 10° observers.  The white
// points are normalized to Y=100.
func NewIlluminants() *Illuminants {
	res := &Illuminants{byKey: make(map[illuminantKey]*Illuminant)}
	for _, d := range standardIlluminants {
		for _, deg := range []struct {
			degree int
			x, z   float64
		}{
			{2, d.x2, d.z2},
			{10, d.x10, d.z10},
		} {
			ill := &Illuminant{
				name:   d.name,
				degree: deg.degree,
				white:  XYZ{alpha: 1, x: deg.x, y: 100, z: deg.z},
			}
			res.add(ill)
		}
	}
	res.D50Degree2 = res.byKey[illuminantKey{"D50", 2}]
	res.D65Degree2 = res.byKey[illuminantKey{"D65", 2}]
	return res
}

func (t *Illuminants) add(ill *Illuminant) {
	t.byKey[illuminantKey{strings.ToUpper(ill.name), ill.degree}] = ill
}

// clone returns a copy of the table which can be extended.
func (t *Illuminants) clone() *Illuminants {
	res := *t
	res.byKey = maps.Clone(t.byKey)
	return &res
}

// Lookup returns the illuminant with the given name and observer angle.
// Names are matched without regard to case.
func (t *Illuminants) Lookup(name string, degree int) (*Illuminant, bool) {
	ill, ok := t.byKey[illuminantKey{strings.ToUpper(name), degree}]
	return ill, ok
}

// All returns all illuminants, sorted by name and observer angle.
func (t *Illuminants) All() []*Illuminant {
	res := make([]*Illuminant, 0, len(t.byKey))
	for _, ill := range t.byKey {
		res = append(res, ill)
	}
	slices.SortFunc(res, func(a, b *Illuminant) int {
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		return a.degree - b.degree
	})
	return res
}

var standardIlluminants = []struct {
	name     string
	x2, z2   float64
	x10, z10 float64
}{
	{"A", 109.850, 35.585, 111.144, 35.200},
	{"B", 99.0927, 85.313, 99.178, 84.3493},
	{"C", 98.074, 118.232, 97.285, 116.145},
	{"D50", 96.422, 82.521, 96.720, 81.427},
	{"D55", 95.682, 92.149, 95.799, 90.926},
	{"D65", 95.047, 108.883, 94.811, 107.304},
	{"D75", 94.972, 122.638, 94.416, 120.641},
	{"E", 100, 100, 100, 100},
	{"F2", 99.187, 67.395, 103.280, 69.026},
	{"F7", 95.044, 108.755, 95.792, 107.687},
	{"F11", 100.966, 64.370, 103.866, 65.627},
}
