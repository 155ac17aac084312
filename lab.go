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
	"seehuhn.de/go/colorspace/internal/colconv"
	"seehuhn.de/go/colorspace/internal/float"
)

// Lab is a color in the CIE 1976 L*a*b* color space.
//
// L* is the perceptual lightness, with 0 for black and 100 for the
// reference white.  The a* and b* axes are unbounded.
type Lab struct {
	alpha, l, a, b float64
}

// NewLab returns an opaque Lab color.
func NewLab(l, a, b float64) (Lab, error) {
	return NewLabA(1, l, a, b)
}

// NewLabA returns a Lab color.  Alpha must be in [0,1], the coordinates
// can be any finite numbers.
func NewLabA(alpha, l, a, b float64) (Lab, error) {
	if err := checkRange01(alpha, "Lab", "Alpha"); err != nil {
		return Lab{}, err
	}
	if err := checkFinite(l, "Lab", "L"); err != nil {
		return Lab{}, err
	}
	if err := checkFinite(a, "Lab", "A"); err != nil {
		return Lab{}, err
	}
	if err := checkFinite(b, "Lab", "B"); err != nil {
		return Lab{}, err
	}
	return Lab{alpha: alpha, l: l, a: a, b: b}, nil
}

// Alpha returns the alpha channel.
func (c Lab) Alpha() float64 { return c.alpha }

// L returns the lightness L*.
func (c Lab) L() float64 { return c.l }

// A returns the a* (green–red) coordinate.
func (c Lab) A() float64 { return c.a }

// B returns the b* (blue–yellow) coordinate.
func (c Lab) B() float64 { return c.b }

func (c Lab) String() string {
	return "Lab(" + float.Format(c.alpha, 3) + "," + float.Format(c.l, 3) + "," +
		float.Format(c.a, 3) + "," + float.Format(c.b, 3) + ")"
}

// XYZ converts the color to CIE XYZ, using the reference white of the
// given working space.
func (c Lab) XYZ(ws *RGBWorkingSpace) XYZ {
	return c.XYZRelativeTo(ws.referenceWhite)
}

// XYZRelativeTo converts the color to CIE XYZ, using the white point of the
// given illuminant.
func (c Lab) XYZRelativeTo(white *Illuminant) XYZ {
	fy := (c.l + 16) / 116
	fx := fy + c.a/500
	fz := fy - c.b/200

	w := white.white
	return XYZ{
		alpha: c.alpha,
		x:     colconv.LabFInv(fx) * w.x,
		y:     colconv.LabFInv(fy) * w.y,
		z:     colconv.LabFInv(fz) * w.z,
	}
}
