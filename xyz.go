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
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/colorspace/internal/colconv"
	"seehuhn.de/go/colorspace/internal/float"
)

// XYZ is a color given by its CIE 1931 tristimulus values.
//
// The tristimulus values are unbounded.  By convention, Y=100 for the
// reference white.  XYZ values are immutable and can be compared using ==.
type XYZ struct {
	alpha, x, y, z float64
}

// NewXYZ returns an opaque XYZ color.
// See [NewXYZA] for the allowed values.
func NewXYZ(x, y, z float64) (XYZ, error) {
	return NewXYZA(1, x, y, z)
}

// NewXYZA returns an XYZ color.  Alpha must be in [0,1], the tristimulus
// values can be any finite numbers.
func NewXYZA(alpha, x, y, z float64) (XYZ, error) {
	if err := checkRange01(alpha, "XYZ", "Alpha"); err != nil {
		return XYZ{}, err
	}
	if err := checkFinite(x, "XYZ", "X"); err != nil {
		return XYZ{}, err
	}
	if err := checkFinite(y, "XYZ", "Y"); err != nil {
		return XYZ{}, err
	}
	if err := checkFinite(z, "XYZ", "Z"); err != nil {
		return XYZ{}, err
	}
	return XYZ{alpha: alpha, x: x, y: y, z: z}, nil
}

// Alpha returns the alpha channel.
func (c XYZ) Alpha() float64 { return c.alpha }

// X returns the X tristimulus value.
func (c XYZ) X() float64 { return c.x }

// Y returns the Y tristimulus value (luminance).
func (c XYZ) Y() float64 { return c.y }

// Z returns the Z tristimulus value.
func (c XYZ) Z() float64 { return c.z }

func (c XYZ) String() string {
	return "XYZ(" + float.Format(c.alpha, 3) + "," + float.Format(c.x, 3) + "," +
		float.Format(c.y, 3) + "," + float.Format(c.z, 3) + ")"
}

// RGB converts the color to RGB in the given working space.
//
// Colors outside the gamut of the working space are clamped: every linear
// channel is forced into [0,1] before the companding of the working space
// is applied.  Channels which overflow to NaN are set to 0.
func (c XYZ) RGB(ws *RGBWorkingSpace) RGB {
	v := mulMat3Vec(&ws.xyzToRGB, f64.Vec3{c.x / 100, c.y / 100, c.z / 100})
	enc := ws.companding
	return rgbClamped(c.alpha,
		enc.Compand(clampChannel(v[0])),
		enc.Compand(clampChannel(v[1])),
		enc.Compand(clampChannel(v[2])))
}

// Lab converts the color to CIE L*a*b*, relative to the reference white of
// the given working space.
func (c XYZ) Lab(ws *RGBWorkingSpace) Lab {
	return c.LabRelativeTo(ws.referenceWhite)
}

// LabRelativeTo converts the color to CIE L*a*b*, relative to the white
// point of the given illuminant.
func (c XYZ) LabRelativeTo(white *Illuminant) Lab {
	w := white.white
	fx := colconv.LabF(c.x / w.x)
	fy := colconv.LabF(c.y / w.y)
	fz := colconv.LabF(c.z / w.z)
	return Lab{
		alpha: c.alpha,
		l:     116*fy - 16,
		a:     500 * (fx - fy),
		b:     200 * (fy - fz),
	}
}
