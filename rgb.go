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

	"golang.org/x/image/math/f64"

	"seehuhn.de/go/colorspace/internal/float"
)

// RGB is a color given by red, green and blue channels in [0,1], together
// with an alpha channel in [0,1].
//
// RGB values are immutable.  Two RGB values can be compared using ==.
type RGB struct {
	alpha, r, g, b float64
}

// NewRGB returns an opaque RGB color.
func NewRGB(r, g, b float64) (RGB, error) {
	return NewRGBA(1, r, g, b)
}

// NewRGBA returns an RGB color with the given alpha value.
// All values must be in the range [0,1].
func NewRGBA(alpha, r, g, b float64) (RGB, error) {
	if err := checkRange01(alpha, "RGB", "Alpha"); err != nil {
		return RGB{}, err
	}
	if err := checkRange01(r, "RGB", "R"); err != nil {
		return RGB{}, err
	}
	if err := checkRange01(g, "RGB", "G"); err != nil {
		return RGB{}, err
	}
	if err := checkRange01(b, "RGB", "B"); err != nil {
		return RGB{}, err
	}
	return RGB{alpha: alpha, r: r, g: g, b: b}, nil
}

// rgbClamped builds an RGB value from the result of a conversion.  The
// channels are clamped to [0,1] to absorb rounding errors, and NaN becomes 0.
func rgbClamped(alpha, r, g, b float64) RGB {
	return RGB{
		alpha: clampChannel(alpha),
		r:     clampChannel(r),
		g:     clampChannel(g),
		b:     clampChannel(b),
	}
}

// Alpha returns the alpha channel.
func (c RGB) Alpha() float64 { return c.alpha }

// R returns the red channel.
func (c RGB) R() float64 { return c.r }

// G returns the green channel.
func (c RGB) G() float64 { return c.g }

// B returns the blue channel.
func (c RGB) B() float64 { return c.b }

func (c RGB) String() string {
	return "RGB(" + float.Format(c.alpha, 3) + "," + float.Format(c.r, 3) + "," +
		float.Format(c.g, 3) + "," + float.Format(c.b, 3) + ")"
}

// HSL converts the color to the HSL color model.
// If r=g=b, the result is achromatic.
func (c RGB) HSL() HSL {
	maxc := max(c.r, c.g, c.b)
	minc := min(c.r, c.g, c.b)
	l := (maxc + minc) / 2

	if maxc == minc {
		return HSL{alpha: c.alpha, l: l}
	}

	delta := maxc - minc
	var s float64
	if l < 0.5 {
		s = delta / (maxc + minc)
	} else {
		s = delta / (2 - maxc - minc)
	}

	return HSL{
		alpha:     c.alpha,
		h:         c.hue(maxc, delta),
		s:         s,
		l:         l,
		chromatic: true,
	}
}

// HSV converts the color to the HSV color model.
// If r=g=b, the result is achromatic.
func (c RGB) HSV() HSV {
	maxc := max(c.r, c.g, c.b)
	minc := min(c.r, c.g, c.b)

	if maxc == minc {
		return HSV{alpha: c.alpha, v: maxc}
	}

	delta := maxc - minc
	return HSV{
		alpha:     c.alpha,
		h:         c.hue(maxc, delta),
		s:         delta / maxc,
		v:         maxc,
		chromatic: true,
	}
}

// hue computes the hue shared by the HSL and HSV models.
// The caller must ensure delta > 0.
func (c RGB) hue(maxc, delta float64) float64 {
	rc := ((maxc-c.r)/6 + delta/2) / delta
	gc := ((maxc-c.g)/6 + delta/2) / delta
	bc := ((maxc-c.b)/6 + delta/2) / delta

	var h float64
	switch maxc {
	case c.r:
		h = bc - gc
	case c.g:
		h = 1.0/3.0 + rc - bc
	default:
		h = 2.0/3.0 + gc - rc
	}
	return NormalizeHue(h)
}

// XYZ converts the color to CIE XYZ, using the given working space.
// The channels are linearized with the companding of the working space
// before the RGB to XYZ matrix is applied.  The result uses the
// conventional 0–100 scale.
func (c RGB) XYZ(ws *RGBWorkingSpace) XYZ {
	lin := ws.companding
	v := mulMat3Vec(&ws.rgbToXYZ, f64.Vec3{
		lin.Linearize(c.r),
		lin.Linearize(c.g),
		lin.Linearize(c.b),
	})
	return XYZ{alpha: c.alpha, x: 100 * v[0], y: 100 * v[1], z: 100 * v[2]}
}

// RGB32Bit converts the color to 8 bits per channel, rounding to the
// nearest value.
func (c RGB) RGB32Bit() RGB32Bit {
	return NewARGB32Bit(toByte(c.alpha), toByte(c.r), toByte(c.g), toByte(c.b))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clampChannel(v) * 255))
}
