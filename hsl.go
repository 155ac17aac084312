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

	"seehuhn.de/go/colorspace/internal/float"
)

// HSL is a color in the hue, saturation, lightness model.
//
// Hue and saturation are undefined for shades of gray.  Such colors are
// called achromatic; their hue and saturation are reported as NaN.
//
// HSL values are immutable and can be compared using ==.
type HSL struct {
	alpha     float64
	h, s      float64 // zero unless chromatic
	l         float64
	chromatic bool
}

// NewHSL returns an opaque HSL color.
// See [NewHSLA] for the allowed values.
func NewHSL(h, s, l float64) (HSL, error) {
	return NewHSLA(1, h, s, l)
}

// NewHSLA returns an HSL color.
//
// Alpha and l must be in [0,1].  The hue h and saturation s must either both
// be in [0,1], or both be NaN to describe an achromatic color.
func NewHSLA(alpha, h, s, l float64) (HSL, error) {
	if err := checkRange01(alpha, "HSL", "Alpha"); err != nil {
		return HSL{}, err
	}
	chromatic, err := checkHueSaturation(h, s, "HSL")
	if err != nil {
		return HSL{}, err
	}
	if err := checkRange01(l, "HSL", "L"); err != nil {
		return HSL{}, err
	}
	if !chromatic {
		return HSL{alpha: alpha, l: l}, nil
	}
	return HSL{alpha: alpha, h: h, s: s, l: l, chromatic: true}, nil
}

// NewAchromaticHSL returns a shade of gray with the given lightness.
func NewAchromaticHSL(alpha, l float64) (HSL, error) {
	return NewHSLA(alpha, math.NaN(), math.NaN(), l)
}

// Alpha returns the alpha channel.
func (c HSL) Alpha() float64 { return c.alpha }

// H returns the hue in [0,1], or NaN if the color is achromatic.
func (c HSL) H() float64 {
	if !c.chromatic {
		return math.NaN()
	}
	return c.h
}

// S returns the saturation in [0,1], or NaN if the color is achromatic.
func (c HSL) S() float64 {
	if !c.chromatic {
		return math.NaN()
	}
	return c.s
}

// L returns the lightness.
func (c HSL) L() float64 { return c.l }

// HS returns hue and saturation.  The last return value is false for
// achromatic colors, in which case h and s are zero.
func (c HSL) HS() (h, s float64, ok bool) {
	return c.h, c.s, c.chromatic
}

// IsChromatic reports whether hue and saturation are defined.
func (c HSL) IsChromatic() bool {
	return c.chromatic
}

func (c HSL) String() string {
	return "HSL(" + float.Format(c.alpha, 3) + "," + float.Format(c.H(), 3) + "," +
		float.Format(c.S(), 3) + "," + float.Format(c.l, 3) + ")"
}

// Add returns a new color with dh added to the hue, ds added to the
// saturation and dl added to the lightness.
//
// The hue wraps around, so that adding 1 leaves it unchanged.  Saturation
// and lightness are clamped to [0,1].  Achromatic colors stay achromatic.
// The alpha channel is preserved.  The offsets must be finite.
func (c HSL) Add(dh, ds, dl float64) (HSL, error) {
	if err := checkFinite(dh, "HSL", "H"); err != nil {
		return HSL{}, err
	}
	if err := checkFinite(ds, "HSL", "S"); err != nil {
		return HSL{}, err
	}
	if err := checkFinite(dl, "HSL", "L"); err != nil {
		return HSL{}, err
	}

	res := HSL{alpha: c.alpha, l: NormalizeLightness(c.l + dl)}
	if c.chromatic {
		res.h = NormalizeHue(c.h + dh)
		res.s = NormalizeSaturation(c.s + ds)
		res.chromatic = true
	}
	return res, nil
}

// RGB converts the color to the RGB color model.
func (c HSL) RGB() RGB {
	if !c.chromatic || c.s == 0 {
		return rgbClamped(c.alpha, c.l, c.l, c.l)
	}

	var v2 float64
	if c.l < 0.5 {
		v2 = c.l * (1 + c.s)
	} else {
		v2 = (c.l + c.s) - c.s*c.l
	}
	v1 := 2*c.l - v2

	return rgbClamped(c.alpha,
		hueToRGB(v1, v2, c.h+1.0/3.0),
		hueToRGB(v1, v2, c.h),
		hueToRGB(v1, v2, c.h-1.0/3.0))
}

func hueToRGB(v1, v2, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case 6*h < 1:
		return v1 + (v2-v1)*6*h
	case 2*h < 1:
		return v2
	case 3*h < 2:
		return v1 + (v2-v1)*(2.0/3.0-h)*6
	default:
		return v1
	}
}
