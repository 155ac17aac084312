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

// HSV is a color in the hue, saturation, value model.
//
// As for [HSL], hue and saturation are undefined (NaN) for achromatic
// colors.  HSV values are immutable and can be compared using ==.
type HSV struct {
	alpha     float64
	h, s      float64 // zero unless chromatic
	v         float64
	chromatic bool
}

// NewHSV returns an opaque HSV color.
func NewHSV(h, s, v float64) (HSV, error) {
	return NewHSVA(1, h, s, v)
}

// NewHSVA returns an HSV color.
//
// Alpha and v must be in [0,1].  The hue h and saturation s must either both
// be in [0,1], or both be NaN to describe an achromatic color.
func NewHSVA(alpha, h, s, v float64) (HSV, error) {
	if err := checkRange01(alpha, "HSV", "Alpha"); err != nil {
		return HSV{}, err
	}
	chromatic, err := checkHueSaturation(h, s, "HSV")
	if err != nil {
		return HSV{}, err
	}
	if err := checkRange01(v, "HSV", "V"); err != nil {
		return HSV{}, err
	}
	if !chromatic {
		return HSV{alpha: alpha, v: v}, nil
	}
	return HSV{alpha: alpha, h: h, s: s, v: v, chromatic: true}, nil
}

// NewAchromaticHSV returns a shade of gray with the given value.
func NewAchromaticHSV(alpha, v float64) (HSV, error) {
	return NewHSVA(alpha, math.NaN(), math.NaN(), v)
}

// Alpha returns the alpha channel.
func (c HSV) Alpha() float64 { return c.alpha }

// H returns the hue in [0,1], or NaN if the color is achromatic.
func (c HSV) H() float64 {
	if !c.chromatic {
		return math.NaN()
	}
	return c.h
}

// S returns the saturation in [0,1], or NaN if the color is achromatic.
func (c HSV) S() float64 {
	if !c.chromatic {
		return math.NaN()
	}
	return c.s
}

// V returns the value channel.
func (c HSV) V() float64 { return c.v }

// HS returns hue and saturation.  The last return value is false for
// achromatic colors.
func (c HSV) HS() (h, s float64, ok bool) {
	return c.h, c.s, c.chromatic
}

// IsChromatic reports whether hue and saturation are defined.
func (c HSV) IsChromatic() bool {
	return c.chromatic
}

func (c HSV) String() string {
	return "HSV(" + float.Format(c.alpha, 3) + "," + float.Format(c.H(), 3) + "," +
		float.Format(c.S(), 3) + "," + float.Format(c.v, 3) + ")"
}

// Add returns a new color with the given offsets applied.  The hue wraps
// around, saturation and value are clamped to [0,1].
func (c HSV) Add(dh, ds, dv float64) (HSV, error) {
	if err := checkFinite(dh, "HSV", "H"); err != nil {
		return HSV{}, err
	}
	if err := checkFinite(ds, "HSV", "S"); err != nil {
		return HSV{}, err
	}
	if err := checkFinite(dv, "HSV", "V"); err != nil {
		return HSV{}, err
	}

	res := HSV{alpha: c.alpha, v: NormalizeLightness(c.v + dv)}
	if c.chromatic {
		res.h = NormalizeHue(c.h + dh)
		res.s = NormalizeSaturation(c.s + ds)
		res.chromatic = true
	}
	return res, nil
}

// RGB converts the color to the RGB color model.
func (c HSV) RGB() RGB {
	if !c.chromatic || c.s == 0 {
		return rgbClamped(c.alpha, c.v, c.v, c.v)
	}

	h := c.h * 6
	if h >= 6 {
		h = 0
	}
	i := math.Floor(h)
	f := h - i
	p := c.v * (1 - c.s)
	q := c.v * (1 - c.s*f)
	t := c.v * (1 - c.s*(1-f))

	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = c.v, t, p
	case 1:
		r, g, b = q, c.v, p
	case 2:
		r, g, b = p, c.v, t
	case 3:
		r, g, b = p, q, c.v
	case 4:
		r, g, b = t, p, c.v
	default:
		r, g, b = c.v, p, q
	}
	return rgbClamped(c.alpha, r, g, b)
}
