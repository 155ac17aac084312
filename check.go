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

import "math"

// checkRange01 verifies that v is a finite number in [0,1].
func checkRange01(v float64, typ, field string) error {
	if !(v >= 0 && v <= 1) {
		return &RangeError{Type: typ, Field: field, Value: v}
	}
	return nil
}

// checkRange01OrNaN is like checkRange01, but also accepts NaN.
func checkRange01OrNaN(v float64, typ, field string) error {
	if math.IsNaN(v) {
		return nil
	}
	return checkRange01(v, typ, field)
}

// checkFinite verifies that v is neither NaN nor infinite.
func checkFinite(v float64, typ, field string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &RangeError{Type: typ, Field: field, Value: v}
	}
	return nil
}

// checkHueSaturation validates a hue/saturation pair and reports whether
// the pair describes a chromatic color.
func checkHueSaturation(h, s float64, typ string) (chromatic bool, err error) {
	if err := checkRange01OrNaN(h, typ, "H"); err != nil {
		return false, err
	}
	if err := checkRange01OrNaN(s, typ, "S"); err != nil {
		return false, err
	}
	hNaN, sNaN := math.IsNaN(h), math.IsNaN(s)
	if hNaN != sNaN {
		return false, &IncompatibleValueError{Type: typ, H: h, S: s}
	}
	return !hNaN, nil
}

// NormalizeHue wraps h into the interval [0,1).  Negative values wrap
// around, so that NormalizeHue(-0.25) = 0.75.  NaN is returned unchanged.
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	if h >= 1 {
		// -tiny + 1 rounds to 1
		h = 0
	}
	return h
}

// NormalizeSaturation clamps s into [0,1].  NaN is returned unchanged.
func NormalizeSaturation(s float64) float64 {
	return clamp01(s)
}

// NormalizeLightness clamps l into [0,1].  NaN is returned unchanged.
func NormalizeLightness(l float64) float64 {
	return clamp01(l)
}

// clampChannel is like clamp01, but maps NaN to 0.  It is used where a
// computed value must end up as a valid RGB channel.
func clampChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
