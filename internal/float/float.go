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

// Package float formats floating point numbers for the String methods of
// the color types.
package float

import (
	"math"
	"strconv"
	"strings"
)

// Format formats x with at least one and at most maxDigits digits after the
// decimal point.  Trailing zeros beyond the first decimal are removed, so
// that 1 becomes "1.0" and 1/3 becomes "0.333" for maxDigits=3.
//
// The output does not depend on the locale.  NaN is formatted as "NaN" and
// infinities as "+Inf" and "-Inf".
func Format(x float64, maxDigits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	if maxDigits < 1 {
		maxDigits = 1
	}

	out := strconv.FormatFloat(x, 'f', maxDigits, 64)
	dot := strings.IndexByte(out, '.')
	end := len(out)
	for end > dot+2 && out[end-1] == '0' {
		end--
	}
	out = out[:end]
	if out == "-0.0" {
		out = "0.0"
	}
	return out
}
