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
	"strconv"
)

// RangeError indicates that a color channel value lies outside its legal
// range.
type RangeError struct {
	Type  string // the color type, for example "HSL"
	Field string // the channel, for example "L"
	Value float64
}

func (err *RangeError) Error() string {
	if math.IsNaN(err.Value) || math.IsInf(err.Value, 0) {
		return fmt.Sprintf("%s: invalid %s value %g", err.Type, err.Field, err.Value)
	}
	return fmt.Sprintf("%s: invalid %s value %g∉[0,1]", err.Type, err.Field, err.Value)
}

// Is reports whether target is a *RangeError.
func (err *RangeError) Is(target error) bool {
	_, ok := target.(*RangeError)
	return ok
}

// IncompatibleValueError indicates that exactly one of hue and saturation
// was undefined (NaN).  A color is either achromatic, with both values
// undefined, or chromatic, with both values defined.
type IncompatibleValueError struct {
	Type string
	H, S float64
}

func (err *IncompatibleValueError) Error() string {
	return fmt.Sprintf("%s: hue %g and saturation %g must both be NaN or both be numbers",
		err.Type, err.H, err.S)
}

// Is reports whether target is an *IncompatibleValueError.
func (err *IncompatibleValueError) Is(target error) bool {
	_, ok := target.(*IncompatibleValueError)
	return ok
}

// ParseError is returned by [ParseWebColorString] for malformed input.
type ParseError struct {
	Input string
}

func (err *ParseError) Error() string {
	return "failed to parse color string " + strconv.Quote(err.Input)
}

// Is reports whether target is a *ParseError.
func (err *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}
