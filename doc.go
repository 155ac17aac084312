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

// Package colorspace converts colors between the RGB, HSL, HSV, CIE XYZ and
// CIE L*a*b* color models.
//
// All color values are immutable.  Constructors check their arguments and
// return a [*RangeError] for out-of-range channels:
//
//	c, err := colorspace.NewRGB(1, 0.5, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.HSL()) // HSL(1.0,0.083,1.0,0.5)
//
// Colors without a hue (grays) are represented by achromatic HSL and HSV
// values.  For these, H and S return NaN and IsChromatic returns false.
//
// Conversions to and from CIE XYZ need an [RGBWorkingSpace], which
// describes the primaries, the reference white and the transfer function of
// the RGB values.  [NewRGBWorkingSpaces] returns a table of common working
// spaces:
//
//	spaces := colorspace.NewRGBWorkingSpaces()
//	xyz := c.XYZ(spaces.SRGBD65Degree2)
//	lab := xyz.Lab(spaces.SRGBD65Degree2)
//
// Further illuminants and working spaces can be read from a YAML file using
// [LoadRGBWorkingSpaces].
//
// Packed 8-bit colors in the form 0xAARRGGBB are represented by [RGB32Bit],
// which also converts to and from web color strings like "#ff8000".
package colorspace
