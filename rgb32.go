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
	"strconv"
	"strings"
)

// RGB32Bit is a color with 8 bits per channel, packed as 0xAARRGGBB.
//
// Two RGB32Bit values are equal if and only if their packed integer values
// are equal.
type RGB32Bit uint32

// NewRGB32Bit returns an opaque color.
func NewRGB32Bit(r, g, b uint8) RGB32Bit {
	return NewARGB32Bit(0xff, r, g, b)
}

// NewARGB32Bit returns a color with the given alpha value.
func NewARGB32Bit(alpha, r, g, b uint8) RGB32Bit {
	return RGB32Bit(uint32(alpha)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB32BitFromInt unpacks a color from a signed 32-bit integer, as
// returned by [RGB32Bit.Int].
func RGB32BitFromInt(v int32) RGB32Bit {
	return RGB32Bit(uint32(v))
}

// Alpha returns the alpha channel.
func (c RGB32Bit) Alpha() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c RGB32Bit) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB32Bit) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB32Bit) B() uint8 { return uint8(c) }

// WithAlpha returns a copy of the color with the alpha channel replaced.
func (c RGB32Bit) WithAlpha(alpha uint8) RGB32Bit {
	return RGB32Bit(uint32(alpha)<<24 | uint32(c)&0x00ffffff)
}

// Int returns the packed value as a signed integer.  Opaque colors give
// negative values.
func (c RGB32Bit) Int() int32 {
	return int32(c)
}

// Uint32 returns the packed value.
func (c RGB32Bit) Uint32() uint32 {
	return uint32(c)
}

func (c RGB32Bit) String() string {
	return fmt.Sprintf("RGB32Bit(%d,%d,%d,%d)", c.Alpha(), c.R(), c.G(), c.B())
}

// RGB converts the color to floating point channels.
func (c RGB32Bit) RGB() RGB {
	return RGB{
		alpha: float64(c.Alpha()) / 255,
		r:     float64(c.R()) / 255,
		g:     float64(c.G()) / 255,
		b:     float64(c.B()) / 255,
	}
}

// WebColorString formats the color as "#rrggbb" if the color is opaque,
// and as "#aarrggbb" otherwise.
func (c RGB32Bit) WebColorString() string {
	if c.Alpha() == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Alpha(), c.R(), c.G(), c.B())
}

// ParseWebColorString parses a string of the form "#rrggbb".  Surrounding
// white space and any number of leading '#' characters are ignored.  The
// result is always opaque.
//
// If the string cannot be parsed, a *ParseError is returned.
func ParseWebColorString(webColor string) (RGB32Bit, error) {
	c, ok := TryParseWebColorString(webColor)
	if !ok {
		return 0, &ParseError{Input: webColor}
	}
	return c, nil
}

// TryParseWebColorString is like [ParseWebColorString], but reports failure
// using the second return value instead of an error.
func TryParseWebColorString(webColor string) (RGB32Bit, bool) {
	s := strings.TrimSpace(webColor)
	s = strings.TrimLeft(s, "#")
	s = strings.TrimSpace(s)

	// exactly six digits, so alpha is never given
	if len(s) != 6 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return RGB32Bit(uint32(v) | 0xff000000), true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
