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

package main

import (
	"fmt"
	"io"

	"seehuhn.de/go/colorspace"
)

type printer struct {
	ws     *colorspace.RGBWorkingSpace
	rotate float64
	swatch bool // show a 24-bit color sample
}

// print writes the representations of c in all supported color models.
func (p *printer) print(w io.Writer, c colorspace.RGB32Bit) error {
	rgb := c.RGB()
	if p.rotate != 0 {
		hsl, err := rgb.HSL().Add(p.rotate, 0, 0)
		if err != nil {
			return err
		}
		rgb = hsl.RGB()
		c = rgb.RGB32Bit()
	}
	xyz := rgb.XYZ(p.ws)

	_, err := fmt.Fprintf(w, "%s%s\n", c.WebColorString(), p.sample(c))
	if err != nil {
		return err
	}
	lines := []fmt.Stringer{c, rgb, rgb.HSL(), rgb.HSV(), xyz, xyz.Lab(p.ws)}
	for _, x := range lines {
		_, err := fmt.Fprintf(w, "  %s\n", x)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "  working space: %s\n", p.ws)
	return err
}

func (p *printer) sample(c colorspace.RGB32Bit) string {
	if !p.swatch {
		return ""
	}
	return fmt.Sprintf("  \x1b[48;2;%d;%d;%dm      \x1b[0m", c.R(), c.G(), c.B())
}
