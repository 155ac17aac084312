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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/colorspace"
)

func TestPrint(t *testing.T) {
	spaces := colorspace.NewRGBWorkingSpaces()
	p := &printer{ws: spaces.SRGBD65Degree2}

	buf := &bytes.Buffer{}
	err := p.print(buf, colorspace.NewRGB32Bit(255, 0, 0))
	if err != nil {
		t.Fatal(err)
	}

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"#ff0000",
		"  RGB32Bit(255,255,0,0)",
		"  RGB(1.0,1.0,0.0,0.0)",
		"  HSL(1.0,0.0,1.0,0.5)",
		"  HSV(1.0,0.0,1.0,1.0)",
		"  XYZ(1.0,41.246,21.267,1.933)",
		"  Lab(1.0,53.241,80.092,67.203)",
		"  working space: sRGB (D65/2°, sRGB)",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestPrintRotate(t *testing.T) {
	spaces := colorspace.NewRGBWorkingSpaces()
	p := &printer{ws: spaces.SRGBD65Degree2, rotate: 0.5, swatch: true}

	buf := &bytes.Buffer{}
	err := p.print(buf, colorspace.NewRGB32Bit(255, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	first, _, _ := strings.Cut(buf.String(), "\n")
	if want := "#00ffff  \x1b[48;2;0;255;255m      \x1b[0m"; first != want {
		t.Errorf("got %q, want %q", first, want)
	}
}
