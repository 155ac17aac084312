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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) RGB32Bit {
	t.Helper()
	c, err := ParseWebColorString(s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestParseWebColorString(t *testing.T) {
	cases := []struct {
		in   string
		want RGB32Bit
		ok   bool
	}{
		{"#ff0000", NewARGB32Bit(255, 255, 0, 0), true},
		{"ff0000", 0xffff0000, true},
		{"##ff0000", 0xffff0000, true},
		{"  #00FF7f  ", 0xff00ff7f, true},
		{"# 123456", 0xff123456, true},
		{"#000000", 0xff000000, true},
		{"", 0, false},
		{"#", 0, false},
		{"#fff", 0, false},
		{"#ffffffff", 0, false},
		{"#ff00", 0, false},
		{"#gg0000", 0, false},
		{"#+12345", 0, false},
		{"#12 345", 0, false},
		{"red", 0, false},
	}
	for _, tc := range cases {
		got, ok := TryParseWebColorString(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("TryParseWebColorString(%q) = %s, %t; want %s, %t",
				tc.in, got, ok, tc.want, tc.ok)
		}

		got, err := ParseWebColorString(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Errorf("ParseWebColorString(%q) = %s, %v", tc.in, got, err)
			}
		} else {
			var parseErr *ParseError
			if !errors.As(err, &parseErr) || parseErr.Input != tc.in {
				t.Errorf("ParseWebColorString(%q): got error %v", tc.in, err)
			}
		}
	}
}

func TestWebColorString(t *testing.T) {
	cases := []struct {
		in   RGB32Bit
		want string
	}{
		{NewRGB32Bit(255, 0, 0), "#ff0000"},
		{NewRGB32Bit(0, 0x80, 0x0a), "#00800a"},
		{NewARGB32Bit(0x7f, 1, 2, 3), "#7f010203"},
		{NewARGB32Bit(0, 0, 0, 0), "#00000000"},
	}
	for _, tc := range cases {
		if got := tc.in.WebColorString(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRGB32BitChannels(t *testing.T) {
	c := NewARGB32Bit(1, 2, 3, 4)
	got := []uint8{c.Alpha(), c.R(), c.G(), c.B()}
	if d := cmp.Diff([]uint8{1, 2, 3, 4}, got); d != "" {
		t.Error(d)
	}
	if c.Uint32() != 0x01020304 {
		t.Errorf("Uint32() = %#x", c.Uint32())
	}

	c = c.WithAlpha(0xfe)
	if c != 0xfe020304 {
		t.Errorf("WithAlpha: got %#x", uint32(c))
	}

	if got, want := c.String(), "RGB32Bit(254,2,3,4)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRGB32BitInt(t *testing.T) {
	for _, c := range []RGB32Bit{0, 0xffffffff, 0xff102030, 0x7f000000, 0x80000000} {
		if got := RGB32BitFromInt(c.Int()); got != c {
			t.Errorf("%#x: got %#x", uint32(c), uint32(got))
		}
	}
	if v := NewRGB32Bit(0, 0, 0).Int(); v >= 0 {
		t.Errorf("opaque black gives %d", v)
	}
	if v := NewARGB32Bit(0, 255, 255, 255).Int(); v != 0xffffff {
		t.Errorf("transparent white gives %d", v)
	}
}

func TestRGB32BitToRGB(t *testing.T) {
	c := NewARGB32Bit(0, 255, 51, 0).RGB()
	if d := cmp.Diff([]float64{0, 1, 0.2, 0}, rgbValues(c)); d != "" {
		t.Error(d)
	}

	// every byte value survives the conversion to floating point and back
	for i := 0; i < 256; i++ {
		v := uint8(i)
		c := NewARGB32Bit(v, v, 255-v, v/2)
		if got := c.RGB().RGB32Bit(); got != c {
			t.Errorf("%s -> %s", c, got)
		}
	}
}

func FuzzParseWebColorString(f *testing.F) {
	f.Add("#FF0000")
	f.Add("FF0000")
	f.Add("#ffffff")
	f.Add("000000")
	f.Add("")
	f.Add("#")
	f.Add("###")
	f.Add("#FFF")
	f.Add("#FFFFFFFF")
	f.Add("notacolor")
	f.Add("  #abcdef  ")
	f.Add("#GGG000")

	f.Fuzz(func(t *testing.T, s string) {
		c, ok := TryParseWebColorString(s)
		_, err := ParseWebColorString(s)
		if ok != (err == nil) {
			t.Fatalf("%q: TryParse ok=%t, Parse err=%v", s, ok, err)
		}
		if !ok {
			if c != 0 {
				t.Errorf("%q: failed parse returned %s", s, c)
			}
			return
		}
		if c.Alpha() != 0xff {
			t.Errorf("%q: alpha %d", s, c.Alpha())
		}
		web := c.WebColorString()
		c2, ok := TryParseWebColorString(web)
		if !ok || c2 != c {
			t.Errorf("%q: %q parses as %s", s, web, c2)
		}
	})
}
