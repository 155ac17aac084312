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

	"golang.org/x/image/math/f64"
	"seehuhn.de/go/icc"
)

// RGBWorkingSpace describes an RGB gamut by its reference white, a pair of
// matrices between linear RGB and CIE XYZ, and a transfer function.
//
// The matrices map linear RGB values in [0,1] to XYZ values normalized to
// Y=1 for the reference white, and back.  Working spaces are immutable and
// can be shared between goroutines.
type RGBWorkingSpace struct {
	name           string
	referenceWhite *Illuminant
	xyzToRGB       f64.Mat3
	rgbToXYZ       f64.Mat3
	companding     Companding
	profile        []byte
}

// NewRGBWorkingSpace returns a working space with the given matrices.
//
// The two matrices must be inverses of each other.  This is not checked.
// If companding is nil, RGB values are taken to be linear.
func NewRGBWorkingSpace(name string, referenceWhite *Illuminant, xyzToRGB, rgbToXYZ f64.Mat3, companding Companding) (*RGBWorkingSpace, error) {
	if referenceWhite == nil {
		return nil, fmt.Errorf("working space %q: missing reference white", name)
	}
	if companding == nil {
		companding = LinearCompanding{}
	}
	return &RGBWorkingSpace{
		name:           name,
		referenceWhite: referenceWhite,
		xyzToRGB:       xyzToRGB,
		rgbToXYZ:       rgbToXYZ,
		companding:     companding,
	}, nil
}

// Chromaticity is a point in the CIE 1931 xy chromaticity diagram.
type Chromaticity struct {
	X, Y float64
}

// Primaries gives the chromaticities of the red, green and blue primaries
// of a working space.
type Primaries struct {
	Red, Green, Blue Chromaticity
}

// NewRGBWorkingSpaceFromPrimaries computes the matrices of a working space
// from the chromaticities of its primaries, such that RGB white (1,1,1)
// maps to the white point of the reference illuminant.
func NewRGBWorkingSpaceFromPrimaries(name string, referenceWhite *Illuminant, p Primaries, companding Companding) (*RGBWorkingSpace, error) {
	if referenceWhite == nil {
		return nil, fmt.Errorf("working space %q: missing reference white", name)
	}

	var cols [3]f64.Vec3
	for i, c := range []Chromaticity{p.Red, p.Green, p.Blue} {
		if !(c.Y > 0) || !(c.X >= 0) || c.X+c.Y > 1 {
			return nil, fmt.Errorf("working space %q: invalid primary (%g, %g)", name, c.X, c.Y)
		}
		cols[i] = f64.Vec3{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
	}
	prim := f64.Mat3{
		cols[0][0], cols[1][0], cols[2][0],
		cols[0][1], cols[1][1], cols[2][1],
		cols[0][2], cols[1][2], cols[2][2],
	}
	primInv, err := invertMat3(&prim)
	if err != nil {
		return nil, fmt.Errorf("working space %q: degenerate primaries: %w", name, err)
	}

	w := referenceWhite.white
	scale := mulMat3Vec(&primInv, f64.Vec3{w.x / w.y, 1, w.z / w.y})

	var rgbToXYZ f64.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rgbToXYZ[3*i+j] = prim[3*i+j] * scale[j]
		}
	}
	xyzToRGB, err := invertMat3(&rgbToXYZ)
	if err != nil {
		return nil, fmt.Errorf("working space %q: %w", name, err)
	}

	return NewRGBWorkingSpace(name, referenceWhite, xyzToRGB, rgbToXYZ, companding)
}

// Name returns the name of the working space.
func (ws *RGBWorkingSpace) Name() string { return ws.name }

// ReferenceWhite returns the illuminant used as the reference white.
func (ws *RGBWorkingSpace) ReferenceWhite() *Illuminant { return ws.referenceWhite }

// XYZToRGBMatrix returns the matrix which maps XYZ to linear RGB.
func (ws *RGBWorkingSpace) XYZToRGBMatrix() f64.Mat3 { return ws.xyzToRGB }

// RGBToXYZMatrix returns the matrix which maps linear RGB to XYZ.
func (ws *RGBWorkingSpace) RGBToXYZMatrix() f64.Mat3 { return ws.rgbToXYZ }

// Companding returns the transfer function of the working space.
func (ws *RGBWorkingSpace) Companding() Companding { return ws.companding }

// ICCProfile returns the ICC profile attached to the working space, or nil.
// The returned slice must not be modified.
func (ws *RGBWorkingSpace) ICCProfile() []byte { return ws.profile }

func (ws *RGBWorkingSpace) String() string {
	return ws.name + " (" + ws.referenceWhite.String() + ", " + ws.companding.String() + ")"
}

// WithICCProfile returns a copy of the working space with the given ICC
// profile attached.  The profile must describe a three channel RGB device
// color space.
func (ws *RGBWorkingSpace) WithICCProfile(profile []byte) (*RGBWorkingSpace, error) {
	if len(profile) == 0 {
		return nil, fmt.Errorf("working space %q: missing ICC profile", ws.name)
	}
	p, err := icc.Decode(profile)
	if err != nil {
		return nil, fmt.Errorf("working space %q: %w", ws.name, err)
	}
	if p.ColorSpace != icc.RGBSpace || p.ColorSpace.NumComponents() != 3 {
		return nil, fmt.Errorf("working space %q: ICC profile for %v, not RGB",
			ws.name, p.ColorSpace)
	}

	res := *ws
	res.profile = profile
	return &res, nil
}
