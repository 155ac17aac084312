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
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"
	"seehuhn.de/go/icc"
)

// RGBWorkingSpaces is a table of RGB working spaces, together with the
// illuminants they refer to.  A table is not modified after construction
// and can be used concurrently.
type RGBWorkingSpaces struct {
	SRGBD65Degree2         *RGBWorkingSpace
	LinearSRGBD65Degree2   *RGBWorkingSpace
	AdobeRGBD65Degree2     *RGBWorkingSpace
	AppleRGBD65Degree2     *RGBWorkingSpace
	ProPhotoRGBD50Degree2  *RGBWorkingSpace
	WideGamutRGBD50Degree2 *RGBWorkingSpace
	ECIRGBD50Degree2       *RGBWorkingSpace
	CIERGBEDegree2         *RGBWorkingSpace

	illuminants *Illuminants
	byName      map[string]*RGBWorkingSpace
}

// NewRGBWorkingSpaces returns a table with the commonly used RGB working
// spaces, all for the 2° observer.  The sRGB working space has the sRGB ICC
// profile attached.
func NewRGBWorkingSpaces() *RGBWorkingSpaces {
	ill := NewIlluminants()
	res := &RGBWorkingSpaces{
		illuminants: ill,
		byName:      make(map[string]*RGBWorkingSpace),
	}

	for _, d := range standardSpaces {
		white, ok := ill.Lookup(d.white, 2)
		if !ok {
			panic("unknown illuminant " + d.white)
		}
		ws, err := NewRGBWorkingSpaceFromPrimaries(d.name, white, d.primaries, d.companding)
		if err != nil {
			panic(err)
		}
		if d.profile != nil {
			ws, err = ws.WithICCProfile(d.profile)
			if err != nil {
				panic(err)
			}
		}
		res.add(ws)
	}

	res.SRGBD65Degree2 = res.byName[fold("sRGB")]
	res.LinearSRGBD65Degree2 = res.byName[fold("linear sRGB")]
	res.AdobeRGBD65Degree2 = res.byName[fold("Adobe RGB (1998)")]
	res.AppleRGBD65Degree2 = res.byName[fold("Apple RGB")]
	res.ProPhotoRGBD50Degree2 = res.byName[fold("ProPhoto RGB")]
	res.WideGamutRGBD50Degree2 = res.byName[fold("Wide Gamut RGB")]
	res.ECIRGBD50Degree2 = res.byName[fold("ECI RGB v2")]
	res.CIERGBEDegree2 = res.byName[fold("CIE RGB")]
	return res
}

// clone returns a copy of the table which can be extended.
func (t *RGBWorkingSpaces) clone() *RGBWorkingSpaces {
	res := *t
	res.illuminants = t.illuminants.clone()
	res.byName = maps.Clone(t.byName)
	return &res
}

func (t *RGBWorkingSpaces) add(ws *RGBWorkingSpace) {
	t.byName[fold(ws.name)] = ws
}

// fold returns the key under which a working space name is stored.
func fold(name string) string {
	// A Caser is stateful, so a new one is used for every call.
	return cases.Fold().String(name)
}

// Lookup returns the working space with the given name.  Names are matched
// without regard to case.
func (t *RGBWorkingSpaces) Lookup(name string) (*RGBWorkingSpace, bool) {
	ws, ok := t.byName[fold(name)]
	return ws, ok
}

// Names returns the names of all working spaces in the table, in sorted
// order.
func (t *RGBWorkingSpaces) Names() []string {
	keys := make([]string, 0, len(t.byName))
	for key := range t.byName {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = t.byName[key].name
	}
	return names
}

// Illuminants returns the illuminants the working spaces refer to.
func (t *RGBWorkingSpaces) Illuminants() *Illuminants {
	return t.illuminants
}

var standardSpaces = []struct {
	name       string
	white      string
	primaries  Primaries
	companding Companding
	profile    []byte
}{
	{
		name:       "sRGB",
		white:      "D65",
		primaries:  Primaries{Chromaticity{0.64, 0.33}, Chromaticity{0.30, 0.60}, Chromaticity{0.15, 0.06}},
		companding: SRGBCompanding{},
		profile:    icc.SRGBv4Profile,
	},
	{
		name:       "linear sRGB",
		white:      "D65",
		primaries:  Primaries{Chromaticity{0.64, 0.33}, Chromaticity{0.30, 0.60}, Chromaticity{0.15, 0.06}},
		companding: LinearCompanding{},
	},
	{
		name:       "Adobe RGB (1998)",
		white:      "D65",
		primaries:  Primaries{Chromaticity{0.64, 0.33}, Chromaticity{0.21, 0.71}, Chromaticity{0.15, 0.06}},
		companding: GammaCompanding{Gamma: 563.0 / 256.0},
	},
	{
		name:       "Apple RGB",
		white:      "D65",
		primaries:  Primaries{Chromaticity{0.625, 0.34}, Chromaticity{0.28, 0.595}, Chromaticity{0.155, 0.07}},
		companding: GammaCompanding{Gamma: 1.8},
	},
	{
		name:       "ProPhoto RGB",
		white:      "D50",
		primaries:  Primaries{Chromaticity{0.7347, 0.2653}, Chromaticity{0.1596, 0.8404}, Chromaticity{0.0366, 0.0001}},
		companding: GammaCompanding{Gamma: 1.8},
	},
	{
		name:       "Wide Gamut RGB",
		white:      "D50",
		primaries:  Primaries{Chromaticity{0.735, 0.265}, Chromaticity{0.115, 0.826}, Chromaticity{0.157, 0.018}},
		companding: GammaCompanding{Gamma: 2.2},
	},
	{
		name:       "ECI RGB v2",
		white:      "D50",
		primaries:  Primaries{Chromaticity{0.67, 0.33}, Chromaticity{0.21, 0.71}, Chromaticity{0.14, 0.08}},
		companding: LStarCompanding{},
	},
	{
		name:       "CIE RGB",
		white:      "E",
		primaries:  Primaries{Chromaticity{0.735, 0.265}, Chromaticity{0.274, 0.717}, Chromaticity{0.167, 0.009}},
		companding: GammaCompanding{Gamma: 2.2},
	},
}
