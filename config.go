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
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"
)

// Config is the YAML representation of additional illuminants and working
// spaces, as read by [LoadRGBWorkingSpaces].
type Config struct {
	Illuminants []IlluminantConfig      `yaml:"illuminants"`
	Spaces      []RGBWorkingSpaceConfig `yaml:"spaces"`
}

// IlluminantConfig describes an illuminant.  If Degree is zero, the 2°
// observer is assumed.
type IlluminantConfig struct {
	Name   string     `yaml:"name"`
	Degree int        `yaml:"degree,omitempty"`
	White  [3]float64 `yaml:"white"`
}

// RGBWorkingSpaceConfig describes an RGB working space.  Exactly one of
// Primaries and RGBToXYZ must be given.  If RGBToXYZ is given without
// XYZToRGB, the inverse matrix is computed.
//
// Companding is one of "srgb", "linear", "lstar" and "gamma".  The
// default is "linear".
type RGBWorkingSpaceConfig struct {
	Name       string           `yaml:"name"`
	Illuminant string           `yaml:"illuminant"`
	Degree     int              `yaml:"degree,omitempty"`
	Primaries  *PrimariesConfig `yaml:"primaries,omitempty"`
	RGBToXYZ   []float64        `yaml:"rgbToXYZ,omitempty"`
	XYZToRGB   []float64        `yaml:"xyzToRGB,omitempty"`
	Companding string           `yaml:"companding,omitempty"`
	Gamma      float64          `yaml:"gamma,omitempty"`
}

// PrimariesConfig gives the xy chromaticities of the three primaries.
type PrimariesConfig struct {
	Red   [2]float64 `yaml:"red"`
	Green [2]float64 `yaml:"green"`
	Blue  [2]float64 `yaml:"blue"`
}

// maxInverseError is the largest deviation from the identity matrix which
// is accepted silently for a user-supplied matrix pair.
const maxInverseError = 1e-6

// LoadRGBWorkingSpaces reads a YAML configuration from r and returns the
// standard working spaces (see [NewRGBWorkingSpaces]) extended by the
// illuminants and working spaces defined in the configuration.  An entry
// with the same name as a built-in entry replaces the built-in one.
func LoadRGBWorkingSpaces(r io.Reader) (*RGBWorkingSpaces, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse working space configuration: %w", err)
	}
	return cfg.Apply(NewRGBWorkingSpaces())
}

// Apply returns a copy of base, extended by the entries of the
// configuration.  The table base is not modified.
func (cfg *Config) Apply(base *RGBWorkingSpaces) (*RGBWorkingSpaces, error) {
	log := Logger()
	res := base.clone()

	for i, ic := range cfg.Illuminants {
		ill, err := ic.build()
		if err != nil {
			return nil, fmt.Errorf("illuminant %d: %w", i+1, err)
		}
		if _, exists := res.illuminants.Lookup(ill.name, ill.degree); exists {
			log.Debug("replacing illuminant", "name", ill.name, "degree", ill.degree)
		}
		res.illuminants.add(ill)
	}

	for i, sc := range cfg.Spaces {
		ws, err := sc.build(res.illuminants)
		if err != nil {
			return nil, fmt.Errorf("working space %d: %w", i+1, err)
		}
		if e := identityError(&ws.xyzToRGB, &ws.rgbToXYZ); e > maxInverseError {
			log.Warn("working space matrices are not inverse",
				"name", ws.name, "error", e)
		}
		if _, exists := res.Lookup(ws.name); exists {
			log.Debug("replacing working space", "name", ws.name)
		}
		res.add(ws)
	}

	return res, nil
}

func (ic *IlluminantConfig) build() (*Illuminant, error) {
	name := strings.TrimSpace(ic.Name)
	if name == "" {
		return nil, errors.New("missing name")
	}
	degree := ic.Degree
	if degree == 0 {
		degree = 2
	}
	white, err := NewXYZ(ic.White[0], ic.White[1], ic.White[2])
	if err != nil {
		return nil, fmt.Errorf("illuminant %q: %w", name, err)
	}
	return NewIlluminant(name, degree, white)
}

func (sc *RGBWorkingSpaceConfig) build(ill *Illuminants) (*RGBWorkingSpace, error) {
	name := strings.TrimSpace(sc.Name)
	if name == "" {
		return nil, errors.New("missing name")
	}
	degree := sc.Degree
	if degree == 0 {
		degree = 2
	}
	white, ok := ill.Lookup(sc.Illuminant, degree)
	if !ok {
		return nil, fmt.Errorf("working space %q: unknown illuminant %s/%d°",
			name, sc.Illuminant, degree)
	}

	companding, err := sc.companding()
	if err != nil {
		return nil, fmt.Errorf("working space %q: %w", name, err)
	}

	switch {
	case sc.Primaries != nil && sc.RGBToXYZ != nil:
		return nil, fmt.Errorf("working space %q: both primaries and matrix given", name)
	case sc.Primaries != nil:
		p := Primaries{
			Red:   Chromaticity{sc.Primaries.Red[0], sc.Primaries.Red[1]},
			Green: Chromaticity{sc.Primaries.Green[0], sc.Primaries.Green[1]},
			Blue:  Chromaticity{sc.Primaries.Blue[0], sc.Primaries.Blue[1]},
		}
		return NewRGBWorkingSpaceFromPrimaries(name, white, p, companding)
	case sc.RGBToXYZ != nil:
		rgbToXYZ, err := toMat3(sc.RGBToXYZ)
		if err != nil {
			return nil, fmt.Errorf("working space %q: rgbToXYZ: %w", name, err)
		}
		var xyzToRGB f64.Mat3
		if sc.XYZToRGB != nil {
			xyzToRGB, err = toMat3(sc.XYZToRGB)
			if err != nil {
				return nil, fmt.Errorf("working space %q: xyzToRGB: %w", name, err)
			}
		} else {
			xyzToRGB, err = invertMat3(&rgbToXYZ)
			if err != nil {
				return nil, fmt.Errorf("working space %q: %w", name, err)
			}
		}
		return NewRGBWorkingSpace(name, white, xyzToRGB, rgbToXYZ, companding)
	default:
		return nil, fmt.Errorf("working space %q: missing primaries or matrix", name)
	}
}

func (sc *RGBWorkingSpaceConfig) companding() (Companding, error) {
	switch strings.ToLower(strings.TrimSpace(sc.Companding)) {
	case "", "linear":
		return LinearCompanding{}, nil
	case "srgb":
		return SRGBCompanding{}, nil
	case "lstar", "l*":
		return LStarCompanding{}, nil
	case "gamma":
		if !(sc.Gamma > 0) || math.IsInf(sc.Gamma, 0) {
			return nil, fmt.Errorf("invalid gamma %g", sc.Gamma)
		}
		return GammaCompanding{Gamma: sc.Gamma}, nil
	default:
		return nil, fmt.Errorf("unknown companding %q", sc.Companding)
	}
}

func toMat3(v []float64) (f64.Mat3, error) {
	var m f64.Mat3
	if len(v) != len(m) {
		return m, fmt.Errorf("expected %d values, got %d", len(m), len(v))
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return m, fmt.Errorf("invalid matrix entry %g", x)
		}
		m[i] = x
	}
	return m, nil
}
