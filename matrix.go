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
	"math"

	"golang.org/x/image/math/f64"
)

// The matrices in this package are stored in row-major order, so that
// m[3*i+j] is the entry in row i and column j.

var errSingular = errors.New("matrix is singular")

func mulMat3Vec(m *f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

func mulMat3(a, b *f64.Mat3) f64.Mat3 {
	var res f64.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[3*i+k] * b[3*k+j]
			}
			res[3*i+j] = sum
		}
	}
	return res
}

func det3(m *f64.Mat3) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// invertMat3 computes the inverse using the adjugate matrix.
func invertMat3(m *f64.Mat3) (f64.Mat3, error) {
	d := det3(m)
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return f64.Mat3{}, errSingular
	}
	return f64.Mat3{
		(m[4]*m[8] - m[5]*m[7]) / d,
		(m[2]*m[7] - m[1]*m[8]) / d,
		(m[1]*m[5] - m[2]*m[4]) / d,
		(m[5]*m[6] - m[3]*m[8]) / d,
		(m[0]*m[8] - m[2]*m[6]) / d,
		(m[2]*m[3] - m[0]*m[5]) / d,
		(m[3]*m[7] - m[4]*m[6]) / d,
		(m[1]*m[6] - m[0]*m[7]) / d,
		(m[0]*m[4] - m[1]*m[3]) / d,
	}, nil
}

// identityError returns the largest deviation of a·b from the identity.
func identityError(a, b *f64.Mat3) float64 {
	p := mulMat3(a, b)
	var worst float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			worst = max(worst, math.Abs(p[3*i+j]-want))
		}
	}
	return worst
}
