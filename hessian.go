/*
 * hessian.go, part of qclog.
 *
 *
 * Copyright 2024 The qclog authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package qclog

import (
	"gonum.org/v1/gonum/mat"
)

//Hessian is the Cartesian force constant matrix of a molecule, in J/m^2.
//Row and column 3*i+k correspond to the Cartesian axis k (x, y, z) of the
//ith atom of the associated Geometry.
//The matrix is kept as printed by the QM program. No symmetrization is
//performed; use Symmetric to obtain a symmetric matrix.
type Hessian struct {
	*mat.Dense
}

//NewHessian returns a zero Hessian for natoms atoms. It panics if natoms
//is not positive.
func NewHessian(natoms int) *Hessian {
	if natoms <= 0 {
		panic("qclog: NewHessian needs a positive number of atoms")
	}
	n := 3 * natoms
	return &Hessian{mat.NewDense(n, n, nil)}
}

//NAtoms returns the number of atoms the matrix describes.
func (H *Hessian) NAtoms() int {
	r, _ := H.Dims()
	return r / 3
}

//Symmetric returns a symmetric matrix built from the lower triangle
//(diagonal included) of H.
func (H *Hessian) Symmetric() *mat.SymDense {
	n, _ := H.Dims()
	ret := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			ret.SetSym(i, j, H.At(i, j))
		}
	}
	return ret
}

//Asymmetry returns the largest absolute difference between H[i][j] and H[j][i].
func (H *Hessian) Asymmetry() float64 {
	n, _ := H.Dims()
	var max float64
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			d := H.At(i, j) - H.At(j, i)
			if d < 0 {
				d = -d
			}
			if d > max {
				max = d
			}
		}
	}
	return max
}
