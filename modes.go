/*
 * modes.go, part of qclog.
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
	"fmt"
	"math"
	"sort"
)

//ZeroInertia is the largest principal moment of inertia (in atomic units,
//amu*Bohr^2) considered to be zero when classifying a rotor.
const ZeroInertia = 1e-6

//Translation describes the external translation of a molecule as an ideal gas.
type Translation struct {
	Mass float64 //amu
}

func (T *Translation) ModeName() string { return "IdealGasTranslation" }

func (T *Translation) String() string {
	return fmt.Sprintf("IdealGasTranslation(mass=%g amu)", T.Mass)
}

//LinearRotor describes the external rotation of a linear molecule.
type LinearRotor struct {
	Inertia  float64 //amu*A^2
	Symmetry int
}

func (L *LinearRotor) ModeName() string { return "LinearRotor" }

func (L *LinearRotor) SymmetryNumber() int { return L.Symmetry }

func (L *LinearRotor) String() string {
	return fmt.Sprintf("LinearRotor(inertia=%g amu*A^2, symmetry=%d)", L.Inertia, L.Symmetry)
}

//NonlinearRotor describes the external rotation of a nonlinear molecule.
type NonlinearRotor struct {
	Inertia  [3]float64 //principal moments, amu*A^2
	Symmetry int
}

func (N *NonlinearRotor) ModeName() string { return "NonlinearRotor" }

func (N *NonlinearRotor) SymmetryNumber() int { return N.Symmetry }

func (N *NonlinearRotor) String() string {
	return fmt.Sprintf("NonlinearRotor(inertia=[%g %g %g] amu*A^2, symmetry=%d)", N.Inertia[0], N.Inertia[1], N.Inertia[2], N.Symmetry)
}

//HarmonicOscillator holds the real vibrational frequencies of a molecule.
type HarmonicOscillator struct {
	Frequencies []float64 //cm^-1
}

func (H *HarmonicOscillator) ModeName() string { return "HarmonicOscillator" }

func (H *HarmonicOscillator) String() string {
	return fmt.Sprintf("HarmonicOscillator(%d frequencies)", len(H.Frequencies))
}

//ClassifyRotor builds the rotor for the principal moments of inertia
//eigenvalues, given in atomic units (amu*Bohr^2) as QM programs print them.
//If the smallest moment is zero, or fewer than 3 moments are given, the
//molecule is linear: the zero moments are dropped and the rotor takes
//the geometric mean of the (at most two) largest remaining ones. Otherwise
//the rotor is nonlinear. A symmetry number smaller than 1 is taken as 1.
//It returns nil if no moment is given, or if all of them are zero.
func ClassifyRotor(eigenvalues []float64, symmetry int) Rotor {
	if symmetry < 1 {
		symmetry = 1
	}
	I := make([]float64, len(eigenvalues))
	copy(I, eigenvalues)
	sort.Float64s(I)
	conv := Bohr2Angstrom * Bohr2Angstrom
	if len(I) >= 3 && I[0] > ZeroInertia {
		r := &NonlinearRotor{Symmetry: symmetry}
		for i, v := range I[len(I)-3:] {
			r.Inertia[i] = v * conv
		}
		return r
	}
	nonzero := make([]float64, 0, 2)
	for _, v := range I {
		if v > ZeroInertia {
			nonzero = append(nonzero, v*conv)
		}
	}
	switch len(nonzero) {
	case 0:
		return nil
	case 1:
		return &LinearRotor{Inertia: nonzero[0], Symmetry: symmetry}
	}
	nonzero = nonzero[len(nonzero)-2:]
	return &LinearRotor{Inertia: math.Sqrt(nonzero[0] * nonzero[1]), Symmetry: symmetry}
}
