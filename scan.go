/*
 * scan.go, part of qclog.
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
	"math"

	"gonum.org/v1/gonum/floats"
)

//ScanProfile is a relaxed potential energy scan along one internal
//coordinate. Energies are in J/mol, relative to the lowest point of the
//scan. Angles are in radians.
type ScanProfile struct {
	Angles   []float64
	Energies []float64
}

//NewScanProfile builds a profile from the absolute energies (Hartree) of
//the scan points. The energies are taken relative to their minimum and
//converted to J/mol. The angles are an evenly spaced grid spanning
//[0, 2pi], both ends included, with one point per energy. Returns nil for
//an empty slice. hartrees is not modified.
func NewScanProfile(hartrees []float64) *ScanProfile {
	n := len(hartrees)
	if n == 0 {
		return nil
	}
	e := make([]float64, n)
	copy(e, hartrees)
	floats.AddConst(-floats.Min(e), e)
	floats.Scale(Hartree2JMol, e)
	return &ScanProfile{Angles: AngleGrid(n), Energies: e}
}

//AngleGrid returns n evenly spaced angles from 0 to 2pi, both included.
//For n==1 it returns only 0.
func AngleGrid(n int) []float64 {
	if n <= 0 {
		return nil
	}
	ret := make([]float64, n)
	if n == 1 {
		return ret
	}
	step := 2 * math.Pi / float64(n-1)
	for i := range ret {
		ret[i] = step * float64(i)
	}
	ret[n-1] = 2 * math.Pi
	return ret
}

//Len returns the number of points in the profile.
func (S *ScanProfile) Len() int {
	if S == nil {
		return 0
	}
	return len(S.Energies)
}

//Max returns the barrier of the profile, i.e. its highest energy (J/mol).
func (S *ScanProfile) Max() float64 {
	if S.Len() == 0 {
		return 0
	}
	return floats.Max(S.Energies)
}
