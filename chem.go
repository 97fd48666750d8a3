/*
 * chem.go, part of qclog.
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

	"gonum.org/v1/gonum/mat"
)

//Atom contains the information read from a log for one atom.
type Atom struct {
	Symbol string
	Number int        //atomic number
	Mass   float64    //isotopic mass, amu
	Coords [3]float64 //Cartesian position, Angstrom
}

//NewAtom builds an atom for the element symbol at the given coordinates,
//taking atomic number and mass from the element table.
func NewAtom(symbol string, coords [3]float64) (*Atom, error) {
	number, mass, err := ElementData(symbol)
	if err != nil {
		return nil, ErrDecorate(err, "NewAtom")
	}
	return &Atom{Symbol: normalizeSymbol(symbol), Number: number, Mass: mass, Coords: coords}, nil
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		return nil
	}
	r := *A
	return &r
}

func (A *Atom) String() string {
	return fmt.Sprintf("%-2s %12.6f %12.6f %12.6f", A.Symbol, A.Coords[0], A.Coords[1], A.Coords[2])
}

//Geometry is the ordered set of atoms of a molecule, as read from a log.
type Geometry struct {
	Atoms []*Atom
}

//Len returns the number of atoms.
func (G *Geometry) Len() int {
	if G == nil {
		return 0
	}
	return len(G.Atoms)
}

//Atom returns the ith atom.
func (G *Geometry) Atom(i int) *Atom {
	return G.Atoms[i]
}

//Coords returns the Nx3 matrix of Cartesian coordinates in Angstrom.
//The matrix is a copy, changes to it don't affect G. It returns nil for
//an empty geometry.
func (G *Geometry) Coords() *mat.Dense {
	if G.Len() == 0 {
		return nil
	}
	data := make([]float64, 0, 3*G.Len())
	for _, a := range G.Atoms {
		data = append(data, a.Coords[:]...)
	}
	return mat.NewDense(G.Len(), 3, data)
}

//Masses returns the isotopic masses of the atoms, in amu.
func (G *Geometry) Masses() []float64 {
	ret := make([]float64, G.Len())
	for i, a := range G.Atoms {
		ret[i] = a.Mass
	}
	return ret
}

//Numbers returns the atomic numbers of the atoms.
func (G *Geometry) Numbers() []int {
	ret := make([]int, G.Len())
	for i, a := range G.Atoms {
		ret[i] = a.Number
	}
	return ret
}

//Symbols returns the element symbols of the atoms.
func (G *Geometry) Symbols() []string {
	ret := make([]string, G.Len())
	for i, a := range G.Atoms {
		ret[i] = a.Symbol
	}
	return ret
}
