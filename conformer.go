/*
 * conformer.go, part of qclog.
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

//Conformer contains the degrees of freedom of a molecule read from a
//frequency calculation.
type Conformer struct {
	E0               float64 //electronic energy, J/mol, without zero-point energy
	SpinMultiplicity int
	OpticalIsomers   int
	Modes            []Mode //translation, rotor and vibrations, in that order, when present
}

//Translation returns the translational mode of C, or nil if there is none.
func (C *Conformer) Translation() *Translation {
	for _, m := range C.Modes {
		if t, ok := m.(*Translation); ok {
			return t
		}
	}
	return nil
}

//Rotor returns the external rotor of C, or nil if there is none.
func (C *Conformer) Rotor() Rotor {
	for _, m := range C.Modes {
		if r, ok := m.(Rotor); ok {
			return r
		}
	}
	return nil
}

//Vibrations returns the harmonic oscillator of C, or nil if there is none.
func (C *Conformer) Vibrations() *HarmonicOscillator {
	for _, m := range C.Modes {
		if h, ok := m.(*HarmonicOscillator); ok {
			return h
		}
	}
	return nil
}
