/*
 * interfaces.go, part of qclog.
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

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice of strings resulting from the current call. An empty string adds nothing.
}

// LogFileError is the interface for errors related to a given log file.
type LogFileError interface {
	Error
	Critical() bool
	FileName() string
}

//Modes

//Mode is a molecular degree of freedom extracted from a log. It is
//implemented by Translation, LinearRotor, NonlinearRotor and HarmonicOscillator.
type Mode interface {
	ModeName() string
}

//Rotor is a Mode describing the external rotation of a molecule.
type Rotor interface {
	Mode
	SymmetryNumber() int
}

//Collaborators

//EnergyChecker examines the (Hartree) energies of a potential energy scan
//read from the file at path, and reports whether they look consistent,
//i.e. whether the scanned species is the lowest energy conformer.
type EnergyChecker interface {
	Check(path string, energies []float64) bool
}
