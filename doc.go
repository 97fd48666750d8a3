/*
 * doc.go, part of qclog.
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

//Package qclog holds the data extracted from the output logs of quantum
//chemistry programs: geometries, Cartesian force-constant matrices,
//the degrees of freedom of a conformer (translation, rotation, vibration),
//energies and relaxed potential energy scans.
//
//The types here are plain values. They are built by the readers in the
//subpackages (see qclog/qchem) from a single pass over a log and are not
//modified afterwards. Units are SI or chemistry-customary, and are stated
//for every field: energies in J/mol, force constants in J/m^2, masses in
//amu, distances in Angstrom, moments of inertia in amu*A^2 and
//frequencies in cm^-1.
package qclog
