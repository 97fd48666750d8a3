/*
 * conversion.go, part of qclog.
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

//This provides useful conversion factors and other constants

//Physical constants (CODATA 2014, SI)
const (
	Hartree    = 4.359744650e-18  //Hartree energy in J
	BohrRadius = 5.2917721067e-11 //in m
	Avogadro   = 6.022140857e23   //in 1/mol
)

//Conversions
const (
	Kcal2J         = 4184.0                              //kcal/mol to J/mol
	KJ2J           = 1000.0                              //kJ/mol to J/mol
	Bohr2Angstrom  = BohrRadius / 1e-10                  //Bohr to Angstrom
	Hartree2JMol   = Hartree * Avogadro                  //Hartree/particle to J/mol
	HartreeBohr2SI = Hartree / (BohrRadius * BohrRadius) //Hartree/Bohr^2 to J/m^2
)
