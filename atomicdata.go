/*
 * atomicdata.go, part of qclog.
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
	"strings"
)

type element struct {
	number int
	mass   float64 //most abundant isotope, in amu
}

//A map for assigning atomic number and isotopic mass to elements.
//Masses are those of the most abundant isotope, which is what the
//QM programs use for the thermochemistry unless told otherwise.
var symbolElement = map[string]element{
	"H":  {1, 1.00782503207},
	"D":  {1, 2.0141017778},
	"T":  {1, 3.0160492777},
	"He": {2, 4.00260325415},
	"Li": {3, 7.016004548},
	"Be": {4, 9.012182201},
	"B":  {5, 11.009305406},
	"C":  {6, 12.0},
	"N":  {7, 14.00307400478},
	"O":  {8, 15.99491461956},
	"F":  {9, 18.998403224},
	"Ne": {10, 19.99244017542},
	"Na": {11, 22.98976966},
	"Mg": {12, 23.985041699},
	"Al": {13, 26.981538627},
	"Si": {14, 27.97692653246},
	"P":  {15, 30.973761629},
	"S":  {16, 31.972070999},
	"Cl": {17, 34.968852682},
	"Ar": {18, 39.96238312251},
	"K":  {19, 38.963706679},
	"Ca": {20, 39.962590983},
	"Sc": {21, 44.955911909},
	"Ti": {22, 47.947946281},
	"V":  {23, 50.943959507},
	"Cr": {24, 51.940507472},
	"Mn": {25, 54.938045141},
	"Fe": {26, 55.934937475},
	"Co": {27, 58.933195048},
	"Ni": {28, 57.935342907},
	"Cu": {29, 62.929597474},
	"Zn": {30, 63.929142222},
	"Ga": {31, 68.925573587},
	"Ge": {32, 73.921177767},
	"As": {33, 74.921596478},
	"Se": {34, 79.916521271},
	"Br": {35, 78.918337087},
	"Kr": {36, 83.911506687},
	"Rb": {37, 84.911789737},
	"Sr": {38, 87.905612124},
	"Y":  {39, 88.905848295},
	"Zr": {40, 89.904704416},
	"Nb": {41, 92.906378058},
	"Mo": {42, 97.905408169},
	"Tc": {43, 97.907216},
	"Ru": {44, 101.904349312},
	"Rh": {45, 102.905504292},
	"Pd": {46, 105.903485715},
	"Ag": {47, 106.90509682},
	"Cd": {48, 113.90335854},
	"In": {49, 114.903878484},
	"Sn": {50, 119.902194676},
	"Sb": {51, 120.903815686},
	"Te": {52, 129.906224399},
	"I":  {53, 126.904472681},
	"Xe": {54, 131.904153457},
}

//normalizeSymbol turns things like "CL" or "cl" into "Cl".
func normalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if len(symbol) == 0 {
		return symbol
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

//ElementData returns the atomic number and the isotopic mass (amu) of
//the element with the given symbol. The symbol is case-insensitive.
func ElementData(symbol string) (int, float64, error) {
	e, ok := symbolElement[normalizeSymbol(symbol)]
	if !ok {
		return 0, 0, NewError(UnknownElement, fmt.Sprintf("no data for element %q", symbol), "", "ElementData")
	}
	return e.number, e.mass, nil
}
