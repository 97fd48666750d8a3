/*
 * atoms.go, part of qclog.
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

package qchem

import (
	"strings"

	"github.com/rmera/qclog/textscan"
)

//NumberOfAtoms returns the number of atoms in the first geometry
//block of the log. It returns 0 if the log has no geometry block,
//which callers must not take as a valid molecule.
func (L *Log) NumberOfAtoms() (int, error) {
	S, err := L.open("NumberOfAtoms")
	if err != nil {
		return 0, err
	}
	return countAtoms(S), nil
}

//countAtoms counts the rows of the first geometry block found from
//the cursor of S on.
func countAtoms(S *textscan.Scanner) int {
	if _, _, ok := S.Find(geometryBanner); !ok {
		return 0
	}
	S.Skip(geometryHeader - 1)
	n := 0
	for line, ok := S.Next(); ok; line, ok = S.Next() {
		if strings.Contains(line, geometryDelimiter) {
			break
		}
		n++
	}
	return n
}
