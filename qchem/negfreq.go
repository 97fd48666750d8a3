/*
 * negfreq.go, part of qclog.
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
	"github.com/rmera/qclog"
)

//LoadNegativeFrequency returns the imaginary frequency (as a negative
//number, in cm^-1) of a transition state frequency calculation. It is
//the first frequency printed in the log.
func (L *Log) LoadNegativeFrequency() (float64, error) {
	S, err := L.open("LoadNegativeFrequency")
	if err != nil {
		return 0, err
	}
	line, _, ok := S.Find(frequencyMarker)
	if !ok {
		return 0, qclog.NewError(qclog.NoImaginaryFrequency, "no frequencies in the log", L.path, "LoadNegativeFrequency")
	}
	f, err := L.field(line, negFrequencyField, "LoadNegativeFrequency")
	if err != nil {
		return 0, err
	}
	if f >= 0 {
		return 0, qclog.NewError(qclog.NoImaginaryFrequency, "unable to find imaginary frequency in the log", L.path, "LoadNegativeFrequency")
	}
	return f, nil
}
