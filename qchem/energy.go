/*
 * energy.go, part of qclog.
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
	"go.uber.org/zap"
)

//lastValue returns the ith field of the last line of the log that
//contains marker. found is false if no line does.
func (L *Log) lastValue(marker string, i int, caller string) (v float64, found bool, err error) {
	S, err := L.open(caller)
	if err != nil {
		return 0, false, err
	}
	line, _, ok := S.FindLast(marker)
	if !ok {
		return 0, false, nil
	}
	v, err = L.field(line, i, caller)
	return v, err == nil, err
}

//LoadEnergy returns the last electronic energy in the log, in J/mol.
//The zero-point energy is not included.
func (L *Log) LoadEnergy() (float64, error) {
	E, found, err := L.lastValue(energyMarker, energyField, "LoadEnergy")
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, qclog.NewError(qclog.EnergyNotFound, "unable to find energy in the log", L.path, "LoadEnergy")
	}
	E *= qclog.Hartree2JMol
	L.log().Debug("energy", zap.Float64("J_mol", E))
	return E, nil
}

//LoadZeroPointEnergy returns the last zero-point energy in the log, in
//J/mol, unscaled. Scaling it by a frequency factor is up to the caller.
func (L *Log) LoadZeroPointEnergy() (float64, error) {
	ZPE, found, err := L.lastValue(zpeMarker, zpeField, "LoadZeroPointEnergy")
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, qclog.NewError(qclog.ZpeNotFound, "unable to find zero-point energy in the log", L.path, "LoadZeroPointEnergy")
	}
	ZPE *= qclog.Kcal2J //Q-Chem prints it in kcal/mol
	L.log().Debug("zero-point energy", zap.Float64("J_mol", ZPE))
	return ZPE, nil
}
