/*
 * check.go, part of qclog.
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
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

//DefaultEnergyThreshold is the energy difference, in kJ/mol, above which
//the first point of a scan is considered not to be the lowest energy conformer.
const DefaultEnergyThreshold = 2.0

//LowestConformerCheck is the default EnergyChecker. It compares the first
//point of a scan, which is the conformer the scan started from, with the
//lowest point of the scan. If the difference is larger than
//Threshold (kJ/mol), the species is probably not in its lowest
//energy conformer, which can introduce large errors in rate
//coefficients computed from it. A warning is logged in that case.
type LowestConformerCheck struct {
	Threshold float64 //kJ/mol. If zero, DefaultEnergyThreshold is used.
	Logger    *zap.Logger
}

//Check implements EnergyChecker. energies are in Hartree. It returns false
//if the check fails.
func (L *LowestConformerCheck) Check(path string, energies []float64) bool {
	if len(energies) == 0 {
		return true
	}
	threshold := L.Threshold
	if threshold <= 0 {
		threshold = DefaultEnergyThreshold
	}
	diff := (energies[0] - floats.Min(energies)) * Hartree2JMol / KJ2J
	if diff < threshold {
		return true
	}
	if L.Logger != nil {
		L.Logger.Warn("species is not the lowest energy conformer",
			zap.String("log", filepath.Base(path)),
			zap.Float64("difference_kJ_mol", diff),
			zap.Float64("threshold_kJ_mol", threshold))
	}
	return false
}
