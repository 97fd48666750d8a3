/*
 * scan.go, part of qclog.
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

	"github.com/rmera/qclog"
	"go.uber.org/zap"
)

//LoadScanEnergies reads the summary of a potential energy scan and returns
//the profile, with energies in J/mol relative to the lowest point.
//The angles printed in the log are not used: the profile gets an evenly
//spaced grid over [0, 2pi], so the scan must have uniform steps.
//If the SCF failed to converge at some point, whatever was read before that
//is returned. The energies are checked with the Log's EnergyChecker.
func (L *Log) LoadScanEnergies() (*qclog.ScanProfile, error) {
	S, err := L.open("LoadScanEnergies")
	if err != nil {
		return nil, err
	}
	logger := L.log()
	var V []float64
	for line, ok := S.Next(); ok; line, ok = S.Next() {
		if strings.Contains(line, scfFailure) {
			logger.Debug("Q-Chem job did not complete: SCF failed to converge")
			break
		}
		if !strings.Contains(line, scanBanner) {
			continue
		}
		V = V[:0]
		for row, ok := S.Next(); ok; row, ok = S.Next() {
			if strings.Contains(row, scanDelimiter) {
				if len(V) == 0 {
					continue //the rule under the title
				}
				break
			}
			fields := strings.Fields(row)
			if len(fields) == 0 {
				break
			}
			e, err := L.field(row, 1, "LoadScanEnergies")
			if err != nil {
				return nil, err
			}
			V = append(V, e)
		}
	}
	if len(V) == 0 {
		return nil, qclog.NewError(qclog.ScanNotFound, "no potential scan summary in the log", L.path, "LoadScanEnergies")
	}
	logger.Debug("assuming the log is the output of a PES scan", zap.Int("points", len(V)))
	L.energyChecker().Check(L.path, V)
	return qclog.NewScanProfile(V), nil
}
