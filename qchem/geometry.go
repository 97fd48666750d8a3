/*
 * geometry.go, part of qclog.
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
	"github.com/rmera/qclog/textscan"
	"go.uber.org/zap"
)

//JobCompleted returns true if the log reports that the Q-Chem job
//finished. The completion banner is looked for from the end of the file.
func (L *Log) JobCompleted() (bool, error) {
	S, err := L.open("JobCompleted")
	if err != nil {
		return false, err
	}
	return completed(S), nil
}

//completed reports whether S holds the completion banner, looking
//from the end of the file.
func completed(S *textscan.Scanner) bool {
	_, _, ok := S.FindBackward(completionBanner)
	return ok
}

//LoadGeometry returns the last geometry (Standard Nuclear Orientation)
//in the log. The job must have completed: the last geometry of an
//interrupted optimization is meaningless, so an incomplete log
//gives a LogIncomplete error even if it contains geometries.
func (L *Log) LoadGeometry() (*qclog.Geometry, error) {
	S, err := L.open("LoadGeometry")
	if err != nil {
		return nil, err
	}
	if !completed(S) {
		return nil, qclog.NewError(qclog.LogIncomplete, "could not find a successfully completed Q-Chem job", L.path, "LoadGeometry")
	}
	L.log().Debug("found a successfully completed Q-Chem job")
	if _, _, ok := S.FindLast(geometryBanner); !ok {
		return nil, qclog.NewError(qclog.GeometryNotFound, "no geometry block in the log", L.path, "LoadGeometry")
	}
	S.Skip(geometryHeader - 1)
	G := new(qclog.Geometry)
	for line, ok := S.Next(); ok; line, ok = S.Next() {
		if strings.Contains(line, geometryDelimiter) {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < geometryFirstCoord+3 {
			return nil, qclog.NewError(qclog.MalformedLine, "bad geometry line '"+strings.TrimSpace(line)+"'", L.path, "LoadGeometry")
		}
		c, err := L.floats(fields[geometryFirstCoord:geometryFirstCoord+3], "LoadGeometry")
		if err != nil {
			return nil, err
		}
		at, err := qclog.NewAtom(fields[geometrySymbol], [3]float64{c[0], c[1], c[2]})
		if err != nil {
			return nil, qclog.NewError(qclog.UnknownElement, "no data for element '"+fields[geometrySymbol]+"'", L.path, "LoadGeometry")
		}
		G.Atoms = append(G.Atoms, at)
	}
	if G.Len() == 0 {
		return nil, qclog.NewError(qclog.GeometryNotFound, "unable to read atoms from the geometry block", L.path, "LoadGeometry")
	}
	L.log().Debug("read geometry", zap.Int("atoms", G.Len()))
	return G, nil
}
