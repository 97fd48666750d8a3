/*
 * hessian.go, part of qclog.
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
	"fmt"
	"strings"

	"github.com/rmera/qclog"
	"go.uber.org/zap"
)

//LoadForceConstantMatrix returns the last Cartesian force constant
//matrix in the log, in J/m^2. If the log has no Hessian block (which
//is normal for jobs that are not frequency calculations) it returns nil
//and no error.
//
//Q-Chem prints the matrix in bands of 6 columns. Each band has a header
//row and then one row per matrix row, with the row index followed by
//up to 6 values.
func (L *Log) LoadForceConstantMatrix() (*qclog.Hessian, error) {
	S, err := L.open("LoadForceConstantMatrix")
	if err != nil {
		return nil, err
	}
	natoms := countAtoms(S)
	S.Rewind()
	if _, _, ok := S.FindLast(hessianBanners...); !ok {
		L.log().Debug("no force constant matrix in log")
		return nil, nil
	}
	if natoms == 0 {
		L.log().Debug("force constant matrix found, but no geometry to size it")
		return nil, nil
	}
	H := qclog.NewHessian(natoms)
	n := 3 * natoms
	bands := (n + hessianColumns - 1) / hessianColumns
	for i := 0; i < bands; i++ {
		S.Skip(1) //header row
		for j := 0; j < n; j++ {
			line, ok := S.Next()
			if !ok {
				return nil, qclog.NewError(qclog.MalformedLine, "force constant matrix truncated", L.path, "LoadForceConstantMatrix")
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, qclog.NewError(qclog.MalformedLine, "bad force constant line '"+strings.TrimSpace(line)+"'", L.path, "LoadForceConstantMatrix")
			}
			vals, err := L.floats(fields[1:], "LoadForceConstantMatrix")
			if err != nil {
				return nil, err
			}
			for k, v := range vals {
				col := i*hessianColumns + k
				if k >= hessianColumns || col >= n {
					return nil, qclog.NewError(qclog.MalformedLine, fmt.Sprintf("force constant column %d out of range for %d atoms", col+1, natoms), L.path, "LoadForceConstantMatrix")
				}
				H.Set(j, col, v)
			}
		}
	}
	H.Dense.Scale(qclog.HartreeBohr2SI, H.Dense)
	L.log().Debug("read force constant matrix", zap.Int("atoms", natoms), zap.Float64("asymmetry", H.Asymmetry()))
	return H, nil
}
