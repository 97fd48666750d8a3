/*
 * summary.go, part of qclog.
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
	"errors"

	"github.com/rmera/qclog"
)

//Summary collects everything that can be read from a log. Facets that
//a log may legitimately lack are nil when absent.
type Summary struct {
	Path               string
	NAtoms             int
	Geometry           *qclog.Geometry
	Hessian            *qclog.Hessian
	Conformer          *qclog.Conformer
	Energy             float64 //J/mol
	ZPE                *float64
	Scan               *qclog.ScanProfile
	ImaginaryFrequency *float64
}

//Summary runs all the readers on the log. A missing geometry (or an
//incomplete job) or a missing energy are errors. A missing Hessian,
//zero-point energy, scan or imaginary frequency are not.
func (L *Log) Summary(o ConformerOptions) (*Summary, error) {
	var err error
	R := &Summary{Path: L.path}
	if R.NAtoms, err = L.NumberOfAtoms(); err != nil {
		return nil, qclog.ErrDecorate(err, "Summary")
	}
	if R.Geometry, err = L.LoadGeometry(); err != nil {
		return nil, qclog.ErrDecorate(err, "Summary")
	}
	if R.Energy, err = L.LoadEnergy(); err != nil {
		return nil, qclog.ErrDecorate(err, "Summary")
	}
	if R.Hessian, err = L.LoadForceConstantMatrix(); err != nil {
		return nil, qclog.ErrDecorate(err, "Summary")
	}
	if R.Conformer, err = L.LoadConformer(o); err != nil {
		return nil, qclog.ErrDecorate(err, "Summary")
	}
	zpe, err := L.LoadZeroPointEnergy()
	switch {
	case err == nil:
		R.ZPE = &zpe
	case !errors.Is(err, qclog.ErrZpeNotFound):
		return nil, qclog.ErrDecorate(err, "Summary")
	}
	R.Scan, err = L.LoadScanEnergies()
	if err != nil && !errors.Is(err, qclog.ErrScanNotFound) {
		return nil, qclog.ErrDecorate(err, "Summary")
	}
	freq, err := L.LoadNegativeFrequency()
	switch {
	case err == nil:
		R.ImaginaryFrequency = &freq
	case !errors.Is(err, qclog.ErrNoImaginaryFrequency):
		return nil, qclog.ErrDecorate(err, "Summary")
	}
	return R, nil
}
