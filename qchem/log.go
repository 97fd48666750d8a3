/*
 * log.go, part of qclog.
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

//Package qchem reads the output logs of the Q-Chem program.
//
//Each Load method opens the log, reads what it needs and closes it
//before returning. A Log has no parse state, so its methods can be
//called in any order, any number of times, and from several goroutines,
//once its logger and checker are set.
package qchem

import (
	"strconv"
	"strings"

	"github.com/rmera/qclog"
	"github.com/rmera/qclog/textscan"
	"go.uber.org/zap"
)

//Section banners and markers of Q-Chem logs.
const (
	geometryBanner     = "Standard Nuclear Orientation"
	geometryDelimiter  = "----------------------------------------------------"
	geometryHeader     = 3 //lines from the banner to the first atom
	completionBanner   = "Total job time:"
	moleculeBanner     = "$molecule"
	vibrationalBanner  = "VIBRATIONAL ANALYSIS"
	frequenciesBanner  = "VIBRATIONAL FREQUENCIES (CM**-1)"
	frequencyMarker    = " Frequency:"
	thermoBanner       = "STANDARD THERMODYNAMIC QUANTITIES AT"
	massMarker         = "Molecular Mass:"
	inertiaMarker      = "Eigenvalues --"
	symmetryMarker     = "Rotational Symmetry Number is"
	endBanner          = "Thank you very much for using Q-Chem."
	energyMarker       = "Final energy is"
	zpeMarker          = "Zero point vibrational energy"
	scanBanner         = "Summary of potential scan:"
	scanDelimiter      = "-----------------"
	scfFailure         = "SCF failed to converge"
	hessianColumns     = 6 //columns per band of the Hessian block
	energyField        = 3
	zpeField           = 4
	massField          = 2
	negFrequencyField  = 1
	geometrySymbol     = 1
	geometryFirstCoord = 2
)

var hessianBanners = []string{"Final Hessian.", "Hessian of the SCF Energy"}

//Log is a Q-Chem output file.
type Log struct {
	path    string
	logger  *zap.Logger
	checker qclog.EnergyChecker
}

//NewLog returns a Log for the Q-Chem output at path. The file is not
//opened until a Load method is called.
func NewLog(path string) *Log {
	return &Log{path: path, logger: zap.NewNop()}
}

//Path returns the location of the log.
func (L *Log) Path() string { return L.path }

//SetLogger sets the logger that receives the diagnostics of the readers.
//A nil logger discards them.
func (L *Log) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	L.logger = logger
}

//SetChecker sets the collaborator used by LoadScanEnergies to check the
//scan energies. By default a qclog.LowestConformerCheck using the Log's
//logger is used.
func (L *Log) SetChecker(c qclog.EnergyChecker) {
	L.checker = c
}

func (L *Log) energyChecker() qclog.EnergyChecker {
	if L.checker != nil {
		return L.checker
	}
	return &qclog.LowestConformerCheck{Logger: L.logger}
}

func (L *Log) log() *zap.Logger {
	return L.logger.With(zap.String("log", L.path))
}

func (L *Log) open(caller string) (*textscan.Scanner, error) {
	S, err := textscan.Open(L.path)
	if err != nil {
		return nil, qclog.ErrDecorate(err, caller)
	}
	return S, nil
}

//field parses the ith whitespace-separated token of line as a float.
func (L *Log) field(line string, i int, caller string) (float64, error) {
	f := strings.Fields(line)
	if i >= len(f) {
		return 0, qclog.NewError(qclog.MalformedLine, "expected at least "+strconv.Itoa(i+1)+" fields in '"+strings.TrimSpace(line)+"'", L.path, caller)
	}
	v, err := strconv.ParseFloat(f[i], 64)
	if err != nil {
		return 0, qclog.WrapError(qclog.MalformedLine, err, L.path, caller)
	}
	return v, nil
}

//floats parses all the tokens of fields as floats.
func (L *Log) floats(fields []string, caller string) ([]float64, error) {
	ret := make([]float64, 0, len(fields))
	for _, v := range fields {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, qclog.WrapError(qclog.MalformedLine, err, L.path, caller)
		}
		ret = append(ret, f)
	}
	return ret, nil
}
