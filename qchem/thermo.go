/*
 * thermo.go, part of qclog.
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
	"strings"

	"github.com/rmera/qclog"
	"github.com/rmera/qclog/textscan"
	"go.uber.org/zap"
)

//ConformerOptions are the settings for LoadConformer.
type ConformerOptions struct {
	//External symmetry number. Q-Chem's guess is not always right, so
	//the one given here is used unless SymmetryFromLog is set.
	//0 means 1, unless it is read from the log.
	Symmetry         int
	SpinMultiplicity int //0 means read it from the $molecule section
	OpticalIsomers   int //0 means 1
	SymmetryFromLog  bool
	Label            string //only used in diagnostics
}

//thermoSection is what is read from one vibrational analysis section.
type thermoSection struct {
	frequencies []float64
	hasFreqs    bool
	mass        float64
	hasMass     bool
	inertia     []float64
	symmetry    int
}

//LoadConformer reads the degrees of freedom from the vibrational
//analysis of a Q-Chem frequency calculation. If the log has several
//such sections, the last one is used. The energy of the conformer is the
//last final energy in the log, or 0 if there is none.
func (L *Log) LoadConformer(o ConformerOptions) (*qclog.Conformer, error) {
	S, err := L.open("LoadConformer")
	if err != nil {
		return nil, err
	}
	logger := L.log()
	if o.Label != "" {
		logger = logger.With(zap.String("conformer", o.Label))
	}
	spin := o.SpinMultiplicity
	var sec *thermoSection
	for line, ok := S.Next(); ok; line, ok = S.Next() {
		switch {
		case strings.Contains(line, moleculeBanner) && spin == 0:
			next, ok := S.Next()
			if f := strings.Fields(next); ok && len(f) == 2 {
				s, err := L.field(next, 1, "LoadConformer")
				if err != nil {
					return nil, err
				}
				spin = int(s)
				logger.Debug("assigned spin multiplicity", zap.Int("spin", spin))
			}
		case strings.Contains(line, vibrationalBanner):
			sec, err = L.thermo(S, o.Symmetry, o.SymmetryFromLog, logger)
			if err != nil {
				return nil, err
			}
		}
	}
	C := &qclog.Conformer{SpinMultiplicity: spin, OpticalIsomers: o.OpticalIsomers}
	if C.OpticalIsomers <= 0 {
		C.OpticalIsomers = 1
	}
	if sec != nil {
		C.Modes = sec.modes(logger)
	}
	E0, err := L.LoadEnergy()
	switch {
	case err == nil:
		C.E0 = E0
	case errors.Is(err, qclog.ErrEnergyNotFound):
		logger.Debug("no final energy in log, conformer energy set to 0")
	default:
		return nil, qclog.ErrDecorate(err, "LoadConformer")
	}
	return C, nil
}

//LoadFrequencies returns the real vibrational frequencies (cm^-1) of the
//last vibrational analysis in the log. A leading imaginary frequency
//is dropped.
func (L *Log) LoadFrequencies() ([]float64, error) {
	S, err := L.open("LoadFrequencies")
	if err != nil {
		return nil, err
	}
	var sec *thermoSection
	for _, _, ok := S.Find(vibrationalBanner); ok; _, _, ok = S.Find(vibrationalBanner) {
		sec, err = L.thermo(S, 0, false, L.log())
		if err != nil {
			return nil, err
		}
	}
	if sec == nil || !sec.hasFreqs {
		return nil, qclog.NewError(qclog.FrequenciesNotFound, "no vibrational frequencies in the log", L.path, "LoadFrequencies")
	}
	return sec.frequencies, nil
}

//thermo reads a vibrational analysis section, from the line after its
//banner to the end banner of Q-Chem (or the end of the file).
func (L *Log) thermo(S *textscan.Scanner, symmetry int, symFromLog bool, logger *zap.Logger) (*thermoSection, error) {
	sec := &thermoSection{symmetry: symmetry}
	for line, ok := S.Next(); ok; line, ok = S.Next() {
		switch {
		case strings.Contains(line, endBanner):
			return sec, nil
		case strings.Contains(line, vibrationalBanner):
			//the next section starts here
			S.Seek(S.Pos() - 1)
			return sec, nil
		case strings.Contains(line, frequenciesBanner):
			freqs, err := L.frequencyBlock(S)
			if err != nil {
				return nil, err
			}
			//Only expected in transition states. In a stable species it means
			//the structure is not converged, but it is dropped all the same.
			if len(freqs) > 0 && freqs[0] < 0 {
				logger.Debug("dropping imaginary frequency", zap.Float64("frequency", freqs[0]))
				freqs = freqs[1:]
			}
			for _, f := range freqs {
				if f < 0 {
					logger.Warn("imaginary frequency kept after the leading one", zap.Float64("frequency", f))
				}
			}
			sec.frequencies = freqs
			sec.hasFreqs = true
		case strings.Contains(line, massMarker):
			m, err := L.field(line, massField, "LoadConformer")
			if err != nil {
				return nil, err
			}
			sec.mass = m
			sec.hasMass = true
		case strings.Contains(line, inertiaMarker):
			_, after, _ := strings.Cut(line, inertiaMarker)
			I, err := L.floats(strings.Fields(after), "LoadConformer")
			if err != nil {
				return nil, err
			}
			if len(I) > 3 {
				I = I[len(I)-3:]
			}
			sec.inertia = I
		case strings.Contains(line, symmetryMarker) && symFromLog:
			s, err := L.field(line, len(strings.Fields(line))-1, "LoadConformer")
			if err != nil {
				return nil, err
			}
			sec.symmetry = int(s)
			logger.Debug("rotational symmetry number read from log", zap.Int("symmetry", sec.symmetry))
		}
	}
	return sec, nil
}

//frequencyBlock collects the frequencies from the lines following the
//frequencies banner, up to the thermodynamic quantities banner. Each
//frequency line has 1 to 3 values.
func (L *Log) frequencyBlock(S *textscan.Scanner) ([]float64, error) {
	var freqs []float64
	for line, ok := S.Next(); ok; line, ok = S.Next() {
		if strings.Contains(line, thermoBanner) {
			break
		}
		if !strings.Contains(line, frequencyMarker) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 4 {
			return nil, qclog.NewError(qclog.MalformedLine, "bad frequency line '"+strings.TrimSpace(line)+"'", L.path, "LoadConformer")
		}
		f, err := L.floats(fields[1:], "LoadConformer")
		if err != nil {
			return nil, err
		}
		freqs = append(freqs, f...)
	}
	return freqs, nil
}

//modes builds the translation, rotor and vibrations of the section.
func (T *thermoSection) modes(logger *zap.Logger) []qclog.Mode {
	var modes []qclog.Mode
	if T.hasMass {
		modes = append(modes, &qclog.Translation{Mass: T.mass})
	}
	if len(T.inertia) > 0 {
		logger.Debug("principal moments of inertia (amu*bohr^2)", zap.Float64s("inertia", T.inertia))
		if r := qclog.ClassifyRotor(T.inertia, T.symmetry); r != nil {
			logger.Debug("rotor", zap.String("type", r.ModeName()), zap.Int("symmetry", r.SymmetryNumber()))
			modes = append(modes, r)
		}
	}
	if T.hasFreqs {
		modes = append(modes, &qclog.HarmonicOscillator{Frequencies: T.frequencies})
	}
	return modes
}
