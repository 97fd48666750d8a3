/*
 * json.go, part of qclog.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/rmera/qclog"
	"github.com/rmera/qclog/qchem"
)

//A ready-to-serialize container for an atom.
type Atom struct {
	Symbol string
	Number int
	Mass   float64
	Coords []float64
}

//A ready-to-serialize container for a degree of freedom. Only the fields
//relevant to the Type are set.
type Mode struct {
	Type        string
	Mass        float64   `json:",omitempty"`
	Inertia     []float64 `json:",omitempty"`
	Symmetry    int       `json:",omitempty"`
	Frequencies []float64 `json:",omitempty"`
}

//A ready-to-serialize container for a conformer.
type Conformer struct {
	E0               float64
	SpinMultiplicity int
	OpticalIsomers   int
	Modes            []Mode
}

//A ready-to-serialize container for a potential energy scan.
type Scan struct {
	Angles   []float64
	Energies []float64
}

//Record is everything that was read from one log.
type Record struct {
	Path               string
	NAtoms             int
	Atoms              []Atom
	Hessian            [][]float64 `json:",omitempty"` //rows, J/m^2
	Conformer          *Conformer  `json:",omitempty"`
	Energy             float64
	ZPE                *float64 `json:",omitempty"`
	Scan               *Scan    `json:",omitempty"`
	ImaginaryFrequency *float64 `json:",omitempty"`
	Error              *Error   `json:",omitempty"`
}

//An easily JSON-serializable error type,
type Error struct {
	deco     []string
	IsError  bool   //If this is false (no error) all the other fields will be at their zero-values.
	Kind     string //the qclog error kind, if known
	File     string
	Function string //which go function gave the error
	Message  string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

//Takes an error and the name of the function where it happened to
//create a json-marshal-able error. Information from qclog errors is kept.
func NewError(function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error()}
	var lerr *qclog.LogError
	if errors.As(err, &lerr) {
		jerr.Kind = lerr.Kind().String()
		jerr.File = lerr.FileName()
	}
	return jerr
}

func modes(C *qclog.Conformer) []Mode {
	ret := make([]Mode, 0, len(C.Modes))
	for _, m := range C.Modes {
		jm := Mode{Type: m.ModeName()}
		switch v := m.(type) {
		case *qclog.Translation:
			jm.Mass = v.Mass
		case *qclog.LinearRotor:
			jm.Inertia = []float64{v.Inertia}
			jm.Symmetry = v.Symmetry
		case *qclog.NonlinearRotor:
			jm.Inertia = v.Inertia[:]
			jm.Symmetry = v.Symmetry
		case *qclog.HarmonicOscillator:
			jm.Frequencies = v.Frequencies
		}
		ret = append(ret, jm)
	}
	return ret
}

//FromSummary builds a Record from the summary of a log.
func FromSummary(S *qchem.Summary) *Record {
	R := &Record{Path: S.Path, NAtoms: S.NAtoms, Energy: S.Energy, ZPE: S.ZPE, ImaginaryFrequency: S.ImaginaryFrequency}
	if S.Geometry != nil {
		for _, a := range S.Geometry.Atoms {
			R.Atoms = append(R.Atoms, Atom{Symbol: a.Symbol, Number: a.Number, Mass: a.Mass, Coords: a.Coords[:]})
		}
	}
	if S.Hessian != nil {
		n, _ := S.Hessian.Dims()
		R.Hessian = make([][]float64, n)
		for i := range R.Hessian {
			R.Hessian[i] = S.Hessian.RawRowView(i)
		}
	}
	if S.Conformer != nil {
		R.Conformer = &Conformer{
			E0:               S.Conformer.E0,
			SpinMultiplicity: S.Conformer.SpinMultiplicity,
			OpticalIsomers:   S.Conformer.OpticalIsomers,
			Modes:            modes(S.Conformer),
		}
	}
	if S.Scan != nil {
		R.Scan = &Scan{Angles: S.Scan.Angles, Energies: S.Scan.Energies}
	}
	return R
}

//FailedRecord is the Record for a log that could not be read.
func FailedRecord(path string, err error) *Record {
	return &Record{Path: path, Error: NewError("Summary", err)}
}

//Send Marshals the record and writes it, in one line, to out.
func (R *Record) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return NewError("Record.Send", err)
	}
	return nil
}

//DecodeRecord reads one Record (one line) from stream.
func DecodeRecord(stream *bufio.Reader) (*Record, *Error) {
	line, err := stream.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, NewError("DecodeRecord", err)
	}
	R := new(Record)
	if err := json.Unmarshal(line, R); err != nil {
		return nil, NewError("DecodeRecord", err)
	}
	return R, nil
}
