/*
 * errors.go, part of qclog.
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
	"errors"
	"fmt"
)

//Kind classifies the errors returned by the log readers.
type Kind int

const (
	UnableToOpen Kind = iota + 1
	LogIncomplete
	GeometryNotFound
	EnergyNotFound
	ZpeNotFound
	NoImaginaryFrequency
	FrequenciesNotFound
	ScanNotFound
	UnknownElement
	MalformedLine
)

var kindNames = map[Kind]string{
	UnableToOpen:         "unable to open file",
	LogIncomplete:        "log incomplete",
	GeometryNotFound:     "geometry not found",
	EnergyNotFound:       "energy not found",
	ZpeNotFound:          "zero-point energy not found",
	NoImaginaryFrequency: "no imaginary frequency",
	FrequenciesNotFound:  "frequencies not found",
	ScanNotFound:         "scan not found",
	UnknownElement:       "unknown element",
	MalformedLine:        "malformed line",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//Sentinels for use with errors.Is
var (
	ErrUnableToOpen         = &LogError{kind: UnableToOpen}
	ErrLogIncomplete        = &LogError{kind: LogIncomplete}
	ErrGeometryNotFound     = &LogError{kind: GeometryNotFound}
	ErrEnergyNotFound       = &LogError{kind: EnergyNotFound}
	ErrZpeNotFound          = &LogError{kind: ZpeNotFound}
	ErrNoImaginaryFrequency = &LogError{kind: NoImaginaryFrequency}
	ErrFrequenciesNotFound  = &LogError{kind: FrequenciesNotFound}
	ErrScanNotFound         = &LogError{kind: ScanNotFound}
	ErrUnknownElement       = &LogError{kind: UnknownElement}
	ErrMalformedLine        = &LogError{kind: MalformedLine}
)

//LogError is the general structure for errors in reading logs. It fulfills Error and LogFileError.
//All LogErrors are critical: the facet that was requested could not be extracted.
type LogError struct {
	kind     Kind
	message  string
	filename string //the log that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error
}

//NewError returns a critical LogError of the given kind, for the file filename.
//caller is the name of the function creating the error.
func NewError(kind Kind, message, filename, caller string) *LogError {
	return &LogError{kind: kind, message: message, filename: filename, deco: []string{caller}, critical: true}
}

//WrapError is like NewError, but keeps err as the cause.
func WrapError(kind Kind, err error, filename, caller string) *LogError {
	E := NewError(kind, err.Error(), filename, caller)
	E.err = err
	return E
}

func (E *LogError) Error() string {
	if E.filename == "" {
		return fmt.Sprintf("qclog: %s: %s", E.kind, E.message)
	}
	return fmt.Sprintf("qclog: %s in %s: %s", E.kind, E.filename, E.message)
}

//Decorate adds new information to the error
func (E *LogError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Kind returns the kind of the error.
func (E *LogError) Kind() Kind { return E.kind }

//FileName returns the log to which the error is associated
func (E *LogError) FileName() string { return E.filename }

//Critical returns true if the error is critical, false otherwise
func (E *LogError) Critical() bool { return E.critical }

//Unwrap returns the underlying error, if any.
func (E *LogError) Unwrap() error { return E.err }

//Is reports whether target is a LogError of the same kind.
func (E *LogError) Is(target error) bool {
	t, ok := target.(*LogError)
	return ok && t.kind == E.kind
}

//ErrDecorate adds the caller's name to err if it implements Error, and
//returns err.
func ErrDecorate(err error, caller string) error {
	var E Error
	if errors.As(err, &E) {
		E.Decorate(caller)
	}
	return err
}
