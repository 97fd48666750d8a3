/*
 * json_test.go, part of qclog.
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
	"bytes"
	"strings"
	"testing"

	"github.com/rmera/qclog"
	"github.com/rmera/qclog/qchem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRecord(t *testing.T) {
	S, err := qchem.NewLog("../qchem/testdata/linear_ts.out").Summary(qchem.ConformerOptions{})
	require.NoError(t, err)
	var buf bytes.Buffer
	if jerr := FromSummary(S).Send(&buf); jerr != nil {
		t.Fatal(jerr)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "a record must take one line")

	R, jerr := DecodeRecord(bufio.NewReader(&buf))
	require.Nil(t, jerr)
	assert.Equal(t, 2, R.NAtoms)
	require.Len(t, R.Atoms, 2)
	assert.Equal(t, "O", R.Atoms[1].Symbol)
	assert.Len(t, R.Hessian, 6)
	require.NotNil(t, R.Conformer)
	types := []string{}
	for _, m := range R.Conformer.Modes {
		types = append(types, m.Type)
	}
	assert.Equal(t, []string{"IdealGasTranslation", "LinearRotor", "HarmonicOscillator"}, types)
	assert.Len(t, R.Conformer.Modes[2].Frequencies, 3)
	require.NotNil(t, R.ImaginaryFrequency)
	assert.Equal(t, -1520.45, *R.ImaginaryFrequency)
	assert.Nil(t, R.Scan)
	assert.Nil(t, R.Error)
}

func TestFailedRecord(t *testing.T) {
	_, err := qchem.NewLog("../qchem/testdata/incomplete.out").LoadGeometry()
	require.Error(t, err)
	R := FailedRecord("incomplete.out", err)
	require.NotNil(t, R.Error)
	assert.True(t, R.Error.IsError)
	assert.Equal(t, qclog.LogIncomplete.String(), R.Error.Kind)
	assert.Equal(t, "../qchem/testdata/incomplete.out", R.Error.File)
	assert.Contains(t, string(R.Error.Marshal()), "log incomplete")
	assert.Equal(t, []string{"main"}, R.Error.Decorate("main"))
}
