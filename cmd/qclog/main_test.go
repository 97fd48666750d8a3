/*
 * main_test.go, part of qclog.
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

package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/qclog/chemjson"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testdata = "../../qchem/testdata"

//resetFlags puts every flag of cmd and its subcommands back to its
//default value, so that one execution doesn't see the flags of another.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue), f.Name)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(t, c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger = zap.NewNop()
	conf = DefaultConfig()
	resetFlags(t, rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qclog.toml")
	require.NoError(t, os.WriteFile(path, []byte("symmetry = 2\nsymmetry_from_log = true\njobs = 0\n"), 0o644))
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Symmetry)
	assert.True(t, c.SymmetryFromLog)
	assert.Equal(t, 1, c.OpticalIsomers, "defaults must survive")
	assert.Equal(t, 1, c.Jobs)
	o := c.ConformerOptions("x")
	assert.Equal(t, 2, o.Symmetry)
	assert.Equal(t, "x", o.Label)
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qclog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spin: 3\nenergy_threshold: 4.5\n"), 0o644))
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Spin)
	assert.Equal(t, 4.5, c.EnergyThreshold)
	assert.Equal(t, 4, c.Jobs)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("symmetry = [\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "summary", filepath.Join(testdata, "linear_ts.out"), filepath.Join(testdata, "incomplete.out"))
	require.NoError(t, err)
	r := bufio.NewReader(strings.NewReader(out))
	R, jerr := chemjson.DecodeRecord(r)
	require.Nil(t, jerr)
	assert.Equal(t, 2, R.NAtoms)
	assert.Nil(t, R.Error)
	R, jerr = chemjson.DecodeRecord(r)
	require.Nil(t, jerr)
	require.NotNil(t, R.Error)
	assert.Equal(t, "log incomplete", R.Error.Kind)
}

func TestEnergyCommand(t *testing.T) {
	out, err := execute(t, "energy", filepath.Join(testdata, "water_freq.out"))
	require.NoError(t, err)
	assert.Contains(t, out, "water_freq.out")

	_, err = execute(t, "energy", filepath.Join(testdata, "scan_scf_failed.out"))
	assert.Error(t, err)
}

func TestGeometryCommand(t *testing.T) {
	out, err := execute(t, "geometry", filepath.Join(testdata, "water_freq.out"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "3", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "O "))
}

func TestConformerCommand(t *testing.T) {
	out, err := execute(t, "conformer", "--symmetry", "2", filepath.Join(testdata, "water_freq.out"))
	require.NoError(t, err)
	assert.Contains(t, out, "NonlinearRotor")
	assert.Contains(t, out, "symmetry=2")
	assert.Contains(t, out, "1648.35")
}

func TestScanCommandPlot(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "scan.png")
	out, err := execute(t, "scan", "--plot", plot, filepath.Join(testdata, "scan.out"), filepath.Join(testdata, "scan_scf_failed.out"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "# "))
	_, err = os.Stat(plot)
	assert.NoError(t, err)
}

func TestFlagsDoNotLeak(t *testing.T) {
	water := filepath.Join(testdata, "water_freq.out")
	out, err := execute(t, "conformer", "--symmetry", "2", water)
	require.NoError(t, err)
	assert.Contains(t, out, "symmetry=2")
	out, err = execute(t, "conformer", water)
	require.NoError(t, err)
	assert.Contains(t, out, "symmetry=1")

	plot := filepath.Join(t.TempDir(), "scan.png")
	scan := filepath.Join(testdata, "scan.out")
	_, err = execute(t, "scan", "--plot", plot, scan)
	require.NoError(t, err)
	require.NoError(t, os.Remove(plot))
	_, err = execute(t, "scan", scan)
	require.NoError(t, err)
	_, err = os.Stat(plot)
	assert.True(t, os.IsNotExist(err), "plot written without --plot")
}
