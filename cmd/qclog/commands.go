/*
 * commands.go, part of qclog.
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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rmera/qclog"
	"github.com/rmera/qclog/chemjson"
	"github.com/rmera/qclog/chemplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//forEachLog runs job on every path, at most conf.Jobs at a time, and
//writes the outputs to out in the order of paths. Failures are logged
//and counted, but don't stop the other jobs.
func forEachLog(out io.Writer, paths []string, job func(i int, path string) (string, error)) error {
	outputs := make([]string, len(paths))
	errs := make([]error, len(paths))
	var g errgroup.Group
	g.SetLimit(conf.Jobs)
	for i, path := range paths {
		g.Go(func() error {
			outputs[i], errs[i] = job(i, path)
			return nil
		})
	}
	g.Wait()
	failed := 0
	for i, o := range outputs {
		if errs[i] != nil {
			failed++
			logger.Error("extraction failed", zap.String("log", paths[i]), zap.Error(errs[i]))
			continue
		}
		fmt.Fprint(out, o)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d logs failed", failed, len(paths))
	}
	return nil
}

//logCommand builds a subcommand that runs job on each of its arguments.
func logCommand(use, short string, job func(path string) (string, error)) *cobra.Command {
	indexed := func(_ int, path string) (string, error) { return job(path) }
	return &cobra.Command{
		Use:   use + " LOG...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachLog(cmd.OutOrStdout(), args, indexed)
		},
	}
}

var atomsCmd = logCommand("atoms", "Print the number of atoms", func(path string) (string, error) {
	n, err := newLog(path).NumberOfAtoms()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\t%d\n", path, n), nil
})

//The geometry is printed in XYZ format.
var geometryCmd = logCommand("geometry", "Print the final geometry in XYZ format", func(path string) (string, error) {
	G, err := newLog(path).LoadGeometry()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n%s\n", G.Len(), filepath.Base(path))
	for _, a := range G.Atoms {
		fmt.Fprintln(&b, a)
	}
	return b.String(), nil
})

var hessianCmd = logCommand("hessian", "Print the Cartesian force constant matrix (J/m^2)", func(path string) (string, error) {
	H, err := newLog(path).LoadForceConstantMatrix()
	if err != nil {
		return "", err
	}
	if H == nil {
		return fmt.Sprintf("# %s: no force constant matrix\n", path), nil
	}
	var b strings.Builder
	n, _ := H.Dims()
	fmt.Fprintf(&b, "# %s: %d x %d, J/m^2\n", path, n, n)
	for i := 0; i < n; i++ {
		for _, v := range H.RawRowView(i) {
			fmt.Fprintf(&b, " %14.6e", v)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
})

var conformerCmd = logCommand("conformer", "Print the conformer: energy, spin and degrees of freedom", func(path string) (string, error) {
	C, err := newLog(path).LoadConformer(conf.ConformerOptions(filepath.Base(path)))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\nE0 %.6f J/mol\nspin multiplicity %d\noptical isomers %d\n", path, C.E0, C.SpinMultiplicity, C.OpticalIsomers)
	for _, m := range C.Modes {
		fmt.Fprintln(&b, m)
		if h, ok := m.(*qclog.HarmonicOscillator); ok {
			for _, f := range h.Frequencies {
				fmt.Fprintf(&b, "  %10.2f cm^-1\n", f)
			}
		}
	}
	return b.String(), nil
})

var energyCmd = logCommand("energy", "Print the final electronic energy (J/mol)", func(path string) (string, error) {
	E, err := newLog(path).LoadEnergy()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\t%.6f\n", path, E), nil
})

var zpeCmd = logCommand("zpe", "Print the unscaled zero-point energy (J/mol)", func(path string) (string, error) {
	ZPE, err := newLog(path).LoadZeroPointEnergy()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\t%.6f\n", path, ZPE), nil
})

var negfreqCmd = logCommand("negfreq", "Print the imaginary frequency of a transition state (cm^-1)", func(path string) (string, error) {
	f, err := newLog(path).LoadNegativeFrequency()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\t%.2f\n", path, f), nil
})

var plotName string

var scanCmd = &cobra.Command{
	Use:   "scan LOG...",
	Short: "Print potential energy scans (rad, J/mol relative to the minimum)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := make([]*qclog.ScanProfile, len(args))
		err := forEachLog(cmd.OutOrStdout(), args, func(i int, path string) (string, error) {
			P, err := newLog(path).LoadScanEnergies()
			if err != nil {
				return "", err
			}
			profiles[i] = P
			var b strings.Builder
			fmt.Fprintf(&b, "# %s\n", path)
			for i := range P.Energies {
				fmt.Fprintf(&b, "%10.6f %14.4f\n", P.Angles[i], P.Energies[i])
			}
			return b.String(), nil
		})
		if err != nil || plotName == "" {
			return err
		}
		names := make([]string, len(args))
		for i, p := range args {
			names[i] = filepath.Base(p)
		}
		return chemplot.ScanPlot(profiles, names, "Potential energy scan", plotName)
	},
}

//summaryCmd writes one JSON record per log. Logs that fail give a record
//with the error, so the output always has one line per argument.
var summaryCmd = &cobra.Command{
	Use:   "summary LOG...",
	Short: "Print everything that can be read from each log, as JSON lines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records := make([]*chemjson.Record, len(args))
		var g errgroup.Group
		g.SetLimit(conf.Jobs)
		for i, path := range args {
			g.Go(func() error {
				S, err := newLog(path).Summary(conf.ConformerOptions(filepath.Base(path)))
				if err != nil {
					logger.Error("extraction failed", zap.String("log", path), zap.Error(err))
					records[i] = chemjson.FailedRecord(path, err)
					return nil
				}
				records[i] = chemjson.FromSummary(S)
				return nil
			})
		}
		g.Wait()
		out := cmd.OutOrStdout()
		for _, R := range records {
			if jerr := R.Send(out); jerr != nil {
				return jerr
			}
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&plotName, "plot", "", "also plot the scans to this PNG file")
}
