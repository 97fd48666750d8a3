/*
 * main.go, part of qclog.
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

//Command qclog extracts geometries, force constants, conformers, energies
//and potential energy scans from Q-Chem output logs.
package main

import (
	"fmt"
	"os"

	"github.com/rmera/qclog"
	"github.com/rmera/qclog/qchem"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configFile string

	conf   = DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qclog",
	Short: "Extract structured data from Q-Chem output logs",
	Long: `qclog reads Q-Chem output logs and prints the data needed for
thermochemistry and kinetics: the number of atoms, the final geometry,
the Cartesian force constant matrix, the conformer (translation, rotor
and vibrations), the electronic and zero-point energies, relaxed
potential energy scans and the imaginary frequency of transition states.

Logs can be plain text or compressed with gzip or zstd.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if configFile != "" {
			if conf, err = LoadConfig(configFile); err != nil {
				return err
			}
		}
		return applyFlags(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

//applyFlags overrides the configuration with the flags given explicitly.
func applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("symmetry") {
		conf.Symmetry, err = flags.GetInt("symmetry")
	}
	if err == nil && flags.Changed("spin") {
		conf.Spin, err = flags.GetInt("spin")
	}
	if err == nil && flags.Changed("optical") {
		conf.OpticalIsomers, err = flags.GetInt("optical")
	}
	if err == nil && flags.Changed("symfromlog") {
		conf.SymmetryFromLog, err = flags.GetBool("symfromlog")
	}
	if err == nil && flags.Changed("threshold") {
		conf.EnergyThreshold, err = flags.GetFloat64("threshold")
	}
	if err == nil && flags.Changed("jobs") {
		conf.Jobs, err = flags.GetInt("jobs")
	}
	if conf.Jobs < 1 {
		conf.Jobs = 1
	}
	return err
}

//newLog returns the reader for the log at path, set up from the configuration.
func newLog(path string) *qchem.Log {
	L := qchem.NewLog(path)
	L.SetLogger(logger)
	L.SetChecker(&qclog.LowestConformerCheck{Threshold: conf.EnergyThreshold, Logger: logger})
	return L
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "log debug diagnostics")
	pf.StringVarP(&configFile, "config", "c", "", "configuration file (TOML, or YAML if it ends in .yaml/.yml)")
	pf.Int("symmetry", 0, "external symmetry number (0: 1, or the one in the log with --symfromlog)")
	pf.Int("spin", 0, "spin multiplicity (0: read it from the log)")
	pf.Int("optical", 1, "number of optical isomers")
	pf.Bool("symfromlog", false, "use the rotational symmetry number printed by Q-Chem")
	pf.Float64("threshold", qclog.DefaultEnergyThreshold, "kJ/mol above the scan minimum at which the starting conformer is flagged")
	pf.IntP("jobs", "j", 4, "logs read in parallel")

	rootCmd.AddCommand(atomsCmd, geometryCmd, hessianCmd, conformerCmd,
		energyCmd, zpeCmd, scanCmd, negfreqCmd, summaryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
