/*
 * config.go, part of qclog.
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
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rmera/qclog"
	"github.com/rmera/qclog/qchem"
	"gopkg.in/yaml.v3"
)

//Config holds the defaults for the extraction. It can be read from a
//TOML or YAML file, and each field can be overridden from the command line.
type Config struct {
	Symmetry        int     `toml:"symmetry" yaml:"symmetry"`
	Spin            int     `toml:"spin" yaml:"spin"`
	OpticalIsomers  int     `toml:"optical_isomers" yaml:"optical_isomers"`
	SymmetryFromLog bool    `toml:"symmetry_from_log" yaml:"symmetry_from_log"`
	EnergyThreshold float64 `toml:"energy_threshold" yaml:"energy_threshold"` //kJ/mol
	Jobs            int     `toml:"jobs" yaml:"jobs"`
}

//DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		OpticalIsomers:  1,
		EnergyThreshold: qclog.DefaultEnergyThreshold,
		Jobs:            4,
	}
}

//LoadConfig reads a configuration file. Files ending in .yaml or .yml
//are read as YAML, anything else as TOML. Fields missing from the file
//keep their default values.
func LoadConfig(filename string) (Config, error) {
	conf := DefaultConfig()
	cont, err := os.ReadFile(filename)
	if err != nil {
		return conf, err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(cont, &conf)
	default:
		err = toml.Unmarshal(cont, &conf)
	}
	if err != nil {
		return conf, fmt.Errorf("reading config %s: %w", filename, err)
	}
	if conf.Jobs < 1 {
		conf.Jobs = 1
	}
	return conf, nil
}

//ConformerOptions returns the options for qchem.Log.LoadConformer.
func (c Config) ConformerOptions(label string) qchem.ConformerOptions {
	return qchem.ConformerOptions{
		Symmetry:         c.Symmetry,
		SpinMultiplicity: c.Spin,
		OpticalIsomers:   c.OpticalIsomers,
		SymmetryFromLog:  c.SymmetryFromLog,
		Label:            label,
	}
}
