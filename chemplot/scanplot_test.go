/*
 * scanplot_test.go, part of qclog.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/qclog"
	"github.com/rmera/qclog/qchem"
)

//TestScanPlot plots the scan in the qchem test data.
func TestScanPlot(Te *testing.T) {
	P, err := qchem.NewLog("../qchem/testdata/scan.out").LoadScanEnergies()
	if err != nil {
		Te.Fatal(err)
	}
	P2 := qclog.NewScanProfile([]float64{-1, -0.999, -0.9995, -1})
	name := filepath.Join(Te.TempDir(), "scan")
	if err := ScanPlot([]*qclog.ScanProfile{P, P2}, []string{"scan.out", "model"}, "Test scan", name); err != nil {
		Te.Fatal(err)
	}
	if st, err := os.Stat(name + ".png"); err != nil || st.Size() == 0 {
		Te.Errorf("plot not written: %v", err)
	}
	if err := ScanPlot([]*qclog.ScanProfile{P}, []string{"a", "b"}, "Bad", name); err == nil {
		Te.Error("expected an error for mismatched names")
	}
}

func TestProfileStyle(Te *testing.T) {
	seen := map[[4]uint32]bool{}
	for i := 0; i < 5; i++ {
		c, shape := profileStyle(i, 5)
		if shape == nil {
			Te.Errorf("no glyph for profile %d", i)
		}
		r, g, b, a := c.RGBA()
		seen[[4]uint32{r, g, b, a}] = true
	}
	if len(seen) != 5 {
		Te.Errorf("expected 5 different colors, got %d", len(seen))
	}
}
