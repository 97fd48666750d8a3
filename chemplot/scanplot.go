/*
 * scanplot.go, part of qclog.
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

//Package chemplot draws the data read by qclog, using gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/rmera/qclog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func basicScanPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Angle (deg)"
	p.Y.Label.Text = "Energy (kJ/mol)"
	//Constant axis
	p.X.Min = 0
	p.X.Max = 360
	p.Add(plotter.NewGrid())
	return p
}

//scanXYs returns the points of the profile, in degrees and kJ/mol.
func scanXYs(S *qclog.ScanProfile) plotter.XYs {
	pts := make(plotter.XYs, S.Len())
	for i := range pts {
		pts[i].X = S.Angles[i] * 180 / math.Pi
		pts[i].Y = S.Energies[i] / qclog.KJ2J
	}
	return pts
}

/*ScanPlot produces a plot, in png format, of the potential energy scans
  in profiles. names, if not nil, must have one legend entry per profile.
  The ".png" extension is added to plotname if not present. Returns an
  error or nil*/
func ScanPlot(profiles []*qclog.ScanProfile, names []string, title, plotname string) error {
	if len(profiles) == 0 {
		return fmt.Errorf("chemplot: no scan profiles given")
	}
	if names != nil && len(names) != len(profiles) {
		return fmt.Errorf("chemplot: %d names given for %d profiles", len(names), len(profiles))
	}
	p := basicScanPlot(title)
	for key, S := range profiles {
		if S.Len() == 0 {
			return fmt.Errorf("chemplot: profile %d is empty", key)
		}
		l, s, err := plotter.NewLinePoints(scanXYs(S))
		if err != nil {
			return err
		}
		c, shape := profileStyle(key, len(profiles))
		l.Color = c
		s.Color = c
		s.Shape = shape
		p.Add(l, s)
		if names != nil {
			p.Legend.Add(names[key], l, s)
		}
	}
	if !strings.HasSuffix(plotname, ".png") {
		plotname += ".png"
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, plotname)
}

//profileStyle returns the color and glyph of the key-th of n profiles.
//Hues are spread from red to violet, skipping the pale yellows.
func profileStyle(key, n int) (color.Color, draw.GlyphDrawer) {
	h := 260*float64(key)/float64(n) + 20
	if h < 55 {
		h -= 20
	} else {
		h += 20
	}
	return palette.HSVA{H: h / 360, S: 1, V: 1, A: 1}, plotutil.Shape(key)
}
