/*
 * qclog_test.go, part of qclog.
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
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestElementData(Te *testing.T) {
	for _, s := range []string{"C", "c", "CL", "Cl", "He", "D"} {
		n, m, err := ElementData(s)
		if err != nil {
			Te.Error(err)
		}
		if n <= 0 || m <= 0 {
			Te.Errorf("bad data for %s: %d %f", s, n, m)
		}
	}
	if n, m, _ := ElementData("O"); n != 8 || math.Abs(m-15.99491461956) > 1e-9 {
		Te.Errorf("wrong data for O: %d %f", n, m)
	}
	_, _, err := ElementData("Xx")
	if !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("expected unknown element error, got %v", err)
	}
}

func TestErrorDecorate(Te *testing.T) {
	err := NewError(EnergyNotFound, "no energy", "test.out", "LoadEnergy")
	deco := err.Decorate("Summary")
	if len(deco) != 2 || deco[1] != "Summary" {
		Te.Errorf("bad decoration %v", deco)
	}
	if !errors.Is(err, ErrEnergyNotFound) || errors.Is(err, ErrZpeNotFound) {
		Te.Error("errors.Is does not check the kind")
	}
	if !err.Critical() || err.FileName() != "test.out" {
		Te.Error("wrong error metadata")
	}
	var wrapped error = ErrDecorate(err, "main")
	var E LogFileError
	if !errors.As(wrapped, &E) {
		Te.Fatal("error does not implement LogFileError")
	}
}

func TestClassifyRotorLinear(Te *testing.T) {
	a := 12.5
	conv := Bohr2Angstrom * Bohr2Angstrom
	for _, I := range [][]float64{{0, a, a}, {a, a}, {a, 0, a}} {
		r, ok := ClassifyRotor(I, 0).(*LinearRotor)
		if !ok {
			Te.Fatalf("%v should give a linear rotor", I)
		}
		if math.Abs(r.Inertia-a*conv) > 1e-12 {
			Te.Errorf("%v: inertia %g, expected %g", I, r.Inertia, a*conv)
		}
		if r.Symmetry != 1 {
			Te.Errorf("default symmetry should be 1, got %d", r.Symmetry)
		}
	}
	r := ClassifyRotor([]float64{0, 2, 8}, 2).(*LinearRotor)
	if math.Abs(r.Inertia-4*conv) > 1e-12 || r.Symmetry != 2 {
		Te.Errorf("geometric mean not used: %v", r)
	}
	if ClassifyRotor(nil, 1) != nil || ClassifyRotor([]float64{0, 0, 0}, 1) != nil {
		Te.Error("no rotor expected for zero moments")
	}
}

func TestClassifyRotorNonlinear(Te *testing.T) {
	conv := Bohr2Angstrom * Bohr2Angstrom
	I := []float64{1.5, 2.5, 3.5}
	r, ok := ClassifyRotor(I, 3).(*NonlinearRotor)
	if !ok {
		Te.Fatal("expected a nonlinear rotor")
	}
	for i, v := range I {
		if math.Abs(r.Inertia[i]-v*conv) > 1e-12 {
			Te.Errorf("moment %d: %g, expected %g", i, r.Inertia[i], v*conv)
		}
	}
	if r.SymmetryNumber() != 3 {
		Te.Errorf("symmetry %d, expected 3", r.SymmetryNumber())
	}
}

func TestScanProfile(Te *testing.T) {
	V := []float64{-10.001, -10.002, -10.0, -10.0015}
	P := NewScanProfile(V)
	if P.Len() != 4 || len(P.Angles) != 4 {
		Te.Fatalf("wrong length %d", P.Len())
	}
	if V[1] != -10.002 {
		Te.Error("input was modified")
	}
	if P.Energies[1] != 0 {
		Te.Errorf("minimum should be exactly 0, got %g", P.Energies[1])
	}
	for _, e := range P.Energies {
		if e < 0 {
			Te.Errorf("negative relative energy %g", e)
		}
	}
	if math.Abs(P.Energies[2]-0.002*Hartree2JMol) > 1e-6 {
		Te.Errorf("wrong conversion %g", P.Energies[2])
	}
	if P.Angles[0] != 0 || P.Angles[3] != 2*math.Pi {
		Te.Errorf("grid does not span [0, 2pi]: %v", P.Angles)
	}
	if NewScanProfile(nil) != nil {
		Te.Error("expected nil profile")
	}
	if g := AngleGrid(1); len(g) != 1 || g[0] != 0 {
		Te.Errorf("bad single point grid %v", g)
	}
}

func TestLowestConformerCheck(Te *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	C := &LowestConformerCheck{Logger: zap.New(core)}
	if !C.Check("ok.out", []float64{-1.0, -0.999, -0.998}) {
		Te.Error("first point is the minimum, the check should pass")
	}
	//1e-3 Hartree is about 2.6 kJ/mol
	if C.Check("bad.out", []float64{-1.0, -1.001, -0.999}) {
		Te.Error("the check should fail")
	}
	if logs.Len() != 1 {
		Te.Errorf("expected one warning, got %d", logs.Len())
	}
	C.Threshold = 5
	if !C.Check("bad.out", []float64{-1.0, -1.001, -0.999}) {
		Te.Error("the check should pass with a larger threshold")
	}
}

func TestGeometry(Te *testing.T) {
	a, err := NewAtom("o", [3]float64{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	b, _ := NewAtom("H", [3]float64{4, 5, 6})
	G := &Geometry{Atoms: []*Atom{a, b}}
	c := G.Coords()
	if r, _ := c.Dims(); r != 2 || c.At(1, 2) != 6 {
		Te.Errorf("bad coordinates matrix")
	}
	if G.Symbols()[0] != "O" || G.Numbers()[1] != 1 {
		Te.Errorf("bad symbols or numbers: %v %v", G.Symbols(), G.Numbers())
	}
	if m := G.Masses(); len(m) != 2 || m[0] != 15.99491461956 || m[1] != 1.00782503207 {
		Te.Errorf("bad masses: %v", m)
	}
	if (&Geometry{}).Coords() != nil {
		Te.Error("empty geometry should give nil coordinates")
	}
	ac := a.Copy()
	ac.Coords[0] = 10
	if a.Coords[0] != 1 || ac.Symbol != "O" || ac.Mass != a.Mass {
		Te.Errorf("Copy should not share coordinates with the original: %v %v", a, ac)
	}
	var nilAtom *Atom
	if nilAtom.Copy() != nil {
		Te.Error("copy of a nil atom should be nil")
	}
}

func TestHessianSymmetric(Te *testing.T) {
	H := NewHessian(1)
	H.Set(1, 0, 2)
	H.Set(0, 1, 3)
	S := H.Symmetric()
	if S.At(0, 1) != 2 || S.At(1, 0) != 2 {
		Te.Error("Symmetric should use the lower triangle")
	}
	if H.Asymmetry() != 1 {
		Te.Errorf("asymmetry %g, expected 1", H.Asymmetry())
	}
}
