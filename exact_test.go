/*
 * exact_test.go, part of gostates.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gostates is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package states

import (
	"fmt"
	"testing"
)

// cyclopropane returns the molecule of the classic Beyer-Swinehart benchmark,
// with the harmonic frequencies of cyclopropane in cm-1.
func cyclopropane(energy float64) (*Molecule, error) {
	freqs := []float64{3221, 3221, 3221, 3221, 3221, 3221,
		1478, 1478, 1478,
		1118, 1118, 1118, 1118, 1118, 1118, 1118,
		878, 878, 878,
		749, 749,
		0, 0, 0, 0, 0, 0}
	return NewMolecule(energy, freqs, false, false, FromZPE)
}

// TestGrainTableKnownValues pins the convolution on a two-mode toy system whose
// degeneracies are countable on paper. With modes of 1 and 2 grains the table
// must read 1, 1, 2, 2, 3...: one way to reach zero grains, one for one (one
// quantum of the 1-grain mode), two for two (two quanta of it, or one of the
// 2-grain mode), and so on.
func TestGrainTableKnownValues(Te *testing.T) {
	grain := 50.0
	mol, err := NewMolecule(5*grain, []float64{0, 0, 0, 0, 0, 0, grain, 2 * grain}, false, false, FromZPE)
	if err != nil {
		Te.Fatal(err)
	}
	opts := DefaultTableOptions()
	opts.Capacity(64)
	G, err := NewGrainTable(mol, grain, opts)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{1, 1, 2, 2, 3}
	for i, w := range want {
		if G.Degeneracy(i) != w {
			Te.Errorf("cell %d: got %v, want %v", i, G.Degeneracy(i), w)
		}
	}
	summ, dens, err := G.Count(5 * grain)
	if err != nil {
		Te.Fatal(err)
	}
	if summ != 9 || dens != 3/grain {
		Te.Errorf("at 5 grains: got sum %v dens %v, want 9 and %v", summ, dens, 3/grain)
	}
	//The convenience method must agree with the explicit table.
	bsum, bdens, err := mol.BeyerSwinehart(grain)
	if err != nil {
		Te.Fatal(err)
	}
	if bsum != summ || bdens != dens {
		Te.Errorf("BeyerSwinehart disagrees with its own table: %v/%v and %v/%v", bsum, summ, bdens, dens)
	}
	fmt.Println("Known-values table test passed! sum:", summ, "dens:", dens)
}

// TestGrainTableGroundState checks the E=0 query: only the ground state is
// reachable, so the sum is 1 and the density one state per grain.
func TestGrainTableGroundState(Te *testing.T) {
	grain := 10.0
	mol, err := NewMolecule(0, []float64{0, 0, 0, 0, 0, 0, 100, 200, 300}, false, false, FromZPE)
	if err != nil {
		Te.Fatal(err)
	}
	summ, dens, err := mol.BeyerSwinehart(grain)
	if err != nil {
		Te.Fatal(err)
	}
	if summ != 1 || dens != 1/grain {
		Te.Errorf("ground state: got sum %v dens %v, want 1 and %v", summ, dens, 1/grain)
	}
	fmt.Println("Ground-state test passed!")
}

// TestGrainTableMonotonic checks that the cumulative sum of states never
// decreases as the energy grows, grain by grain.
func TestGrainTableMonotonic(Te *testing.T) {
	grain := 25.0
	mol, err := cyclopropane(0)
	if err != nil {
		Te.Fatal(err)
	}
	opts := DefaultTableOptions()
	opts.Capacity(2000)
	G, err := NewGrainTable(mol, grain, opts)
	if err != nil {
		Te.Fatal(err)
	}
	prev := 0.0
	for i := 1; i < 200; i++ {
		summ, _, err := G.Count(float64(i) * grain)
		if err != nil {
			Te.Fatal(err)
		}
		if summ < prev {
			Te.Fatalf("sum of states decreased from %v to %v at %v cm-1", prev, summ, float64(i)*grain)
		}
		prev = summ
	}
	fmt.Println("Monotonicity test passed! sum at 200 grains:", prev)
}

func TestGrainTableOverflow(Te *testing.T) {
	grain := 50.0
	mol, err := NewMolecule(20*grain, []float64{0, 0, 0, 0, 0, 0, grain}, false, false, FromZPE)
	if err != nil {
		Te.Fatal(err)
	}
	opts := DefaultTableOptions()
	opts.Capacity(10)
	G, err := NewGrainTable(mol, grain, opts)
	if err != nil {
		Te.Fatal(err)
	}
	_, _, err = G.Count(mol.Energy())
	e, ok := err.(*ErrTableOverflow)
	if !ok {
		Te.Fatalf("wanted *ErrTableOverflow, got %v", err)
	}
	if e.Needed != 20 || e.Capacity != 10 {
		Te.Errorf("got needed %d capacity %d, want 20 and 10", e.Needed, e.Capacity)
	}
	fmt.Println("Overflow error:", e.Error())
}

// TestGrainTableHugeEnergy checks that an energy far beyond any representable
// grain count overflows loudly instead of wrapping around the int range and
// slipping through as a tiny bogus count.
func TestGrainTableHugeEnergy(Te *testing.T) {
	grain := 50.0
	mol, err := NewMolecule(1e300, []float64{0, 0, 0, 0, 0, 0, grain}, false, false, FromZPE)
	if err != nil {
		Te.Fatal(err)
	}
	G, err := NewGrainTable(mol, grain, nil)
	if err != nil {
		Te.Fatal(err)
	}
	summ, dens, err := G.Count(1e300)
	e, ok := err.(*ErrTableOverflow)
	if !ok {
		Te.Fatalf("wanted *ErrTableOverflow, got sum=%v dens=%v err=%v", summ, dens, err)
	}
	if e.Capacity != G.Len() || e.Needed <= e.Capacity {
		Te.Errorf("got needed %d capacity %d, want needed above the %d-cell capacity", e.Needed, e.Capacity, G.Len())
	}
	//The convenience method must refuse too.
	if _, _, err = mol.BeyerSwinehart(grain); err == nil {
		Te.Error("BeyerSwinehart returned a result for an energy beyond any table")
	}
	fmt.Println("Huge-energy overflow error:", e.Error())
}

// TestStiffModeSkipped checks that a mode too stiff to fit the table at all
// leaves the rest of the count intact: it cannot be excited below the table's
// top, so the cells it would touch don't exist.
func TestStiffModeSkipped(Te *testing.T) {
	grain := 50.0
	mol, err := NewMolecule(10*grain, []float64{0, 0, 0, 0, 0, 0, grain, 1e12}, false, false, FromZPE)
	if err != nil {
		Te.Fatal(err)
	}
	opts := DefaultTableOptions()
	opts.Capacity(64)
	G, err := NewGrainTable(mol, grain, opts)
	if err != nil {
		Te.Fatal(err)
	}
	//Only the 1-grain mode can be excited: exactly one arrangement per cell.
	for i := 0; i < 10; i++ {
		if G.Degeneracy(i) != 1 {
			Te.Fatalf("cell %d: got %v, want 1", i, G.Degeneracy(i))
		}
	}
	fmt.Println("Stiff-mode test passed!")
}

func TestDegenerateMode(Te *testing.T) {
	//A 1 cm-1 mode disappears into a 50 cm-1 grain.
	mol, err := NewMolecule(1000, []float64{0, 0, 0, 0, 0, 0, 1, 100}, false, false, FromZPE)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = NewGrainTable(mol, 50, nil)
	e, ok := err.(*ErrDegenerateMode)
	if !ok {
		Te.Fatalf("wanted *ErrDegenerateMode, got %v", err)
	}
	if e.Freq != 1 || e.Grain != 50 {
		Te.Errorf("got freq %v grain %v, want 1 and 50", e.Freq, e.Grain)
	}
	fmt.Println("Degenerate-mode error:", e.Error())
}

// TestCyclopropane runs the full benchmark scenario: all four counters on
// cyclopropane at 52410 cm-1 above the zero point. At an energy this far above
// the zpe the approximations bracket the exact count, so they are checked
// against it rather than against tabulated numbers.
func TestCyclopropane(Te *testing.T) {
	mol, err := cyclopropane(52410)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.NOsc() != 21 || mol.ZPE() != 17859 {
		Te.Fatalf("cyclopropane: got %d modes, zpe %v, want 21 and 17859", mol.NOsc(), mol.ZPE())
	}
	clsum, cldens, err := mol.Classical()
	if err != nil {
		Te.Fatal(err)
	}
	mrsum, mrdens, err := mol.MarcusRice()
	if err != nil {
		Te.Fatal(err)
	}
	wrsum, wrdens, err := mol.WhittenRabinovitch()
	if err != nil {
		Te.Fatal(err)
	}
	bssum, bsdens, err := mol.BeyerSwinehart(50)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Printf("classical\n  sum: %.3e,  dens: %.3e\n", clsum, cldens)
	fmt.Printf("marcus-rice\n  sum: %.3e,  dens: %.3e\n", mrsum, mrdens)
	fmt.Printf("whitten-rabinovitch\n  sum: %.3e,  dens: %.3e\n", wrsum, wrdens)
	fmt.Printf("beyer-swinehart\n  sum: %.3e,  dens: %.3e\n", bssum, bsdens)
	for i, v := range []float64{clsum, cldens, mrsum, mrdens, wrsum, wrdens, bssum, bsdens} {
		if v <= 0 {
			Te.Fatalf("counter result %d is not positive: %v", i, v)
		}
	}
	//The classical count ignores the zpe altogether and undercounts; Marcus-Rice
	//overshoots by granting it in full.
	if clsum >= bssum {
		Te.Errorf("classical sum %e should undercount the exact %e", clsum, bssum)
	}
	if mrsum <= bssum {
		Te.Errorf("Marcus-Rice sum %e should overcount the exact %e", mrsum, bssum)
	}
	//Whitten-Rabinovitch tracks the exact count to within a few percent up here.
	if !closeTo(wrsum, bssum, 0.2) {
		Te.Errorf("Whitten-Rabinovitch sum %e strays from the exact %e", wrsum, bssum)
	}
	if !closeTo(wrdens, bsdens, 0.2) {
		Te.Errorf("Whitten-Rabinovitch density %e strays from the exact %e", wrdens, bsdens)
	}
}
