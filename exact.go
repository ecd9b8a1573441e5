/*
 * exact.go, part of gostates.
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
	"math"

	"gonum.org/v1/gonum/floats"
)

// TableOptions contains the tunables of a GrainTable.
type TableOptions struct {
	capacity int
}

// DefaultTableOptions returns options reasonable for molecular vibrations:
// 100000 cells, which at a 50 cm-1 grain covers 5e6 cm-1 of energy.
func DefaultTableOptions() *TableOptions {
	r := new(TableOptions)
	r.capacity = 100000
	return r
}

// Capacity returns the number of cells the table will hold, and sets it to a
// new value first, if a positive one is given.
func (O *TableOptions) Capacity(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.capacity = n[0]
	}
	return O.capacity
}

// GrainTable is the Beyer-Swinehart state-count table of one molecule at a
// fixed grain width: cell i holds the number of distinct ways to distribute i
// grains of energy among the vibrational modes, i.e. the degeneracy at that
// energy. Building it costs capacity x NOsc additions; once built it answers
// Count for any energy it covers, and is safe for concurrent readers.
type GrainTable struct {
	t     []float64
	grain float64 //cm-1 per cell
}

// NewGrainTable builds the state-count table of M at grain width grain (cm-1
// per cell), by convolving the modes one at a time: each mode of r grains adds
// T[i-r] into T[i] for i ascending over the whole table, so multiple quanta of
// the same mode accumulate within its pass while the next mode starts from the
// finished table. opts can be nil for the defaults. A mode that rounds to zero
// grains fails with *ErrDegenerateMode, as it would make a cell feed itself.
// Cells are float64, so counts stay exact up to 2^53.
func NewGrainTable(M *Molecule, grain float64, opts *TableOptions) (*GrainTable, error) {
	if M == nil {
		panic(ErrNilMolecule)
	}
	if grain <= 0 {
		panic(ErrBadGrain)
	}
	if opts == nil {
		opts = DefaultTableOptions()
	}
	T := make([]float64, opts.Capacity())
	T[0] = 1 //the single ground-state arrangement
	for _, v := range M.vibs {
		rf := math.Round(v / grain)
		if rf == 0 {
			return nil, errDecorate(&ErrDegenerateMode{Freq: v, Grain: grain}, "NewGrainTable")
		}
		//A mode needing more grains than the table holds cannot be excited
		//below its top; converting it to int first could overflow.
		if rf >= float64(len(T)) {
			continue
		}
		r := int(rf)
		for i := r; i < len(T); i++ {
			T[i] += T[i-r]
		}
	}
	return &GrainTable{t: T, grain: grain}, nil
}

// Grain returns the grain width of the table, in cm-1 per cell.
func (G *GrainTable) Grain() float64 { return G.grain }

// Len returns the number of cells in the table.
func (G *GrainTable) Len() int { return len(G.t) }

// Degeneracy returns the number of state arrangements at exactly i grains of energy.
func (G *GrainTable) Degeneracy(i int) float64 { return G.t[i] }

// Count returns the sum of states at or below the energy E (cm-1, measured from
// the zero-point level) and the density of states at the grain immediately
// below it. E = 0 is a legal query and yields the ground state alone: sum 1,
// density 1/grain. If E needs more grains than the table holds, Count fails
// with *ErrTableOverflow; it never truncates.
func (G *GrainTable) Count(E float64) (summ, dens float64, err error) {
	if E < 0 {
		return 0, 0, errDecorate(&ErrBelowThreshold{Energy: E, Ref: FromZPE}, "Count")
	}
	//The overflow comparison happens in float space: past the int64 range the
	//float-to-int conversion is implementation-specific, and a wrapped-around
	//grain count would slip through an int comparison as a bogus small result.
	grains := math.Round(E / G.grain)
	if grains > float64(len(G.t)) {
		needed := math.MaxInt
		if grains < float64(math.MaxInt) {
			needed = int(grains)
		}
		return 0, 0, errDecorate(&ErrTableOverflow{Needed: needed, Capacity: len(G.t)}, "Count")
	}
	RM := int(grains)
	if RM < 1 {
		RM = 1
	}
	summ = floats.Sum(G.t[:RM])
	dens = G.t[RM-1] / G.grain
	return summ, dens, nil
}

// BeyerSwinehart calculates the exact sum and density of states by direct
// counting over an energy grid of the given grain width (cm-1). A grain of 50
// is usually a safe spacing for molecular vibrations. It builds a table with
// the default capacity; to reuse a table across energies or to size it
// yourself, use NewGrainTable and its Count method.
func (M *Molecule) BeyerSwinehart(grain float64) (summ, dens float64, err error) {
	if M == nil {
		panic(ErrNilMolecule)
	}
	E := M.effEnergy()
	if E < 0 {
		return 0, 0, errDecorate(&ErrBelowThreshold{Energy: E, Ref: M.ref}, "BeyerSwinehart")
	}
	G, err := NewGrainTable(M, grain, nil)
	if err != nil {
		return 0, 0, errDecorate(err, "BeyerSwinehart")
	}
	summ, dens, err = G.Count(E)
	if err != nil {
		return 0, 0, errDecorate(err, "BeyerSwinehart")
	}
	return summ, dens, nil
}
