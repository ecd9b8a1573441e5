/*
 * states.go, part of gostates.
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
	"sort"

	"gonum.org/v1/gonum/floats"
)

// EnergyRef says what the total energy of a Molecule is measured from.
type EnergyRef int

const (
	// FromZPE references the energy to the zero-point level of the molecule.
	FromZPE EnergyRef = iota
	// FromWellBottom references the energy to the bottom of the potential well,
	// so the zero-point energy is subtracted before counting.
	FromWellBottom
)

func (r EnergyRef) String() string {
	if r == FromWellBottom {
		return "well bottom"
	}
	return "zero-point energy"
}

// Molecule holds the total energy and the normalized vibrational modes of one
// molecule, ready for state counting. It is immutable once built; all counters
// read it without coordination, so concurrent use is safe.
type Molecule struct {
	energy  float64   //total energy, cm-1
	vibs    []float64 //vibrational modes, ascending, cm-1
	modeSum float64
	ref     EnergyRef
}

// NewMolecule validates and normalizes the physical input for state counting.
// energy and freqs are in cm-1. freqs carries every harmonic frequency of the
// molecule, including the 5 (linear geometry) or 6 (nonlinear) zero or near-zero
// rotational/translational ones, which are discarded. If ts is true the molecule
// is a transition-state geometry: its lowest frequency must be negative (the
// imaginary reaction-coordinate mode) and is discarded too. ref says whether
// energy is measured from the bottom of the potential well or from the
// zero-point level.
func NewMolecule(energy float64, freqs []float64, ts, linear bool, ref EnergyRef) (*Molecule, error) {
	if freqs == nil {
		panic(ErrNilFreqs)
	}
	f := make([]float64, len(freqs))
	copy(f, freqs)
	sort.Float64s(f)
	if ts {
		if len(f) == 0 || f[0] >= 0 {
			var low float64
			if len(f) > 0 {
				low = f[0]
			}
			return nil, errDecorate(&ErrTransitionState{Freq: low}, "NewMolecule")
		}
		f = f[1:]
	}
	discard := 6
	if linear {
		discard = 5
	}
	have := len(f) - discard
	if have < 1 {
		if have < 0 {
			have = 0
		}
		return nil, errDecorate(&ErrInsufficientModes{Have: have, Need: 1}, "NewMolecule")
	}
	vibs := f[discard:]
	if vibs[0] < 0 {
		return nil, errDecorate(&CError{msg: "goStates: negative frequency retained as a vibrational mode; only a transition state may carry one, as its lowest frequency"}, "NewMolecule")
	}
	//A zero retained mode zeroes the frequency product and every approximate
	//counter with it; the zeros of a frequency calculation belong to the
	//discarded rotations/translations.
	if vibs[0] == 0 {
		return nil, errDecorate(&CError{msg: "goStates: zero frequency retained as a vibrational mode; the counting formulas diverge on zero modes"}, "NewMolecule")
	}
	return &Molecule{energy: energy, vibs: vibs, modeSum: floats.Sum(vibs), ref: ref}, nil
}

// WithEnergy returns a Molecule identical to the receiver except for its total
// energy. The vibrational data is shared, which is safe as neither copy can
// change it. It allows sweeping an energy range from one validated molecule.
func (M *Molecule) WithEnergy(energy float64) *Molecule {
	if M == nil {
		panic(ErrNilMolecule)
	}
	N := *M
	N.energy = energy
	return &N
}

// Energy returns the total energy, in cm-1.
func (M *Molecule) Energy() float64 { return M.energy }

// Ref returns the energy reference convention of the molecule.
func (M *Molecule) Ref() EnergyRef { return M.ref }

// NOsc returns the number of vibrational oscillators (s in the counting formulas).
func (M *Molecule) NOsc() int { return len(M.vibs) }

// ModeSum returns the sum of the vibrational mode frequencies, in cm-1.
func (M *Molecule) ModeSum() float64 { return M.modeSum }

// ZPE returns the zero-point energy, half the sum of the vibrational mode
// frequencies, in cm-1. Planck's constant is already accounted for in the
// frequencies.
func (M *Molecule) ZPE() float64 { return M.modeSum / 2 }

// Vibs returns a copy of the vibrational modes, ascending, in cm-1.
func (M *Molecule) Vibs() []float64 {
	v := make([]float64, len(M.vibs))
	copy(v, M.vibs)
	return v
}

// effEnergy returns the energy measured from the zero-point level, which is
// what every counter works with.
func (M *Molecule) effEnergy() float64 {
	if M.ref == FromWellBottom {
		return M.energy - M.ZPE()
	}
	return M.energy
}
