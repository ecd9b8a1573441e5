/*
 * count.go, part of gostates.
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
	"gonum.org/v1/gonum/stat"
)

// eprimeLimit is the lower validity limit of the Whitten-Rabinovitch
// empirical correction, in units of E/zpe.
const eprimeLimit = 0.01

// denom returns the common denominator of the approximate counting formulas,
// the product of the mode frequencies times s!.
func (M *Molecule) denom() float64 {
	s := float64(len(M.vibs))
	//No need to multiply the modes by Planck's constant, they are in cm-1 already.
	return floats.Prod(M.vibs) * math.Gamma(s+1)
}

// Classical calculates the classical sum and density of states from statistical
// mechanics. It is only accurate at energies well above the zero-point energy.
// It fails with *ErrBelowThreshold if the effective energy is not positive.
func (M *Molecule) Classical() (summ, dens float64, err error) {
	if M == nil {
		panic(ErrNilMolecule)
	}
	E := M.effEnergy()
	if E <= 0 {
		return 0, 0, errDecorate(&ErrBelowThreshold{Energy: E, Ref: M.ref}, "Classical")
	}
	s := float64(len(M.vibs))
	summ = math.Pow(E, s) / M.denom()
	dens = summ * s / E
	return summ, dens, nil
}

// MarcusRice calculates a semi-classical sum and density of states with the
// Marcus-Rice approach, which shifts the classical formula by the zero-point
// energy. It fails with *ErrBelowThreshold if the shifted energy is not positive.
func (M *Molecule) MarcusRice() (summ, dens float64, err error) {
	if M == nil {
		panic(ErrNilMolecule)
	}
	E := M.effEnergy()
	zpe := M.ZPE()
	if E+zpe <= 0 {
		return 0, 0, errDecorate(&ErrBelowThreshold{Energy: E + zpe, Ref: M.ref}, "MarcusRice")
	}
	s := float64(len(M.vibs))
	summ = math.Pow(E+zpe, s) / M.denom()
	dens = summ * s / (E + zpe)
	return summ, dens, nil
}

// WhittenRabinovitch calculates a semi-classical sum and density of states with
// the Whitten-Rabinovitch approach, which shifts the classical formula by an
// empirically corrected fraction of the zero-point energy. It fails with
// *ErrBelowThreshold if the effective energy is not positive. At reduced
// energies E/zpe at or below 0.01 the correction is outside its validated
// domain: the function returns zero sum and density together with
// *ErrSmallEprime, and the caller decides whether the zeros are usable.
func (M *Molecule) WhittenRabinovitch() (summ, dens float64, err error) {
	if M == nil {
		panic(ErrNilMolecule)
	}
	E := M.effEnergy()
	if E <= 0 {
		return 0, 0, errDecorate(&ErrBelowThreshold{Energy: E, Ref: M.ref}, "WhittenRabinovitch")
	}
	s := float64(len(M.vibs))
	zpe := M.ZPE()
	mean := stat.Mean(M.vibs, nil)
	vratio := (floats.Dot(M.vibs, M.vibs) / s) / (mean * mean)
	b := vratio * (s - 1) / s
	eprime := E / zpe
	var w, dwde float64
	switch {
	case eprime >= 1.0:
		w = math.Exp(-2.4191 * math.Pow(eprime, 0.25))
		dwde = w * (-0.604775 * math.Pow(eprime, -0.75))
	case eprime > eprimeLimit:
		w = 1. / (5.00*eprime + 2.73*math.Sqrt(eprime) + 3.51)
		dwde = -w * w * (5 + 1.365/math.Sqrt(eprime))
	default:
		return 0, 0, errDecorate(&ErrSmallEprime{Eprime: eprime, Limit: eprimeLimit}, "WhittenRabinovitch")
	}
	a := 1 - b*w
	summ = math.Pow(E+a*zpe, s) / M.denom()
	deriv := 1 - b*dwde
	dens = summ * s * deriv / (E + a*zpe)
	return summ, dens, nil
}
