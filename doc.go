/*
 * doc.go, part of gostates.
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

/*
Package states calculates sums and densities of vibrational states for a molecule
at a given total energy, from its harmonic frequencies in wavenumbers (cm-1).

Counting schemes with increasing levels of rigor are implemented as methods of the
Molecule type:

	Classical            Classical approximation, only useful at high energies.
	MarcusRice           Semi-classical approximation, considers the zero-point energy.
	WhittenRabinovitch   Semi-classical approximation, considers a fraction of the
	                     zero-point energy through an empirical correction.
	BeyerSwinehart       Exact counting over a discretized energy grid, the gold
	                     standard in chemistry.

All counters return a sum of states (dimensionless) and a density of states
(states per cm-1). A Molecule is built once through the validating NewMolecule
function and never changes afterwards, so any number of counters, energies (see
the WithEnergy method) and goroutines can share it without coordination.

Only vibrational states are counted. Rotational state counting and anharmonic
corrections are not implemented.
*/
package states
