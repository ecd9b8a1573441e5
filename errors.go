/*
 * errors.go, part of gostates.
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

import "fmt"

// Error is the interface for errors that this library implements. The Decorate method
// allows to add and retrieve info from the error, without changing its type or wrapping
// it around something else. The decorate slice should contain a list of functions in the
// calling stack, plus, for each function, any relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before passing it up. Using it on any other error is a bug,
// hence the panic.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		panic("goStates: errDecorate called on a foreign error: " + err.Error())
	}
	err2.Decorate(caller)
	return err2
}

// decorate implements the common Decorate behavior: an empty string only
// retrieves the current decoration, anything else is appended first.
func decorate(deco *[]string, dec string) []string {
	if dec != "" {
		*deco = append(*deco, dec)
	}
	return *deco
}

// CError is a generic error for conditions that don't carry values a caller
// could act on programmatically.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

func (err *CError) Decorate(dec string) []string { return decorate(&err.deco, dec) }

// ErrTransitionState means a Molecule was requested as a transition state but the
// lowest frequency given is not negative, so there is no reaction-coordinate
// mode to discard.
type ErrTransitionState struct {
	Freq float64 //the offending lowest frequency, in cm-1
	deco []string
}

func (err *ErrTransitionState) Error() string {
	return fmt.Sprintf("goStates: transition state requested, but the lowest frequency (%.2f cm-1) is not negative", err.Freq)
}

func (err *ErrTransitionState) Decorate(dec string) []string { return decorate(&err.deco, dec) }

// ErrInsufficientModes means that, after discarding rotational/translational and
// (for a transition state) the reaction-coordinate modes, fewer vibrational modes
// remain than the counters need.
type ErrInsufficientModes struct {
	Have int //modes left after discarding
	Need int //always at least 1
	deco []string
}

func (err *ErrInsufficientModes) Error() string {
	return fmt.Sprintf("goStates: %d vibrational modes left after discarding rotations/translations, need at least %d", err.Have, err.Need)
}

func (err *ErrInsufficientModes) Decorate(dec string) []string { return decorate(&err.deco, dec) }

// ErrBelowThreshold means the effective energy for a counter is not positive, so
// the requested formula has no physical result. The caller can raise the total
// energy or switch the energy reference and retry.
type ErrBelowThreshold struct {
	Energy float64   //the offending effective energy, in cm-1
	Ref    EnergyRef //the reference convention in force when it was computed
	deco   []string
}

func (err *ErrBelowThreshold) Error() string {
	return fmt.Sprintf("goStates: effective energy %.2f cm-1 (reference %v) is not above zero", err.Energy, err.Ref)
}

func (err *ErrBelowThreshold) Decorate(dec string) []string { return decorate(&err.deco, dec) }

// ErrSmallEprime means the reduced energy E/zpe fell at or below the validity
// limit of the Whitten-Rabinovitch correction. The counter returns zero sum and
// density along with this error; whether to use those zeros or abort is the
// caller's call.
type ErrSmallEprime struct {
	Eprime float64 //the offending reduced energy
	Limit  float64 //the validity limit, 0.01
	deco   []string
}

func (err *ErrSmallEprime) Error() string {
	return fmt.Sprintf("goStates: reduced energy E/zpe = %g is at or below %g, outside the Whitten-Rabinovitch correction's domain", err.Eprime, err.Limit)
}

func (err *ErrSmallEprime) Decorate(dec string) []string { return decorate(&err.deco, dec) }

// ErrTableOverflow means the requested energy needs more grains than the
// grain table holds. The caller can widen the grain or raise the capacity
// (see TableOptions) and retry; no truncated count is ever returned.
type ErrTableOverflow struct {
	Needed   int //grains needed to reach the requested energy
	Capacity int //cells actually allocated
	deco     []string
}

func (err *ErrTableOverflow) Error() string {
	return fmt.Sprintf("goStates: energy needs %d grains but the table holds %d; widen the grain or raise the capacity", err.Needed, err.Capacity)
}

func (err *ErrTableOverflow) Decorate(dec string) []string { return decorate(&err.deco, dec) }

// ErrDegenerateMode means a vibrational frequency rounds to zero grains at the
// chosen grain width, which would make the convolution add a cell to itself
// forever. The caller should narrow the grain below the offending frequency.
type ErrDegenerateMode struct {
	Freq  float64 //the offending frequency, in cm-1
	Grain float64 //the grain width that swallowed it
	deco  []string
}

func (err *ErrDegenerateMode) Error() string {
	return fmt.Sprintf("goStates: frequency %.2f cm-1 rounds to zero grains at grain width %.2f cm-1", err.Freq, err.Grain)
}

func (err *ErrDegenerateMode) Decorate(dec string) []string { return decorate(&err.deco, dec) }

// PanicMsg is a message used for panics on programmer misuse; even though it
// does satisfy the error interface, for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilMolecule = PanicMsg("goStates: nil Molecule given")
	ErrNilFreqs    = PanicMsg("goStates: nil frequency slice given")
	ErrBadGrain    = PanicMsg("goStates: grain width must be positive")
)
