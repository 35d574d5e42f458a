/*
 * topology.go, part of fftrim.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
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
 */

package fftrim

// Kind identifies one of the four bonded interaction kinds.
type Kind int

const (
	Bond     Kind = iota //two-body
	Angle                //three-body
	Proper               //four-body chain
	Improper             //four-body about a central first atom
)

// Kinds lists the interaction kinds in the fixed order they are
// processed and emitted.
var Kinds = [4]Kind{Bond, Angle, Proper, Improper}

func (k Kind) String() string {
	switch k {
	case Bond:
		return "Bond"
	case Angle:
		return "Angle"
	case Proper:
		return "Proper"
	case Improper:
		return "Improper"
	}
	panic("fftrim: unknown interaction kind")
}

// Arity returns the number of atoms in an interaction of this kind.
func (k Kind) Arity() int {
	switch k {
	case Bond:
		return 2
	case Angle:
		return 3
	case Proper, Improper:
		return 4
	}
	panic("fftrim: unknown interaction kind")
}

// The equivalence group of each kind: every atom ordering under which an
// interaction, or a parameter record, is the same interaction. Bonds,
// angles and proper torsions read the same forwards and backwards.
// Impropers are defined about a central atom, which comes first, with
// the three peripheral atoms in any order.
var equivalences = map[Kind][][]int{
	Bond:   {{0, 1}, {1, 0}},
	Angle:  {{0, 1, 2}, {2, 1, 0}},
	Proper: {{0, 1, 2, 3}, {3, 2, 1, 0}},
	Improper: {
		{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3},
		{0, 2, 3, 1}, {0, 3, 1, 2}, {0, 3, 2, 1}},
}

// Equivalences returns the orderings under which tuples of this kind are
// equivalent. The returned slice is shared; don't modify it.
func (k Kind) Equivalences() [][]int {
	return equivalences[k]
}

// permute returns tuple reordered by perm.
func permute(tuple []string, perm []int) []string {
	ret := make([]string, len(perm))
	for i, p := range perm {
		ret[i] = tuple[p]
	}
	return ret
}

func equalTuple(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// containsEquivalent reports whether any ordering of tuple under the
// kind's equivalence group already appears in accepted.
func containsEquivalent(accepted [][]string, tuple []string, k Kind) bool {
	for _, perm := range k.Equivalences() {
		pt := permute(tuple, perm)
		for _, a := range accepted {
			if equalTuple(a, pt) {
				return true
			}
		}
	}
	return false
}

// UniqueTuples deduplicates the structure's interactions of one kind
// under the kind's atom-ordering symmetries. The first occurrence of
// each equivalence class is kept, in source order; the output document
// depends on that order, so it must be stable.
func UniqueTuples(tuples [][]string, k Kind) [][]string {
	ret := make([][]string, 0, len(tuples))
	for _, t := range tuples {
		if !containsEquivalent(ret, t, k) {
			ret = append(ret, t)
		}
	}
	return ret
}
