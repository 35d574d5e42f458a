/*
 * structure.go, part of fftrim.
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

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Structure is the view of an atom-typed molecule this library needs:
// which atom types appear in it, and its bonded interactions as ordered
// tuples of type names. It says nothing about coordinates, elements or
// parameters. A Structure is built once and never modified afterwards.
type Structure struct {
	types     []string
	bonds     [][]string
	angles    [][]string
	propers   [][]string
	impropers [][]string
}

// NewStructure builds a Structure from the present atom types and the
// per-kind interaction tuples, any of which may be nil. Atom types that
// appear in a tuple but not in types are added. It returns an error if
// a tuple has the wrong number of atoms for its kind.
func NewStructure(types []string, bonds, angles, propers, impropers [][]string) (*Structure, error) {
	S := &Structure{bonds: bonds, angles: angles, propers: propers, impropers: impropers}
	seen := make(map[string]bool)
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			S.types = append(S.types, t)
		}
	}
	for _, t := range types {
		add(t)
	}
	for _, k := range Kinds {
		for _, tuple := range S.Tuples(k) {
			if len(tuple) != k.Arity() {
				return nil, &TError{msg: fmt.Sprintf("fftrim: %s tuple %v should have %d atoms", k, tuple, k.Arity())}
			}
			for _, t := range tuple {
				add(t)
			}
		}
	}
	return S, nil
}

// AtomTypes returns the atom types present in the structure, in order of
// first appearance. The returned slice is shared; don't modify it.
func (S *Structure) AtomTypes() []string {
	return S.types
}

// Tuples returns the structure's interactions of the given kind as
// ordered atom-type tuples, in source order. The returned slice is
// shared; don't modify it.
func (S *Structure) Tuples(k Kind) [][]string {
	switch k {
	case Bond:
		return S.bonds
	case Angle:
		return S.angles
	case Proper:
		return S.propers
	case Improper:
		return S.impropers
	}
	panic("fftrim: unknown interaction kind")
}

// AsStructure checks that the value handed in as a typed molecule really
// is a *Structure, and returns a BadStructureError otherwise. Trimming
// fails on this before touching the document, so a caller passing the
// wrong object never gets a partially processed output.
func AsStructure(mol any) (*Structure, error) {
	S, ok := mol.(*Structure)
	if !ok || S == nil {
		return nil, &BadStructureError{got: fmt.Sprintf("%T", mol)}
	}
	return S, nil
}

// jsonStructure is the interchange form of a Structure: atom types plus
// the bonded interactions, each as an array of type-name tuples.
type jsonStructure struct {
	AtomTypes []string   `json:"atomtypes,omitempty"`
	Bonds     [][]string `json:"bonds,omitempty"`
	Angles    [][]string `json:"angles,omitempty"`
	Propers   [][]string `json:"propers,omitempty"`
	Impropers [][]string `json:"impropers,omitempty"`
}

// ReadStructureJSON reads a Structure from its JSON interchange form.
func ReadStructureJSON(r io.Reader) (*Structure, error) {
	var j jsonStructure
	if err := json.NewDecoder(r).Decode(&j); err != nil {
		return nil, errDecorate(err, "ReadStructureJSON")
	}
	S, err := NewStructure(j.AtomTypes, j.Bonds, j.Angles, j.Propers, j.Impropers)
	if err != nil {
		return nil, errDecorate(err, "ReadStructureJSON")
	}
	return S, nil
}

// ReadStructureFile reads a Structure from a JSON file.
func ReadStructureFile(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errDecorate(err, "ReadStructureFile")
	}
	defer f.Close()
	S, err := ReadStructureJSON(f)
	if err != nil {
		return nil, errDecorate(err, fmt.Sprintf("ReadStructureFile: %s", name))
	}
	return S, nil
}

// WriteJSON writes the structure in its JSON interchange form.
func (S *Structure) WriteJSON(w io.Writer) error {
	j := jsonStructure{
		AtomTypes: S.types,
		Bonds:     S.bonds,
		Angles:    S.angles,
		Propers:   S.propers,
		Impropers: S.impropers,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(j)
}
