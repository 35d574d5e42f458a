/*
 * atomtypes.go, part of fftrim.
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
	"fmt"
	"strings"
)

// TypeMap maps every atom type in the closure of a structure to its
// class. A type whose definition is missing from the document maps to
// the empty string; it stays in the map (so the type is still "known")
// but can never satisfy a class constraint.
type TypeMap map[string]string

// Contains reports whether the type name is in the closure.
func (T TypeMap) Contains(name string) bool {
	_, ok := T[name]
	return ok
}

// ResolveTypes builds the type-to-class map for every atom type present
// in the structure, plus every type reachable through "overrides"
// references in the type definitions. typedefs are the document's
// atom-type records; nameKey and classKey are the attribute names
// holding the type's name and class ("name" and "class" in the default
// dialect).
//
// Types pulled in only through an overrides list do not appear in the
// structure itself; each one is reported in the returned notes, which is
// informational, not an error. The closure is computed with a worklist:
// every type is looked up once, and each lookup may enqueue new types,
// so the loop terminates once no definition references an unknown type.
func ResolveTypes(present []string, typedefs []*Record, nameKey, classKey string) (TypeMap, []string) {
	defs := make(map[string]*Record, len(typedefs))
	for _, d := range typedefs {
		if name, ok := d.Get(nameKey); ok {
			defs[name] = d
		}
	}
	types := make(TypeMap, len(present))
	queue := make([]string, 0, len(present))
	for _, t := range present {
		if !types.Contains(t) {
			types[t] = ""
			queue = append(queue, t)
		}
	}
	var notes []string
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		def, ok := defs[t]
		if !ok {
			continue
		}
		types[t], _ = def.Get(classKey)
		over, ok := def.Get("overrides")
		if !ok {
			continue
		}
		for _, o := range strings.Split(over, ",") {
			o = strings.TrimSpace(o)
			if o == "" || types.Contains(o) {
				continue
			}
			types[o] = ""
			queue = append(queue, o)
			notes = append(notes, fmt.Sprintf("atom type %s is referenced in an overrides statement, but does not appear in the system", o))
		}
	}
	return types, notes
}
