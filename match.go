/*
 * match.go, part of fftrim.
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

import "strings"

// MatchSet is the outcome of matching one kind's interactions against
// the candidate pool. Matched holds the selected records in the order
// the interactions first matched them, each exactly once; that order,
// not the source document's, is what the output emits. Unmatched holds
// the interactions no candidate covered, for diagnostics; dropping them
// from the output is normal behavior.
type MatchSet struct {
	Kind      Kind
	Matched   []*Record
	Unmatched [][]string
}

// matchesAt reports whether the candidate covers the tuple under one
// specific ordering. Position by position, the record's stored value
// must equal the atom's class if the schema constrains by class, or the
// atom type itself if it constrains by type. An atom whose class is
// unresolved (empty in the map) can never satisfy a class constraint.
func matchesAt(c *Candidate, tuple []string, perm []int, types TypeMap) bool {
	for i, p := range perm {
		atom := tuple[p]
		want, _ := c.Record.Get(c.Schema[i])
		have := atom
		if isClassKey(c.Schema[i]) {
			have = types[atom]
			if have == "" {
				return false
			}
		}
		if want != have {
			return false
		}
	}
	return true
}

// MatchKind selects, for every interaction tuple, the single
// highest-priority candidate that covers it under any ordering of the
// kind's equivalence group. The pool must come from NewPool, i.e. be
// sorted most specific first: when a specific and a generic record both
// cover an interaction, the specific one is a deliberate refinement and
// must win. Each selected record is emitted once, even when several
// interactions select it.
func MatchKind(pool []*Candidate, tuples [][]string, types TypeMap, k Kind) *MatchSet {
	ret := &MatchSet{Kind: k}
	seen := make(map[string]bool)
	for _, tuple := range tuples {
		matched := false
	search:
		for _, c := range pool {
			for _, perm := range k.Equivalences() {
				if !matchesAt(c, tuple, perm, types) {
					continue
				}
				key := strings.Join(c.values(), "\x00")
				if !seen[key] {
					seen[key] = true
					ret.Matched = append(ret.Matched, c.Record)
				}
				matched = true
				break search
			}
		}
		if !matched {
			ret.Unmatched = append(ret.Unmatched, tuple)
		}
	}
	return ret
}
