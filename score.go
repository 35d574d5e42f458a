/*
 * score.go, part of fftrim.
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
	"gonum.org/v1/gonum/stat"
)

// Score reports how much of a force-field document a structure actually
// exercises: the fraction of defined atom types the structure's type
// closure touches, and, per bonded section, the fraction of candidate
// records at least one interaction selects. It is a read-only
// diagnostic; scoring a document does not trim it. A document trimmed
// for the same structure scores 1.0 everywhere, which makes Score a
// cheap audit that a trimmed file and its structure still agree.
type Score struct {
	Types    float64          //coverage of atom-type definitions
	Sections map[Kind]float64 //coverage per bonded section, absent if the section is empty
	Overall  float64          //mean over the defined coverages
}

// ScoreDocument computes the coverage of doc by mol, which must be a
// *Structure. Sections with no candidate records are left out of the
// result rather than reported as zero.
func ScoreDocument(mol any, doc *Document, d Dialect) (*Score, error) {
	S, err := AsStructure(mol)
	if err != nil {
		return nil, err
	}
	types, _ := ResolveTypes(S.AtomTypes(), doc.RecordsByTag(d.TypeTag), "name", "class")
	sc := &Score{Sections: make(map[Kind]float64)}
	var parts []float64

	typedefs := doc.RecordsByTag(d.TypeTag)
	if len(typedefs) > 0 {
		used := 0
		for _, r := range typedefs {
			if name, ok := r.Get("name"); ok && types.Contains(name) {
				used++
			}
		}
		sc.Types = float64(used) / float64(len(typedefs))
		parts = append(parts, sc.Types)
	}
	for _, k := range Kinds {
		pool, err := NewPool(doc.RecordsByTag(d.Tags[k]), k)
		if err != nil {
			return nil, errDecorate(err, "ScoreDocument")
		}
		if len(pool) == 0 {
			continue
		}
		set := MatchKind(pool, UniqueTuples(S.Tuples(k), k), types, k)
		sc.Sections[k] = float64(len(set.Matched)) / float64(len(pool))
		parts = append(parts, sc.Sections[k])
	}
	if len(parts) > 0 {
		sc.Overall = stat.Mean(parts, nil)
	}
	return sc, nil
}
