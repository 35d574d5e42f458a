/*
 * schema.go, part of fftrim.
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
	"sort"
	"strings"
)

/*A bonded parameter record constrains each of its atom positions either
by class (class1, class2, ...) or by exact atom type (type1, type2, ...),
and may mix both, e.g. type1, class2, class3, type4 for a torsion. The
schema of a record is the list of constraint keys it actually defines,
one per position. Its weight counts the class-constrained positions:
each class makes the record apply more broadly, so lower weight means
more specific.*/

// Candidate is one bonded parameter record together with its inferred
// schema and weight, ready for matching.
type Candidate struct {
	Record *Record
	Schema []string //constraint key per position, "classN" or "typeN"
	Weight int
}

// values returns the record's stored constraint values, in schema order.
// They identify the (record, ordering) combination a match emits.
func (C *Candidate) values() []string {
	ret := make([]string, len(C.Schema))
	for i, key := range C.Schema {
		ret[i], _ = C.Record.Get(key)
	}
	return ret
}

// classify infers the schema and weight of one record for an interaction
// of arity n. A position that defines neither constraint makes the
// record unusable and is reported as a SchemaError.
func classify(r *Record, k Kind) ([]string, int, error) {
	n := k.Arity()
	schema := make([]string, 0, n)
	weight := 0
	for i := 1; i <= n; i++ {
		cl := fmt.Sprintf("class%d", i)
		ty := fmt.Sprintf("type%d", i)
		switch {
		case r.Has(cl):
			schema = append(schema, cl)
			weight++
		case r.Has(ty):
			schema = append(schema, ty)
		default:
			return nil, 0, &SchemaError{Kind: k, Position: i, Tag: r.Tag}
		}
	}
	return schema, weight, nil
}

// isClassKey reports whether a schema key constrains by class rather
// than by exact type.
func isClassKey(key string) bool {
	return strings.HasPrefix(key, "class")
}

// NewPool classifies every candidate record for one interaction kind and
// sorts the pool ascending by weight, so the most specific records are
// tried first. The sort is stable: records of equal weight keep their
// document order, which is the tie-break the matcher relies on.
func NewPool(records []*Record, k Kind) ([]*Candidate, error) {
	pool := make([]*Candidate, 0, len(records))
	for _, r := range records {
		schema, weight, err := classify(r, k)
		if err != nil {
			return nil, errDecorate(err, "NewPool")
		}
		pool = append(pool, &Candidate{Record: r, Schema: schema, Weight: weight})
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Weight < pool[j].Weight })
	return pool, nil
}
