/*
 * trim.go, part of fftrim.
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

// Report collects the diagnostics of one trimming run. None of it is an
// error: unresolved override targets and unmatched interactions are
// normal for a correctly pruned force field, but a caller auditing the
// trim will want to see them.
type Report struct {
	Notes     []string            //override targets absent from the system
	Unmatched map[Kind][][]string //interactions no candidate record covered
}

// UnmatchedCount returns the total number of unique interactions that
// matched no candidate record, over all kinds.
func (R *Report) UnmatchedCount() int {
	n := 0
	for _, u := range R.Unmatched {
		n += len(u)
	}
	return n
}

// Trim reduces a force-field document to the entries used by mol, which
// must be a *Structure. It returns the trimmed document, laid out as a
// blank template in the dialect's fixed section order, and the run's
// diagnostics.
//
// The atom-type and nonbonded sections keep the source document's
// record order. The bonded sections are ordered by first match: record
// pools are sorted most specific first (fewest class constraints), each
// unique interaction takes the first candidate that covers it under any
// symmetric ordering, and a record is emitted the first time an
// interaction selects it. Interactions with no covering record are left
// out of the document and listed in the report.
func Trim(mol any, doc *Document, d Dialect) (*Document, *Report, error) {
	S, err := AsStructure(mol)
	if err != nil {
		return nil, nil, err
	}
	types, notes := ResolveTypes(S.AtomTypes(), doc.RecordsByTag(d.TypeTag), "name", "class")
	report := &Report{Notes: notes, Unmatched: make(map[Kind][][]string)}
	out := Blank(d)
	//section-level attributes (e.g. the 1-4 scaling factors on the
	//nonbonded section) are payload and carry over from the source
	for _, s := range out.Sections {
		if src := doc.Section(s.Name); src != nil {
			s.Attrs = append(s.Attrs, src.Attrs...)
		}
	}

	//Atom-type definitions for every type in the closure, source order.
	atsec := out.Section(d.AtomTypesSection)
	for _, r := range doc.RecordsByTag(d.TypeTag) {
		if name, ok := r.Get("name"); ok && types.Contains(name) {
			atsec.Records = append(atsec.Records, r.Copy())
		}
	}
	//Nonbonded records for every type in the closure, source order.
	nbsec := out.Section(d.NonbondedSection)
	for _, r := range doc.RecordsByTag(d.NonbondedTag) {
		if t, ok := r.Get("type"); ok && types.Contains(t) {
			nbsec.Records = append(nbsec.Records, r.Copy())
		}
	}
	//The four bonded kinds are independent of each other; they are
	//processed sequentially in the fixed kind order for determinism.
	for _, k := range Kinds {
		pool, err := NewPool(doc.RecordsByTag(d.Tags[k]), k)
		if err != nil {
			return nil, nil, errDecorate(err, "Trim")
		}
		set := MatchKind(pool, UniqueTuples(S.Tuples(k), k), types, k)
		sec := out.Section(d.Sections[k])
		for _, r := range set.Matched {
			sec.Records = append(sec.Records, r.Copy())
		}
		if len(set.Unmatched) > 0 {
			report.Unmatched[k] = set.Unmatched
		}
	}
	return out, report, nil
}
