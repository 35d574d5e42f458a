/*
 * document.go, part of fftrim.
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

// Attr is one attribute of a parameter record. Attributes keep their
// source order so a trimmed document can be compared against the
// original byte by byte.
type Attr struct {
	Key   string
	Value string
}

// Record is one entry of a force-field document: an atom-type
// definition, a nonbonded parameter, or a candidate bonded parameter
// set. The attribute payload is opaque to this library, except for the
// class/type constraint keys and the keys named by the Dialect.
type Record struct {
	Tag   string
	Attrs []Attr
}

// Get returns the value for key and whether the record defines it.
func (R *Record) Get(key string) (string, bool) {
	for _, a := range R.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Has returns whether the record defines the given attribute.
func (R *Record) Has(key string) bool {
	_, ok := R.Get(key)
	return ok
}

// Copy returns a deep copy of the record.
func (R *Record) Copy() *Record {
	n := &Record{Tag: R.Tag, Attrs: make([]Attr, len(R.Attrs))}
	copy(n.Attrs, R.Attrs)
	return n
}

// Section is one named block of records in a force-field document, such
// as "AtomTypes" or "HarmonicBondForce". Sections can carry attributes
// of their own (NonbondedForce holds the 1-4 scaling factors there);
// they are payload like everything else and are carried through.
type Section struct {
	Name    string
	Attrs   []Attr
	Records []*Record
}

// Document is a parsed force-field document: an ordered list of named
// sections. How it is read from or written to disk is the business of
// the ffxml subpackage.
type Document struct {
	Root     string //name of the document's root element
	Sections []*Section
}

// Section returns the section with the given name, or nil.
func (D *Document) Section(name string) *Section {
	for _, s := range D.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// RecordsByTag returns every record in the document with the given tag,
// in document order, regardless of the section it sits in.
func (D *Document) RecordsByTag(tag string) []*Record {
	var ret []*Record
	for _, s := range D.Sections {
		for _, r := range s.Records {
			if r.Tag == tag {
				ret = append(ret, r)
			}
		}
	}
	return ret
}

// Blank returns an empty document with the section layout of the
// dialect, in the fixed output order. Matched records are appended to it
// during trimming.
func Blank(d Dialect) *Document {
	names := []string{d.AtomTypesSection, d.NonbondedSection,
		d.Sections[Bond], d.Sections[Angle], d.Sections[Proper], d.Sections[Improper]}
	doc := &Document{Root: d.Root}
	for _, n := range names {
		doc.Sections = append(doc.Sections, &Section{Name: n})
	}
	return doc
}
