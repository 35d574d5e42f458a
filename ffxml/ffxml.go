/*
 * ffxml.go, part of fftrim.
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

package ffxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/rmera/fftrim"
)

// Read parses a force-field XML document. The root's children become
// sections and their children become records; anything nested deeper is
// ignored, as are comments and character data. Attribute order is kept,
// so a document written back out compares cleanly against its source.
func Read(r io.Reader) (*fftrim.Document, error) {
	dec := xml.NewDecoder(r)
	doc := new(fftrim.Document)
	var cur *fftrim.Section
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ffxml.Read: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch depth {
			case 0:
				doc.Root = t.Name.Local
			case 1:
				cur = &fftrim.Section{Name: t.Name.Local}
				for _, a := range t.Attr {
					cur.Attrs = append(cur.Attrs, fftrim.Attr{Key: a.Name.Local, Value: a.Value})
				}
				doc.Sections = append(doc.Sections, cur)
			case 2:
				rec := &fftrim.Record{Tag: t.Name.Local}
				for _, a := range t.Attr {
					rec.Attrs = append(rec.Attrs, fftrim.Attr{Key: a.Name.Local, Value: a.Value})
				}
				cur.Records = append(cur.Records, rec)
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if doc.Root == "" {
		return nil, fmt.Errorf("ffxml.Read: document has no root element")
	}
	return doc, nil
}

// ReadFile reads a force-field XML file, decompressing it first if its
// name ends in .gz.
func ReadFile(name string) (*fftrim.Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("ffxml.ReadFile: %w", err)
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("ffxml.ReadFile: %s: %w", name, err)
		}
		defer gz.Close()
		r = gz
	}
	doc, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("ffxml.ReadFile: %s: %w", name, err)
	}
	return doc, nil
}

func escape(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s)) //only errors on a failing writer
	return b.String()
}

// Write serializes a document with an XML declaration and tab
// indentation, one record per line. Sections are written even when
// empty: a trimmed document keeps the full section layout of its
// template.
func Write(doc *fftrim.Document, w io.Writer) error {
	var b bytes.Buffer
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	fmt.Fprintf(&b, "<%s>\n", doc.Root)
	for _, s := range doc.Sections {
		var attrs bytes.Buffer
		for _, a := range s.Attrs {
			fmt.Fprintf(&attrs, " %s=\"%s\"", a.Key, escape(a.Value))
		}
		if len(s.Records) == 0 {
			fmt.Fprintf(&b, "\t<%s%s/>\n", s.Name, attrs.String())
			continue
		}
		fmt.Fprintf(&b, "\t<%s%s>\n", s.Name, attrs.String())
		for _, r := range s.Records {
			fmt.Fprintf(&b, "\t\t<%s", r.Tag)
			for _, a := range r.Attrs {
				fmt.Fprintf(&b, " %s=\"%s\"", a.Key, escape(a.Value))
			}
			b.WriteString("/>\n")
		}
		fmt.Fprintf(&b, "\t</%s>\n", s.Name)
	}
	fmt.Fprintf(&b, "</%s>\n", doc.Root)
	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("ffxml.Write: %w", err)
	}
	return nil
}

// WriteFile writes a document to a file, gzip-compressing it if the name
// ends in .gz.
func WriteFile(doc *fftrim.Document, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("ffxml.WriteFile: %w", err)
	}
	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(name, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}
	err = Write(doc, w)
	if err == nil && gz != nil {
		err = gz.Close()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("ffxml.WriteFile: %s: %w", name, err)
	}
	return nil
}
