/*
 * dialect.go, part of fftrim.
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
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/rmera/fftrim"
)

/*Not every force field names its sections the foyer way; for instance,
proper torsions can live in a PeriodicTorsionForce section instead of an
RBTorsionForce one. A dialect file overrides the default names:

    root      = "ForceField"
    typetag   = "Type"

    [bond]
    tag     = "Bond"
    section = "HarmonicBondForce"

Omitted keys keep their foyer/OpenMM defaults.*/

type tomlKind struct {
	Tag     string `toml:"tag"`
	Section string `toml:"section"`
}

type tomlDialect struct {
	Root         string   `toml:"root"`
	AtomTypes    string   `toml:"atomtypes"`
	Nonbonded    string   `toml:"nonbonded"`
	TypeTag      string   `toml:"typetag"`
	NonbondedTag string   `toml:"nonbondedtag"`
	Bond         tomlKind `toml:"bond"`
	Angle        tomlKind `toml:"angle"`
	Proper       tomlKind `toml:"proper"`
	Improper     tomlKind `toml:"improper"`
}

func setstr(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// ReadDialect loads a document dialect from a TOML file. Every field is
// optional; whatever the file doesn't set stays at the foyer/OpenMM
// default.
func ReadDialect(name string) (fftrim.Dialect, error) {
	d := fftrim.DefaultDialect()
	var t tomlDialect
	if _, err := toml.DecodeFile(name, &t); err != nil {
		return d, fmt.Errorf("ffxml.ReadDialect: %s: %w", name, err)
	}
	setstr(&d.Root, t.Root)
	setstr(&d.AtomTypesSection, t.AtomTypes)
	setstr(&d.NonbondedSection, t.Nonbonded)
	setstr(&d.TypeTag, t.TypeTag)
	setstr(&d.NonbondedTag, t.NonbondedTag)
	for k, tk := range map[fftrim.Kind]tomlKind{
		fftrim.Bond: t.Bond, fftrim.Angle: t.Angle,
		fftrim.Proper: t.Proper, fftrim.Improper: t.Improper,
	} {
		if tk.Tag != "" {
			d.Tags[k] = tk.Tag
		}
		if tk.Section != "" {
			d.Sections[k] = tk.Section
		}
	}
	return d, nil
}
