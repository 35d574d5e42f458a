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

package fftrim

// Dialect names the tags and sections of a force-field document. The
// zero value is useless; start from DefaultDialect. The defaults follow
// the foyer/OpenMM convention, where, for instance, proper torsions are
// Proper records living in an RBTorsionForce section.
type Dialect struct {
	Root             string //root element, e.g. "ForceField"
	AtomTypesSection string
	NonbondedSection string
	TypeTag          string //atom-type definition records
	NonbondedTag     string //per-type nonbonded records
	Tags             map[Kind]string
	Sections         map[Kind]string
}

// DefaultDialect returns the foyer/OpenMM naming.
func DefaultDialect() Dialect {
	return Dialect{
		Root:             "ForceField",
		AtomTypesSection: "AtomTypes",
		NonbondedSection: "NonbondedForce",
		TypeTag:          "Type",
		NonbondedTag:     "Atom",
		Tags: map[Kind]string{
			Bond:     "Bond",
			Angle:    "Angle",
			Proper:   "Proper",
			Improper: "Improper",
		},
		Sections: map[Kind]string{
			Bond:     "HarmonicBondForce",
			Angle:    "HarmonicAngleForce",
			Proper:   "RBTorsionForce",
			Improper: "PeriodicTorsionForce",
		},
	}
}
