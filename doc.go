/*
 * doc.go, part of fftrim.
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

/*Package fftrim reduces a force-field parameter document to the subset of
entries actually used by one atom-typed molecular structure.

The input document lists atom types, nonbonded parameters and bonded
parameter sets (bonds, angles, proper and improper torsions). Given a
structure whose atoms have already been assigned types, fftrim selects,
for every bonded interaction present in the structure, the single
highest-priority parameter record that applies to it, and copies the
selected records, together with the atom-type and nonbonded records the
structure references, into an output document that preserves the layout
of the original. The trimmed document is thus an auditable, minimal
record of which parameters were applied to the structure.

Parameter records may constrain each atom position either by exact atom
type or by the type's generic class, in any mixture. Records with fewer
class-constrained positions are more specific and take priority. Matching
is aware of the ordering symmetries of each interaction kind: bonds,
angles and proper torsions match forwards and backwards, while improper
torsions are defined about a central first atom with the three peripheral
atoms in any order.

Parameter values themselves (lengths, force constants and so on) are
opaque to this package. They are carried through to the output verbatim
and never interpreted numerically.

Reading and writing the XML representation lives in the ffxml
subpackage; fftrim itself only sees parsed Documents.*/
package fftrim
