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

/*Package ffxml reads and writes force-field documents in the foyer/OpenMM
XML layout: a root element whose children are named sections, each
holding flat parameter records whose attributes carry the payload.

Files ending in .gz are read and written through gzip transparently.

The package only deals with representation. What to keep from a document
is decided by the parent fftrim package, which sees the parsed form.*/
package ffxml
