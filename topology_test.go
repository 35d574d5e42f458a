/*
 * topology_test.go, part of fftrim.
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueTuplesBonds(t *testing.T) {
	tuples := [][]string{
		{"t1", "t2"},
		{"t2", "t1"}, //reverse of the first
		{"t2", "t3"},
		{"t1", "t2"}, //plain duplicate
	}
	got := UniqueTuples(tuples, Bond)
	assert.Equal(t, [][]string{{"t1", "t2"}, {"t2", "t3"}}, got)
}

func TestUniqueTuplesAngles(t *testing.T) {
	tuples := [][]string{
		{"a", "b", "c"},
		{"c", "b", "a"}, //reverse
		{"a", "c", "b"}, //different central atom, distinct
	}
	got := UniqueTuples(tuples, Angle)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"a", "c", "b"}}, got)
}

func TestUniqueTuplesImproper(t *testing.T) {
	//all six orderings of the peripherals about the same center
	tuples := [][]string{
		{"x", "b", "c", "d"},
		{"x", "b", "d", "c"},
		{"x", "c", "b", "d"},
		{"x", "c", "d", "b"},
		{"x", "d", "b", "c"},
		{"x", "d", "c", "b"},
		{"y", "b", "c", "d"}, //different center, distinct
	}
	got := UniqueTuples(tuples, Improper)
	assert.Equal(t, [][]string{{"x", "b", "c", "d"}, {"y", "b", "c", "d"}}, got)
}

func TestUniqueTuplesImproperCenterNotPermuted(t *testing.T) {
	//the center takes part in the tuple but never moves position,
	//so swapping it with a peripheral is a different interaction
	tuples := [][]string{
		{"x", "y", "c", "d"},
		{"y", "x", "c", "d"},
	}
	got := UniqueTuples(tuples, Improper)
	assert.Len(t, got, 2)
}

func TestUniqueTuplesIdempotent(t *testing.T) {
	tuples := [][]string{
		{"a", "b", "c", "d"},
		{"d", "c", "b", "a"},
		{"a", "b", "c", "e"},
	}
	once := UniqueTuples(tuples, Proper)
	twice := UniqueTuples(once, Proper)
	assert.Equal(t, once, twice)
}

func TestUniqueTuplesFirstOccurrenceOrder(t *testing.T) {
	//the canonical representative is the first form seen, in source order
	tuples := [][]string{
		{"t2", "t1"},
		{"t1", "t2"},
	}
	got := UniqueTuples(tuples, Bond)
	assert.Equal(t, [][]string{{"t2", "t1"}}, got)
}

func TestKindArity(t *testing.T) {
	assert.Equal(t, 2, Bond.Arity())
	assert.Equal(t, 3, Angle.Arity())
	assert.Equal(t, 4, Proper.Arity())
	assert.Equal(t, 4, Improper.Arity())
	for _, k := range Kinds {
		for _, perm := range k.Equivalences() {
			assert.Len(t, perm, k.Arity())
		}
	}
	assert.Len(t, Improper.Equivalences(), 6)
}
