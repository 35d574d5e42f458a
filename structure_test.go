/*
 * structure_test.go, part of fftrim.
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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructureCollectsTypes(t *testing.T) {
	S, err := NewStructure([]string{"lone"},
		[][]string{{"t1", "t2"}},
		[][]string{{"t2", "t1", "t3"}},
		nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"lone", "t1", "t2", "t3"}, S.AtomTypes())
}

func TestNewStructureBadArity(t *testing.T) {
	_, err := NewStructure(nil, [][]string{{"t1", "t2", "t3"}}, nil, nil, nil)
	assert.Error(t, err)
	_, err = NewStructure(nil, nil, nil, [][]string{{"a", "b", "c"}}, nil)
	assert.Error(t, err)
}

func TestAsStructure(t *testing.T) {
	S, err := NewStructure([]string{"t1"}, nil, nil, nil, nil)
	require.NoError(t, err)
	got, err := AsStructure(S)
	require.NoError(t, err)
	assert.Same(t, S, got)

	_, err = AsStructure(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "int")

	var nilS *Structure
	_, err = AsStructure(nilS)
	assert.Error(t, err)
}

func TestStructureJSONRoundtrip(t *testing.T) {
	in := `{
	 "atomtypes": ["t1", "t2"],
	 "bonds": [["t1", "t2"]],
	 "impropers": [["t1", "t2", "t2", "t2"]]
	}`
	S, err := ReadStructureJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"t1", "t2"}}, S.Tuples(Bond))
	assert.Empty(t, S.Tuples(Angle))
	assert.Len(t, S.Tuples(Improper), 1)

	var b bytes.Buffer
	require.NoError(t, S.WriteJSON(&b))
	S2, err := ReadStructureJSON(&b)
	require.NoError(t, err)
	assert.Equal(t, S.AtomTypes(), S2.AtomTypes())
	assert.Equal(t, S.Tuples(Bond), S2.Tuples(Bond))
}

func TestReadStructureJSONBadArity(t *testing.T) {
	_, err := ReadStructureJSON(strings.NewReader(`{"bonds": [["a"]]}`))
	assert.Error(t, err)
}
