/*
 * schema_test.go, part of fftrim.
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
	"github.com/stretchr/testify/require"
)

// rec builds a record from alternating key/value pairs.
func rec(tag string, kv ...string) *Record {
	r := &Record{Tag: tag}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Attrs = append(r.Attrs, Attr{Key: kv[i], Value: kv[i+1]})
	}
	return r
}

func TestClassifyMixed(t *testing.T) {
	r := rec("Proper", "type1", "t1", "class2", "c2", "class3", "c3", "type4", "t4", "k1", "0.3")
	schema, weight, err := classify(r, Proper)
	require.NoError(t, err)
	assert.Equal(t, []string{"type1", "class2", "class3", "type4"}, schema)
	assert.Equal(t, 2, weight)
}

func TestClassifyAllTypes(t *testing.T) {
	r := rec("Bond", "type1", "t1", "type2", "t2", "length", "0.1")
	schema, weight, err := classify(r, Bond)
	require.NoError(t, err)
	assert.Equal(t, []string{"type1", "type2"}, schema)
	assert.Equal(t, 0, weight)
}

func TestClassifyMissingConstraint(t *testing.T) {
	r := rec("Angle", "type1", "t1", "type3", "t3", "k", "100")
	_, _, err := classify(r, Angle)
	require.Error(t, err)
	serr, ok := err.(*SchemaError)
	require.True(t, ok)
	assert.Equal(t, Angle, serr.Kind)
	assert.Equal(t, 2, serr.Position)
}

func TestNewPoolSortsBySpecificity(t *testing.T) {
	records := []*Record{
		rec("Bond", "class1", "CA", "class2", "CB"), //weight 2
		rec("Bond", "type1", "t1", "class2", "CB"),  //weight 1
		rec("Bond", "type1", "t1", "type2", "t2"),   //weight 0
		rec("Bond", "class1", "CX", "type2", "t9"),  //weight 1, after the other weight-1 record
	}
	pool, err := NewPool(records, Bond)
	require.NoError(t, err)
	require.Len(t, pool, 4)
	assert.Equal(t, 0, pool[0].Weight)
	assert.Equal(t, 1, pool[1].Weight)
	assert.Equal(t, 1, pool[2].Weight)
	assert.Equal(t, 2, pool[3].Weight)
	//stable: equal weights keep document order
	assert.Same(t, records[1], pool[1].Record)
	assert.Same(t, records[3], pool[2].Record)
}

func TestNewPoolPropagatesSchemaError(t *testing.T) {
	records := []*Record{rec("Bond", "type1", "t1")}
	_, err := NewPool(records, Bond)
	assert.Error(t, err)
}
