/*
 * graph_test.go, part of pdbbond.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chemgraph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/pdbbond"
	"github.com/rmera/pdbbond/bonds"
)

// chain returns a molecule with a linear chain of 4 atoms spaced 1.5 A apart,
// plus one isolated atom far away.
func chain(t *testing.T) (*pdbbond.Molecule, []bonds.Bond) {
	t.Helper()
	mol, err := pdbbond.NewMolecule(
		[]string{"C", "C", "O", "C", "N"},
		[]r3.Vec{{}, {X: 1.5}, {X: 3.0}, {X: 4.5}, {X: 40}},
	)
	require.NoError(t, err)
	return mol, []bonds.Bond{{I: 0, J: 1}, {I: 1, J: 2}, {I: 2, J: 3}}
}

func TestTopology(t *testing.T) {
	mol, b := chain(t)
	top, err := FromBonds(mol, b)
	require.NoError(t, err)
	assert.Equal(t, 5, top.Len())
	assert.Equal(t, []int{0, 2}, top.Neighbors(1))
	assert.Equal(t, []int{}, top.Neighbors(4))
	assert.Equal(t, 2, top.Degree(2))
	assert.Equal(t, 0, top.Degree(4))
	e := top.WeightedEdge(1, 2)
	require.NotNil(t, e)
	assert.InDelta(t, 1.5, e.Weight(), 1e-12)
	r := e.(*Bond).ReversedEdge()
	assert.Equal(t, int64(2), r.From().ID())
	assert.Equal(t, "O", r.From().(*Atom).Type)
}

func TestFragments(t *testing.T) {
	mol, b := chain(t)
	top, err := FromBonds(mol, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4}}, top.Fragments())

	top, err = FromBonds(mol, nil)
	require.NoError(t, err)
	assert.Len(t, top.Fragments(), 5)
}

func TestShortestPath(t *testing.T) {
	mol, b := chain(t)
	top, err := FromBonds(mol, append(b, bonds.Bond{I: 0, J: 3}))
	require.NoError(t, err)
	p, w := top.ShortestPath(0, 2)
	assert.Equal(t, []int{0, 1, 2}, p)
	assert.InDelta(t, 3.0, w, 1e-12)
	p, w = top.ShortestPath(3, 1)
	assert.Equal(t, []int{3, 2, 1}, p)
	assert.InDelta(t, 3.0, w, 1e-12)
	p, w = top.ShortestPath(2, 2)
	assert.Equal(t, []int{2}, p)
	assert.Zero(t, w)

	p, w = top.ShortestPath(0, 4)
	assert.Nil(t, p)
	assert.True(t, math.IsInf(w, 1))
	p, w = top.ShortestPath(0, 99)
	assert.Nil(t, p)
	assert.True(t, math.IsInf(w, 1))
}

func TestInvalidBonds(t *testing.T) {
	mol, _ := chain(t)
	for _, b := range []bonds.Bond{{I: 0, J: 0}, {I: 2, J: 5}, {I: -1, J: 2}} {
		_, err := FromBonds(mol, []bonds.Bond{b})
		assert.Error(t, err, b.String())
	}
}
