/*
 * engine_test.go, part of pdbbond.
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

package bonds

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/pdbbond"
	"github.com/rmera/pdbbond/bondtable"
)

func mustMolecule(t testing.TB, types []string, pos []r3.Vec) *pdbbond.Molecule {
	t.Helper()
	mol, err := pdbbond.NewMolecule(types, pos)
	require.NoError(t, err)
	return mol
}

func mustTable(t testing.TB, entries map[bondtable.Pair]bondtable.Range) *bondtable.Table {
	t.Helper()
	table, err := bondtable.New(entries)
	require.NoError(t, err)
	return table
}

func ccTable(t testing.TB) *bondtable.Table {
	return mustTable(t, map[bondtable.Pair]bondtable.Range{{A: "C", B: "C"}: {Min: 1.2, Max: 1.6}})
}

var allStrategies = []Strategy{Auto, BruteForce, Grid}

func TestScenarios(t *testing.T) {
	cases := []struct {
		name    string
		types   []string
		pos     []r3.Vec
		bonds   []Bond
		missing []bondtable.Pair
	}{
		{"in range", []string{"C", "C"}, []r3.Vec{{}, {Z: 1.5}}, []Bond{{I: 0, J: 1}}, nil},
		{"out of range", []string{"C", "C"}, []r3.Vec{{}, {Z: 2.0}}, []Bond{}, nil},
		{"no entry", []string{"Y", "X"}, []r3.Vec{{}, {Z: 1.5}}, []Bond{}, []bondtable.Pair{{A: "X", B: "Y"}}},
		{"lower bound", []string{"C", "C"}, []r3.Vec{{}, {X: 1.2}}, []Bond{{I: 0, J: 1}}, nil},
		{"upper bound", []string{"C", "C"}, []r3.Vec{{}, {Y: 1.6}}, []Bond{{I: 0, J: 1}}, nil},
		{"coincident", []string{"C", "C"}, []r3.Vec{{X: 3}, {X: 3}}, []Bond{}, nil},
		{"single atom", []string{"C"}, []r3.Vec{{}}, []Bond{}, nil},
		{"empty", nil, nil, []Bond{}, nil},
	}
	for _, c := range cases {
		for _, s := range allStrategies {
			t.Run(c.name+"/"+s.String(), func(t *testing.T) {
				mol := mustMolecule(t, c.types, c.pos)
				b, missing := Determine(mol, ccTable(t), WithStrategy(s))
				assert.Equal(t, c.bonds, b)
				if c.missing == nil {
					assert.Equal(t, 0, missing.Len())
				} else {
					assert.Equal(t, c.missing, missing.Sorted())
				}
			})
		}
	}
}

func TestZeroDistanceRange(t *testing.T) {
	table := mustTable(t, map[bondtable.Pair]bondtable.Range{{A: "H", B: "H"}: {Min: 0, Max: 0}})
	mol := mustMolecule(t, []string{"H", "H", "H"}, []r3.Vec{{X: 1}, {X: 1}, {X: 1.5}})
	for _, s := range allStrategies {
		b, _ := Determine(mol, table, WithStrategy(s))
		assert.Equal(t, []Bond{{I: 0, J: 1}}, b, s.String())
	}
}

func TestMissingDeduplicated(t *testing.T) {
	//many X-Y atom pairs, a single missing pair; C-C resolved but out of range.
	types := []string{"X", "Y", "C", "Y", "X", "C", "X"}
	pos := make([]r3.Vec, len(types))
	for i := range pos {
		pos[i] = r3.Vec{X: float64(i) * 5}
	}
	mol := mustMolecule(t, types, pos)
	b, missing := Determine(mol, ccTable(t))
	assert.Empty(t, b)
	assert.Equal(t, []bondtable.Pair{
		{A: "C", B: "X"}, {A: "C", B: "Y"}, {A: "X", B: "X"}, {A: "X", B: "Y"}, {A: "Y", B: "Y"},
	}, missing.Sorted())
	assert.True(t, missing.Has("Y", "X"))
	assert.False(t, missing.Has("C", "C"))
}

func TestMissingSelfPairNeedsTwoAtoms(t *testing.T) {
	mol := mustMolecule(t, []string{"C", "Q"}, []r3.Vec{{}, {X: 1.4}})
	_, missing := Determine(mol, ccTable(t))
	assert.Equal(t, []bondtable.Pair{{A: "C", B: "Q"}}, missing.Sorted())
}

func TestOrderAndReversedEntries(t *testing.T) {
	table := mustTable(t, map[bondtable.Pair]bondtable.Range{
		{A: "N", B: "C"}: {Min: 1.0, Max: 1.6},
		{A: "H", B: "N"}: {Min: 0.9, Max: 1.1},
	})
	//H(0) N(1) C(2) C(3): H-N and N-C bonded, C-C has no entry, H-C has no entry.
	mol := mustMolecule(t, []string{"H", "N", "C", "C"}, []r3.Vec{{X: -1}, {}, {X: 1.4}, {X: 2.9}})
	b, missing := Determine(mol, table, WithStrategy(BruteForce))
	assert.Equal(t, []Bond{{I: 0, J: 1}, {I: 1, J: 2}}, b)
	assert.Equal(t, []bondtable.Pair{{A: "C", B: "C"}, {A: "C", B: "H"}}, missing.Sorted())
}

// randomMolecule places n atoms of a few types in a box where many pairs
// fall inside the table ranges.
func randomMolecule(t testing.TB, n int, seed uint64) *pdbbond.Molecule {
	rng := rand.New(rand.NewPCG(seed, seed*7+1))
	labels := []string{"C", "N", "O", "H", "S", "ZZ"}
	types := make([]string, n)
	pos := make([]r3.Vec, n)
	side := math.Cbrt(float64(n)) * 1.6
	for i := range types {
		types[i] = labels[rng.IntN(len(labels))]
		pos[i] = r3.Vec{X: rng.Float64() * side, Y: rng.Float64() * side, Z: rng.Float64() * side}
	}
	return mustMolecule(t, types, pos)
}

// bruteReference is the plain double loop over all pairs, with lookups done
// directly on the table.
func bruteReference(mol *pdbbond.Molecule, table *bondtable.Table) ([]Bond, MissingSet) {
	b := []Bond{}
	missing := make(MissingSet)
	for i := 0; i < mol.Len(); i++ {
		for j := i + 1; j < mol.Len(); j++ {
			ai, aj := mol.Atom(i), mol.Atom(j)
			r, ok := table.Lookup(ai.Type, aj.Type)
			if !ok {
				missing.Add(ai.Type, aj.Type)
				continue
			}
			if r.Contains(r3.Norm(r3.Sub(ai.Position, aj.Position))) {
				b = append(b, Bond{I: i, J: j})
			}
		}
	}
	return b, missing
}

func TestMatchesReference(t *testing.T) {
	table := bondtable.Default()
	for _, n := range []int{2, 17, 300, 1500} {
		mol := randomMolecule(t, n, uint64(n))
		wantB, wantM := bruteReference(mol, table)
		for _, s := range allStrategies {
			for _, w := range []int{1, 3, 16} {
				b, m := Determine(mol, table, WithStrategy(s), WithWorkers(w), WithGridThreshold(100))
				assert.Equal(t, wantB, b, "n=%d strategy=%s workers=%d", n, s, w)
				assert.Equal(t, wantM, m, "n=%d strategy=%s workers=%d", n, s, w)
			}
		}
	}
}

func TestDeterministicAcrossWorkers(t *testing.T) {
	mol := randomMolecule(t, 800, 42)
	engine1 := NewEngine(bondtable.Default(), WithWorkers(1))
	b1, m1 := engine1.Determine(mol)
	require.NotEmpty(t, b1)
	for _, w := range []int{2, 4, 7, 64} {
		bn, mn := NewEngine(bondtable.Default(), WithWorkers(w)).Determine(mol)
		assert.Equal(t, b1, bn)
		assert.Equal(t, m1, mn)
	}
	for k := 1; k < len(b1); k++ {
		prev, cur := b1[k-1], b1[k]
		assert.True(t, prev.I < cur.I || (prev.I == cur.I && prev.J < cur.J))
	}
}

func TestInclusionLaw(t *testing.T) {
	table := bondtable.Default()
	mol := randomMolecule(t, 200, 9)
	b, _ := Determine(mol, table, WithStrategy(Grid))
	bonded := make(map[Bond]bool, len(b))
	for _, v := range b {
		bonded[v] = true
	}
	for i := 0; i < mol.Len(); i++ {
		for j := i + 1; j < mol.Len(); j++ {
			ai, aj := mol.Atom(i), mol.Atom(j)
			r, ok := table.Lookup(ai.Type, aj.Type)
			if !ok {
				assert.False(t, bonded[Bond{I: i, J: j}])
				continue
			}
			d := r3.Norm(r3.Sub(ai.Position, aj.Position))
			assert.Equal(t, r.Min <= d && d <= r.Max, bonded[Bond{I: i, J: j}], "%d-%d d=%g", i, j, d)
		}
	}
}

func TestNonFiniteFallsBack(t *testing.T) {
	mol := mustMolecule(t, []string{"C", "C", "C"}, []r3.Vec{{}, {X: 1.5}, {X: math.NaN()}})
	b, _ := Determine(mol, ccTable(t), WithStrategy(Grid))
	assert.Equal(t, []Bond{{I: 0, J: 1}}, b)
}

func TestNoRanges(t *testing.T) {
	mol := randomMolecule(t, 50, 3)
	empty := mustTable(t, nil)
	b, missing := Determine(mol, empty, WithStrategy(Grid))
	assert.Equal(t, []Bond{}, b)
	assert.NotZero(t, missing.Len())
	b, _ = Determine(mol, nil)
	assert.Equal(t, []Bond{}, b)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range allStrategies {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStrategy("quantum")
	assert.Error(t, err)
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}

func TestMissingSetUnion(t *testing.T) {
	a := make(MissingSet)
	a.Add("X", "Y")
	b := make(MissingSet)
	b.Add("Y", "X")
	b.Add("Q", "Q")
	a.Union(b)
	assert.Equal(t, []bondtable.Pair{{A: "Q", B: "Q"}, {A: "X", B: "Y"}}, a.Sorted())
}

func BenchmarkDetermine(b *testing.B) {
	mol := randomMolecule(b, 5000, 5)
	table := bondtable.Default()
	for _, s := range []Strategy{BruteForce, Grid} {
		b.Run(s.String(), func(b *testing.B) {
			engine := NewEngine(table, WithStrategy(s))
			for b.Loop() {
				engine.Determine(mol)
			}
		})
	}
}
