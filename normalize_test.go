/*
 * normalize_test.go, part of pdbbond.
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

package pdbbond

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAdjustCoordinates(Te *testing.T) {
	raw := []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 3, Y: 2, Z: 1}, {X: 2, Y: 5, Z: 2}}
	got, err := AdjustCoordinates(raw, [2]float64{100, 200}, [2]float64{10, 20})
	require.NoError(Te, err)
	//extent is 4 (y), scale 100/4 = 25
	want := []r3.Vec{{X: 10, Y: 20, Z: 0}, {X: 60, Y: 45, Z: 0}, {X: 35, Y: 120, Z: 25}}
	require.Len(Te, got, len(want))
	for i := range want {
		assert.InDelta(Te, want[i].X, got[i].X, 1e-12)
		assert.InDelta(Te, want[i].Y, got[i].Y, 1e-12)
		assert.InDelta(Te, want[i].Z, got[i].Z, 1e-12)
	}
	//the input is not touched
	assert.Equal(Te, r3.Vec{X: 3, Y: 2, Z: 1}, raw[1])
}

func TestAdjustCoordinatesDefaultMargin(Te *testing.T) {
	raw := []r3.Vec{{X: -1, Y: 0, Z: 5}, {X: 1, Y: 0, Z: 5}}
	got, err := AdjustCoordinates(raw, [2]float64{10, 10})
	require.NoError(Te, err)
	assert.Equal(Te, []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}}, got)
	again, err := AdjustCoordinates(raw, [2]float64{10, 10})
	require.NoError(Te, err)
	assert.Equal(Te, got, again)
}

func TestAdjustCoordinatesDegenerate(Te *testing.T) {
	same := []r3.Vec{{X: 2, Y: 2, Z: 2}, {X: 2, Y: 2, Z: 2}, {X: 2, Y: 2, Z: 2}}
	cases := map[string][]r3.Vec{
		"coincident": same,
		"single":     same[:1],
		"empty":      nil,
		"nan":        {{X: 0}, {X: math.NaN()}},
		"inf":        {{X: 0}, {X: math.Inf(1)}},
	}
	for name, raw := range cases {
		Te.Run(name, func(Te *testing.T) {
			_, err := AdjustCoordinates(raw, [2]float64{10, 10})
			require.Error(Te, err)
			assert.ErrorIs(Te, err, ErrDegenerateGeometry)
			var derr *DegenerateGeometryError
			assert.True(Te, errors.As(err, &derr))
			assert.Equal(Te, len(raw), derr.Points)
		})
	}
}

func TestAdjustCoordinatesScaleLaw(Te *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	raw := make([]r3.Vec, 40)
	for i := range raw {
		raw[i] = r3.Vec{X: rng.Float64()*30 - 15, Y: rng.Float64() * 8, Z: rng.Float64()*50 - 3}
	}
	fill := [2]float64{640, 480}
	got, err := AdjustCoordinates(raw, fill, [2]float64{5, 7})
	require.NoError(Te, err)
	lo, hi := raw[0], raw[0]
	for _, v := range raw {
		lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}
	extent := math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))
	scale := 480 / extent
	for i := range raw {
		for j := i + 1; j < len(raw); j++ {
			din := r3.Norm(r3.Sub(raw[i], raw[j]))
			dout := r3.Norm(r3.Sub(got[i], got[j]))
			assert.InDelta(Te, scale, dout/din, 1e-9)
		}
	}
}

func TestMoleculeNormalized(Te *testing.T) {
	mol, err := NewMolecule([]string{"C", "O"}, []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 2}})
	require.NoError(Te, err)
	got, err := mol.Normalized([2]float64{4, 8}, [2]float64{1, 1})
	require.NoError(Te, err)
	assert.Equal(Te, []r3.Vec{{X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 4}}, got)
	assert.Equal(Te, r3.Vec{X: 0, Y: 0, Z: 2}, mol.Atom(1).Position)
}
