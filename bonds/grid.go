/*
 * grid.go, part of pdbbond.
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
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// maxCells bounds the number of cells along one axis, so cell coordinates
// always fit comfortably in an int.
const maxCells = 1 << 40

type cellKey [3]int

// grid bins atoms in cubic cells with an edge at least as long as the
// longest bond allowed, so two bonded atoms are always in the same or in
// neighbouring cells.
type grid struct {
	p     *prepared
	edge  float64
	min   r3.Vec
	cell  []cellKey //cell of each atom
	cells map[cellKey][]int32
}

// gridable reports whether the atoms can be binned: every coordinate is
// finite and the longest allowed bond is finite and small enough compared
// with the size of the structure.
func (p *prepared) gridable() bool {
	if p.maxDist < 0 || math.IsInf(p.maxDist, 0) || len(p.pos) == 0 {
		return false
	}
	lo, hi := p.pos[0], p.pos[0]
	for _, v := range p.pos {
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
		lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}
	span := math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))
	return span/cellEdge(p.maxDist) < maxCells
}

// cellEdge is slightly longer than maxDist, to absorb rounding when atoms are
// assigned to cells. Pairs at distance 0 only need a positive edge.
func cellEdge(maxDist float64) float64 {
	e := maxDist * (1 + 1e-9)
	if e <= 0 {
		e = 1
	}
	return e
}

func newGrid(p *prepared) *grid {
	g := &grid{
		p:     p,
		edge:  cellEdge(p.maxDist),
		cell:  make([]cellKey, len(p.pos)),
		cells: make(map[cellKey][]int32),
	}
	if len(p.pos) == 0 {
		return g
	}
	g.min = p.pos[0]
	for _, v := range p.pos {
		g.min = r3.Vec{X: math.Min(g.min.X, v.X), Y: math.Min(g.min.Y, v.Y), Z: math.Min(g.min.Z, v.Z)}
	}
	for i, v := range p.pos {
		d := r3.Sub(v, g.min)
		k := cellKey{int(math.Floor(d.X / g.edge)), int(math.Floor(d.Y / g.edge)), int(math.Floor(d.Z / g.edge))}
		g.cell[i] = k
		g.cells[k] = append(g.cells[k], int32(i)) //atoms are appended in index order
	}
	return g
}

// row is a rowFunc that only measures the atoms in the 27 cells around atom i.
func (g *grid) row(dst []Bond, i int) []Bond {
	c := g.cell[i]
	var cand []int
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				for _, j := range g.cells[cellKey{c[0] + dx, c[1] + dy, c[2] + dz}] {
					if int(j) > i {
						cand = append(cand, int(j))
					}
				}
			}
		}
	}
	slices.Sort(cand)
	for _, j := range cand {
		if g.p.bonded(i, j) {
			dst = append(dst, Bond{I: i, J: j})
		}
	}
	return dst
}
