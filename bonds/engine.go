/*
 * engine.go, part of pdbbond.
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

// Package bonds determines the bonds of a structure from the distances
// between its atoms and a table of allowed bond lengths for each pair of
// atom types.
package bonds

import (
	"fmt"
	"math"
	"time"

	"github.com/rmera/pdbbond"
	"github.com/rmera/pdbbond/bondtable"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bond is a pair of atom indexes, with I < J.
type Bond struct {
	I, J int
}

func (b Bond) String() string {
	return fmt.Sprintf("%d-%d", b.I, b.J)
}

// Engine determines bonds using a fixed table. An Engine can be used
// concurrently.
type Engine struct {
	table *bondtable.Table
	opts  options
}

// NewEngine returns an Engine that uses table. The table is only read.
func NewEngine(table *bondtable.Table, opts ...Option) *Engine {
	return &Engine{table: table, opts: buildOptions(opts)}
}

// Determine is NewEngine(table, opts...).Determine(mol).
func Determine(mol pdbbond.Atomer, table *bondtable.Table, opts ...Option) ([]Bond, MissingSet) {
	return NewEngine(table, opts...).Determine(mol)
}

// Determine returns the bonds of mol and the pairs of atom types in mol for
// which the table has no range.
//
// A pair of atoms i < j is bonded if the table has a range for their types
// and their distance d satisfies Min <= d <= Max. Bonds are returned sorted
// by I, then by J, regardless of the strategy and number of workers.
// Pairs whose distance is out of range are not reported anywhere.
func (e *Engine) Determine(mol pdbbond.Atomer) ([]Bond, MissingSet) {
	start := time.Now()
	p := prepare(mol, e.table)
	missing := p.missing()
	strategy := e.pickStrategy(p)
	var rows rowFunc
	switch strategy {
	case Grid:
		rows = newGrid(p).row
	default:
		rows = p.bruteRow
	}
	bonds := []Bond{}
	if p.maxDist >= 0 {
		bonds = e.run(p.len(), rows)
	}
	e.opts.logger.Debug("bonds determined",
		"atoms", p.len(),
		"types", len(p.labels),
		"bonds", len(bonds),
		"missing", missing.Len(),
		"strategy", strategy,
		"workers", e.opts.workers,
		"elapsed", time.Since(start))
	return bonds, missing
}

func (e *Engine) pickStrategy(p *prepared) Strategy {
	s := e.opts.strategy
	if s == Auto && p.len() >= e.opts.gridThreshold {
		s = Grid
	}
	if s == Grid && !p.gridable() {
		s = BruteForce
	}
	if s == Auto {
		s = BruteForce
	}
	return s
}

// rowFunc appends to dst the bonds (i, j) with j > i, in increasing j.
type rowFunc func(dst []Bond, i int) []Bond

// run splits the rows in contiguous chunks, so concatenating the chunk results
// in order gives the bonds in canonical order.
func (e *Engine) run(n int, rows rowFunc) []Bond {
	if n < 2 {
		return []Bond{}
	}
	workers := e.opts.workers
	nchunks := min(workers*8, n)
	if workers == 1 {
		nchunks = 1
	}
	partial := make([][]Bond, nchunks)
	chunk := func(c int) {
		from, to := c*n/nchunks, (c+1)*n/nchunks
		var b []Bond
		for i := from; i < to; i++ {
			b = rows(b, i)
		}
		partial[c] = b
	}
	if nchunks == 1 {
		chunk(0)
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for c := range nchunks {
			g.Go(func() error {
				chunk(c)
				return nil
			})
		}
		g.Wait() //the chunks never fail
	}
	total := 0
	for _, b := range partial {
		total += len(b)
	}
	bonds := make([]Bond, 0, total)
	for _, b := range partial {
		bonds = append(bonds, b...)
	}
	return bonds
}

// typePair is an unordered pair of interned atom-type IDs, with a <= b.
type typePair struct {
	a, b int32
}

func makeTypePair(a, b int32) typePair {
	if b < a {
		a, b = b, a
	}
	return typePair{a: a, b: b}
}

// prepared holds a structure with its atom types interned and the table
// ranges resolved for every pair of types present.
type prepared struct {
	pos      []r3.Vec
	tid      []int32
	labels   []string //labels[id] is the label interned as id
	count    []int
	resolved map[typePair]bondtable.Range
	lut      []int32 //len(labels)^2, index in ranges or -1
	ranges   []bondtable.Range
	maxDist  float64 //largest Max among the resolved ranges, -1 if none
}

func prepare(mol pdbbond.Atomer, table *bondtable.Table) *prepared {
	n := mol.Len()
	p := &prepared{pos: make([]r3.Vec, n), tid: make([]int32, n), maxDist: -1}
	ids := make(map[string]int32)
	for i := 0; i < n; i++ {
		at := mol.Atom(i)
		id, ok := ids[at.Type]
		if !ok {
			id = int32(len(p.labels))
			ids[at.Type] = id
			p.labels = append(p.labels, at.Type)
			p.count = append(p.count, 0)
		}
		p.count[id]++
		p.tid[i] = id
		p.pos[i] = at.Position
	}
	k := len(p.labels)
	p.resolved = make(map[typePair]bondtable.Range)
	p.lut = make([]int32, k*k)
	for a := range k {
		for b := a; b < k; b++ {
			idx := int32(-1)
			if r, ok := table.Lookup(p.labels[a], p.labels[b]); ok {
				p.resolved[makeTypePair(int32(a), int32(b))] = r
				idx = int32(len(p.ranges))
				p.ranges = append(p.ranges, r)
				p.maxDist = math.Max(p.maxDist, r.Max)
			}
			p.lut[a*k+b] = idx
			p.lut[b*k+a] = idx
		}
	}
	return p
}

func (p *prepared) len() int {
	return len(p.pos)
}

// missing returns the type pairs that occur among the atom pairs of the
// structure and have no range. A pair of different types occurs whenever
// both types are present, a type paired with itself needs two atoms.
func (p *prepared) missing() MissingSet {
	m := make(MissingSet)
	for a := range p.labels {
		for b := a; b < len(p.labels); b++ {
			if a == b && p.count[a] < 2 {
				continue
			}
			if _, ok := p.resolved[makeTypePair(int32(a), int32(b))]; !ok {
				m.Add(p.labels[a], p.labels[b])
			}
		}
	}
	return m
}

// bonded reports whether atoms i and j are bonded.
func (p *prepared) bonded(i, j int) bool {
	idx := p.lut[int(p.tid[i])*len(p.labels)+int(p.tid[j])]
	if idx < 0 {
		return false
	}
	d := r3.Norm(r3.Sub(p.pos[i], p.pos[j]))
	return p.ranges[idx].Contains(d)
}

func (p *prepared) bruteRow(dst []Bond, i int) []Bond {
	for j := i + 1; j < len(p.pos); j++ {
		if p.bonded(i, j) {
			dst = append(dst, Bond{I: i, J: j})
		}
	}
	return dst
}
