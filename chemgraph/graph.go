/*
 * graph.go, part of pdbbond.
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

// Package chemgraph represents a structure and its bonds as a gonum graph,
// with atoms as nodes and bonds as undirected edges weighted by bond length.
package chemgraph

import (
	"fmt"
	"math"
	"slices"

	"github.com/rmera/pdbbond"
	"github.com/rmera/pdbbond/bonds"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is a graph node. Its ID is the index of the atom.
type Atom struct {
	pdbbond.AtomRecord
}

// ID implements graph.Node.
func (A *Atom) ID() int64 {
	return int64(A.Index)
}

// Bond is a weighted graph edge between two atoms. The weight is the bond
// length.
type Bond struct {
	At1, At2 *Atom
	Dist     float64
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

// Bonds are not directional, the reversed edge is the same bond seen from
// the other atom.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{At1: B.At2, At2: B.At1, Dist: B.Dist}
}

func (B *Bond) Weight() float64 {
	return B.Dist
}

// Topology is the graph of a structure. It implements graph.Undirected and
// graph.Weighted through the embedded gonum graph.
type Topology struct {
	*simple.WeightedUndirectedGraph
	atoms []*Atom
}

// FromBonds builds the graph for mol with the given bonds. It returns an error
// if a bond refers to an atom not in mol or bonds an atom to itself.
func FromBonds(mol pdbbond.Atomer, b []bonds.Bond) (*Topology, error) {
	T := &Topology{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		atoms:                   make([]*Atom, mol.Len()),
	}
	for i := range T.atoms {
		T.atoms[i] = &Atom{AtomRecord: mol.Atom(i)}
		T.AddNode(T.atoms[i])
	}
	for k, v := range b {
		if v.I < 0 || v.J < 0 || v.I >= len(T.atoms) || v.J >= len(T.atoms) || v.I == v.J {
			return nil, fmt.Errorf("FromBonds: Bond %d (%s) is not valid for %d atoms", k, v, len(T.atoms))
		}
		at1, at2 := T.atoms[v.I], T.atoms[v.J]
		d := r3.Norm(r3.Sub(at1.Position, at2.Position))
		T.SetWeightedEdge(&Bond{At1: at1, At2: at2, Dist: d})
	}
	return T, nil
}

// Len returns the number of atoms in the graph.
func (T *Topology) Len() int {
	return len(T.atoms)
}

// Neighbors returns the indexes of the atoms bonded to atom i, sorted.
func (T *Topology) Neighbors(i int) []int {
	nodes := graph.NodesOf(T.From(int64(i)))
	ret := make([]int, len(nodes))
	for k, n := range nodes {
		ret[k] = int(n.ID())
	}
	slices.Sort(ret)
	return ret
}

// Degree returns the number of bonds of atom i.
func (T *Topology) Degree(i int) int {
	return T.From(int64(i)).Len()
}

// Fragments returns the sets of atoms connected by bonds. Each fragment is
// sorted, and fragments are sorted by their first atom. Atoms without bonds
// form fragments of their own.
func (T *Topology) Fragments() [][]int {
	comps := topo.ConnectedComponents(T)
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		f := make([]int, len(c))
		for k, n := range c {
			f[k] = int(n.ID())
		}
		slices.Sort(f)
		ret = append(ret, f)
	}
	slices.SortFunc(ret, func(a, b []int) int { return a[0] - b[0] })
	return ret
}

// ShortestPath returns the atoms in the shortest path, by total bond
// length, between atoms from and to (both included) and the length of that
// path. If there is no path, it returns nil and +Inf.
func (T *Topology) ShortestPath(from, to int) ([]int, float64) {
	if from < 0 || to < 0 || from >= T.Len() || to >= T.Len() {
		return nil, math.Inf(1)
	}
	shortest := path.DijkstraFrom(T.Node(int64(from)), T)
	nodes, w := shortest.To(int64(to))
	if len(nodes) == 0 {
		return nil, w
	}
	ret := make([]int, len(nodes))
	for k, n := range nodes {
		ret[k] = int(n.ID())
	}
	return ret, w
}
