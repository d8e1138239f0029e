/*
 * missing.go, part of pdbbond.
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
	"slices"

	"github.com/rmera/pdbbond/bondtable"
)

// MissingSet is a set of pairs of atom types that have no entry in a bond
// distance table. Pairs are stored in canonical order, so each unordered
// pair is present at most once.
type MissingSet map[bondtable.Pair]struct{}

// Add adds the pair (a, b) to the set.
func (m MissingSet) Add(a, b string) {
	m[bondtable.MakePair(a, b)] = struct{}{}
}

// Has reports whether the pair (a, b), in any order, is in the set.
func (m MissingSet) Has(a, b string) bool {
	_, ok := m[bondtable.MakePair(a, b)]
	return ok
}

// Len returns the number of pairs in the set.
func (m MissingSet) Len() int {
	return len(m)
}

// Sorted returns the pairs in the set, sorted.
func (m MissingSet) Sorted() []bondtable.Pair {
	ret := make([]bondtable.Pair, 0, len(m))
	for p := range m {
		ret = append(ret, p)
	}
	slices.SortFunc(ret, bondtable.ComparePairs)
	return ret
}

// Union adds all the pairs in o to m.
func (m MissingSet) Union(o MissingSet) {
	for p := range o {
		m[p] = struct{}{}
	}
}
