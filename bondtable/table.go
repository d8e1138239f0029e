/*
 * table.go, part of pdbbond.
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

// Package bondtable holds the tables of allowed bond lengths for pairs of atom
// types. A Table is built once and never changed afterwards, so a single
// Table can be shared by any number of goroutines without locking.
package bondtable

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

var (
	// ErrInvalidRange is returned for ranges with Min > Max, negative or NaN limits.
	ErrInvalidRange = errors.New("invalid bond distance range")
	// ErrConflictingEntry is returned when both orders of a pair are given with different ranges.
	ErrConflictingEntry = errors.New("conflicting bond distance entries")
	// ErrMalformedKey is returned for table keys that are not of the form "A-B".
	ErrMalformedKey = errors.New("malformed bond distance key")
)

// Range is an inclusive interval of interatomic distances, in the same
// units as the coordinates (Angstrom for PDB files).
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether Min <= d <= Max.
func (r Range) Contains(d float64) bool {
	return r.Min <= d && d <= r.Max
}

func (r Range) valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) && r.Min >= 0 && r.Min <= r.Max
}

// Pair is an unordered pair of atom-type labels. Pairs returned by this
// package are canonical: A <= B.
type Pair struct {
	A, B string
}

// MakePair returns the canonical pair for the labels a and b.
func MakePair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Canonical returns the pair with its labels in lexicographic order.
func (p Pair) Canonical() Pair {
	return MakePair(p.A, p.B)
}

// String returns the pair as "A-B", the form used for keys in table files.
func (p Pair) String() string {
	return p.A + "-" + p.B
}

// ParsePair reads a pair from the "A-B" form.
func ParsePair(s string) (Pair, error) {
	a, b, ok := strings.Cut(s, "-")
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if !ok || a == "" || b == "" || strings.Contains(b, "-") {
		return Pair{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}
	return Pair{A: a, B: b}, nil
}

// Table maps unordered pairs of atom-type labels to bond distance ranges.
type Table struct {
	entries map[Pair]Range
}

// New builds a Table from entries. The keys need not be canonical, but if a
// pair is given in both orders, the ranges must be equal.
func New(entries map[Pair]Range) (*Table, error) {
	t := &Table{entries: make(map[Pair]Range, len(entries))}
	for p, r := range entries {
		if err := t.add(p, r); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(p Pair, r Range) error {
	if !r.valid() {
		return fmt.Errorf("%w: %s [%g, %g]", ErrInvalidRange, p, r.Min, r.Max)
	}
	c := p.Canonical()
	if prev, ok := t.entries[c]; ok && prev != r {
		return fmt.Errorf("%w: %s [%g, %g] and [%g, %g]", ErrConflictingEntry, c, prev.Min, prev.Max, r.Min, r.Max)
	}
	t.entries[c] = r
	return nil
}

// Lookup returns the range for the labels a and b, in any order.
func (t *Table) Lookup(a, b string) (Range, bool) {
	if t == nil {
		return Range{}, false
	}
	r, ok := t.entries[Pair{A: a, B: b}]
	if !ok {
		r, ok = t.entries[Pair{A: b, B: a}]
	}
	return r, ok
}

// Len returns the number of pairs in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Pairs returns the canonical pairs in the table, sorted.
func (t *Table) Pairs() []Pair {
	ret := make([]Pair, 0, t.Len())
	if t == nil {
		return ret
	}
	for p := range t.entries {
		ret = append(ret, p)
	}
	slices.SortFunc(ret, ComparePairs)
	return ret
}

// ComparePairs orders pairs by their first label, then by the second.
func ComparePairs(p, q Pair) int {
	if c := strings.Compare(p.A, q.A); c != 0 {
		return c
	}
	return strings.Compare(p.B, q.B)
}

// Merge returns a new Table with the entries of all the given tables. When
// more than one table has a pair, the first one wins. nil tables are skipped.
func Merge(tables ...*Table) *Table {
	ret := &Table{entries: make(map[Pair]Range)}
	for _, t := range tables {
		if t == nil {
			continue
		}
		for p, r := range t.entries {
			if _, ok := ret.entries[p]; !ok {
				ret.entries[p] = r
			}
		}
	}
	return ret
}
