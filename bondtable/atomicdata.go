/*
 * atomicdata.go, part of pdbbond.
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

package bondtable

import (
	"strings"
)

// constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// A map for assigning covalent radii to elements
// Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
// Note that just common "bio-elements" are present
// Keys are upper case, as in the element columns of PDB files.
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"SE": 1.2,
	"K":  2.03,
	"CA": 1.76,
	"MG": 1.41,
	"CL": 1.02,
	"NA": 1.66,
	"CU": 1.32,
	"ZN": 1.22,
	"CO": 1.5,  // hs
	"FE": 1.52, //hs
	"MN": 1.61, //hs
	"CR": 1.39,
	"SI": 1.11,
	"BE": 0.96,
	"F":  0.57,
	"BR": 1.2,
	"I":  1.39,
}

// CovalentRadius returns the covalent radius for the element symbol, in any
// letter case, and whether the element is known.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[strings.ToUpper(symbol)]
	return r, ok
}

// Covalent builds a table for every pair among types (including each type with
// itself) from the covalent radii of the elements. The range for a pair of
// atoms with radii r1 and r2 is [0.63, r1+r2+0.45], the criterion described in
// DOI:10.1186/1758-2946-3-33. Types that are not known elements are left out,
// so the pairs involving them remain missing.
//
// Covalent is meant as a fallback: Merge(table, Covalent(types)) keeps the
// entries of table and only fills the gaps.
func Covalent(types []string) *Table {
	t := &Table{entries: make(map[Pair]Range)}
	known := make([]string, 0, len(types))
	seen := make(map[string]bool, len(types))
	for _, s := range types {
		if _, ok := CovalentRadius(s); ok && !seen[s] {
			seen[s] = true
			known = append(known, s)
		}
	}
	for i, a := range known {
		ra, _ := CovalentRadius(a)
		for _, b := range known[i:] {
			rb, _ := CovalentRadius(b)
			t.entries[MakePair(a, b)] = Range{Min: tooclose, Max: ra + rb + bondtol}
		}
	}
	return t
}
