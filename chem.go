/*
 * chem.go, part of pdbbond.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// AtomRecord is one atom read from a structure file. Index is the 0-based
// position of the atom in its Molecule.
type AtomRecord struct {
	Index    int
	Type     string //element or atom-type label, e.g. "C", "FE"
	Position r3.Vec

	//Metadata from the PDB record. Not used to determine bonds.
	Serial int
	Name   string
	Het    bool //is hetatm in the pdb file?
}

func (A AtomRecord) String() string {
	return fmt.Sprintf("%d %s (%.3f, %.3f, %.3f)", A.Index, A.Type, A.Position.X, A.Position.Y, A.Position.Z)
}

// Molecule is an ordered set of atoms. A Molecule is not modified after
// it is built, so it can be shared between goroutines.
type Molecule struct {
	atoms []AtomRecord
}

// NewMolecule builds a Molecule from the given atom types and positions, which
// must have the same length. Indexes are assigned in order.
func NewMolecule(types []string, positions []r3.Vec) (*Molecule, error) {
	if len(types) != len(positions) {
		return nil, fmt.Errorf("NewMolecule: %d types for %d positions", len(types), len(positions))
	}
	atoms := make([]AtomRecord, len(types))
	for i := range types {
		atoms[i] = AtomRecord{Index: i, Type: types[i], Position: positions[i]}
	}
	return &Molecule{atoms: atoms}, nil
}

// newMoleculeFromRecords takes ownership of ats and renumbers them.
func newMoleculeFromRecords(ats []AtomRecord) *Molecule {
	for i := range ats {
		ats[i].Index = i
	}
	return &Molecule{atoms: ats}
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	if M == nil {
		return 0
	}
	return len(M.atoms)
}

// Atom returns the atom with index i. Panics if out of range.
func (M *Molecule) Atom(i int) AtomRecord {
	if i < 0 || i >= M.Len() {
		panic(fmt.Sprintf("Molecule: Requested Atom %d out of bounds (%d atoms)", i, M.Len()))
	}
	return M.atoms[i]
}

// Types returns a new slice with the type label of each atom.
func (M *Molecule) Types() []string {
	ret := make([]string, M.Len())
	for i, a := range M.atoms {
		ret[i] = a.Type
	}
	return ret
}

// Positions returns a new slice with the coordinates of each atom.
func (M *Molecule) Positions() []r3.Vec {
	ret := make([]r3.Vec, M.Len())
	for i, a := range M.atoms {
		ret[i] = a.Position
	}
	return ret
}

// Equal reports whether both molecules have the same atoms, in the same order.
func (M *Molecule) Equal(O *Molecule) bool {
	if M.Len() != O.Len() {
		return false
	}
	for i := range M.atoms {
		if M.atoms[i] != O.atoms[i] {
			return false
		}
	}
	return true
}

// Normalized returns the coordinates of the molecule scaled to fill an area of the
// given size. See AdjustCoordinates. The molecule itself is not changed.
func (M *Molecule) Normalized(fill [2]float64, margin ...[2]float64) ([]r3.Vec, error) {
	return AdjustCoordinates(M.Positions(), fill, margin...)
}
