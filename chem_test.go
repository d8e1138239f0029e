/*
 * chem_test.go, part of pdbbond.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewMolecule(Te *testing.T) {
	_, err := NewMolecule([]string{"C"}, nil)
	assert.Error(Te, err)

	mol, err := NewMolecule([]string{"C", "N"}, []r3.Vec{{X: 1}, {Y: 1}})
	require.NoError(Te, err)
	assert.Equal(Te, 2, mol.Len())
	assert.Equal(Te, AtomRecord{Index: 1, Type: "N", Position: r3.Vec{Y: 1}}, mol.Atom(1))
	assert.Panics(Te, func() { mol.Atom(2) })
	assert.Panics(Te, func() { mol.Atom(-1) })

	//the returned slices are copies
	types := mol.Types()
	types[0] = "X"
	pos := mol.Positions()
	pos[0].X = 99
	assert.Equal(Te, "C", mol.Atom(0).Type)
	assert.Equal(Te, 1.0, mol.Atom(0).Position.X)

	var nilmol *Molecule
	assert.Equal(Te, 0, nilmol.Len())
	var _ Atomer = mol
}
