/*
 * json.go, part of pdbbond.
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/rmera/pdbbond"
	"github.com/rmera/pdbbond/bonds"
	"gonum.org/v1/gonum/spatial/r3"
)

// A ready-to-serialize container for an atom.
type Atom struct {
	Index    int        `json:"index" yaml:"index"`
	Type     string     `json:"type" yaml:"type"`
	Position [3]float64 `json:"position" yaml:"position,flow"`
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Serial   int        `json:"serial,omitempty" yaml:"serial,omitempty"`
	Het      bool       `json:"het,omitempty" yaml:"het,omitempty"`
}

// Document is everything a renderer needs to draw a structure: atoms, bonds,
// and the pairs of atom types that could not be checked for bonds.
// Normalized and Fragments are optional.
type Document struct {
	Atoms      []Atom       `json:"atoms" yaml:"atoms"`
	Bonds      [][2]int     `json:"bonds" yaml:"bonds,flow"`
	Missing    [][2]string  `json:"missing" yaml:"missing,flow"`
	Normalized [][3]float64 `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Fragments  [][]int      `json:"fragments,omitempty" yaml:"fragments,omitempty,flow"`
}

// NewDocument collects the atoms of mol with its bonds and missing pairs.
// Missing pairs are sorted.
func NewDocument(mol pdbbond.Atomer, b []bonds.Bond, missing bonds.MissingSet) *Document {
	D := &Document{
		Atoms:   make([]Atom, mol.Len()),
		Bonds:   make([][2]int, len(b)),
		Missing: make([][2]string, 0, missing.Len()),
	}
	for i := range D.Atoms {
		at := mol.Atom(i)
		D.Atoms[i] = Atom{
			Index:    at.Index,
			Type:     at.Type,
			Position: vec(at.Position),
			Name:     at.Name,
			Serial:   at.Serial,
			Het:      at.Het,
		}
	}
	for i, v := range b {
		D.Bonds[i] = [2]int{v.I, v.J}
	}
	for _, p := range missing.Sorted() {
		D.Missing = append(D.Missing, [2]string{p.A, p.B})
	}
	return D
}

func vec(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// SetNormalized adds normalized coordinates, one per atom.
func (D *Document) SetNormalized(coords []r3.Vec) error {
	if len(coords) != len(D.Atoms) {
		return fmt.Errorf("SetNormalized: %d coordinates for %d atoms", len(coords), len(D.Atoms))
	}
	D.Normalized = make([][3]float64, len(coords))
	for i, v := range coords {
		D.Normalized[i] = vec(v)
	}
	return nil
}

// Molecule rebuilds the structure described by the document.
func (D *Document) Molecule() (*pdbbond.Molecule, error) {
	types := make([]string, len(D.Atoms))
	pos := make([]r3.Vec, len(D.Atoms))
	for i, a := range D.Atoms {
		if a.Index != i {
			return nil, fmt.Errorf("Molecule: atom %d has index %d", i, a.Index)
		}
		types[i] = a.Type
		pos[i] = r3.Vec{X: a.Position[0], Y: a.Position[1], Z: a.Position[2]}
	}
	return pdbbond.NewMolecule(types, pos)
}

// Send encodes the document as JSON to out.
func (D *Document) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(D); err != nil {
		return fmt.Errorf("Send: %w", err)
	}
	return nil
}

// SendYAML encodes the document as YAML to out.
func (D *Document) SendYAML(out io.Writer) error {
	data, err := yaml.Marshal(D)
	if err != nil {
		return fmt.Errorf("SendYAML: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// Receive decodes a JSON document from in.
func Receive(in io.Reader) (*Document, error) {
	D := new(Document)
	dec := json.NewDecoder(in)
	if err := dec.Decode(D); err != nil {
		return nil, fmt.Errorf("Receive: %w", err)
	}
	return D, nil
}
