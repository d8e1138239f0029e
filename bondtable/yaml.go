/*
 * yaml.go, part of pdbbond.
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
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
)

// DataPathEnv names the environment variable with the directory where
// FromEnvironment looks for DataFile.
const DataPathEnv = "PDBBOND_DATA_PATH"

// DataFile is the name of the bond distance file in a data directory.
const DataFile = "bond_distances.yml"

//go:embed data/bond_distances.yml
var defaultData []byte

// document is the layout of bond distance files. Other top-level keys, such
// as per-atom display properties, are ignored.
type document struct {
	BondDistances map[string][]float64 `yaml:"bond_distances"`
}

// Load reads a table in YAML format from r. The file must have a
// bond_distances mapping from "A-B" keys to [min, max] lists.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse reads a table from YAML data. See Load.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding bond distances: %w", err)
	}
	t := &Table{entries: make(map[Pair]Range, len(doc.BondDistances))}
	for k, v := range doc.BondDistances {
		p, err := ParsePair(k)
		if err != nil {
			return nil, err
		}
		if len(v) != 2 {
			return nil, fmt.Errorf("%w: %s has %d values, want [min, max]", ErrInvalidRange, k, len(v))
		}
		if err := t.add(p, Range{Min: v[0], Max: v[1]}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// LoadFile reads a table from the YAML file name.
func LoadFile(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Parse(defaultData)
	if err != nil {
		panic("bondtable: embedded table is invalid: " + err.Error())
	}
	return t
})

// Default returns the table built into the library. The same Table is
// returned on every call.
func Default() *Table {
	return defaultTable()
}

// FromEnvironment loads DataFile from the directory named by the DataPathEnv
// environment variable. If the variable is not set, it returns Default().
func FromEnvironment() (*Table, error) {
	dir := os.Getenv(DataPathEnv)
	if dir == "" {
		return Default(), nil
	}
	return LoadFile(filepath.Join(dir, DataFile))
}

// Write encodes t in the format read by Load, with the pairs sorted.
func (t *Table) Write(out io.Writer) error {
	entries := yaml.MapSlice{}
	for _, p := range t.Pairs() {
		r := t.entries[p]
		entries = append(entries, yaml.MapItem{Key: p.String(), Value: []float64{r.Min, r.Max}})
	}
	doc := yaml.MapSlice{{Key: "bond_distances", Value: entries}}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
