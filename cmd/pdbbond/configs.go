/*
 * configs.go, part of pdbbond.
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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/rmera/pdbbond"
	"github.com/rmera/pdbbond/bondtable"
)

type bondsConfig struct {
	*cli.Command
	Table      string `cli:"name=table desc='bond distance table (YAML)'"`
	Covalent   bool   `cli:"name=covalent desc='fill gaps in the table from covalent radii'"`
	Workers    int    `cli:"name=workers desc='number of workers (0: one per CPU)'"`
	Strategy   string `cli:"name=strategy desc='pair search: auto, brute or grid'"`
	Format     string `cli:"name=format desc='output format: text, json, yaml or pdb'"`
	FirstModel bool   `cli:"name=first-model desc='read only the first model'"`
	Guess      bool   `cli:"name=guess desc='guess blank element columns from atom names'"`
	Verbose    bool   `cli:"name=v desc='debug logging'"`

	stderr io.Writer
}

type normalizeConfig struct {
	*cli.Command
	Format     string `cli:"name=format desc='output format: text, json or yaml'"`
	FirstModel bool   `cli:"name=first-model desc='read only the first model'"`
	Verbose    bool   `cli:"name=v desc='debug logging'"`

	Width, Height    float64
	MarginX, MarginY float64

	stderr io.Writer
}

type tableConfig struct {
	*cli.Command
	Table string `cli:"name=table desc='bond distance table (YAML)'"`
}

func stderrOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadTable reads the table in path or, if path is empty, the table from
// the environment or the built-in one.
func loadTable(path string) (*bondtable.Table, error) {
	if path == "" {
		return bondtable.FromEnvironment()
	}
	return bondtable.LoadFile(path)
}

// readStructure reads the single file named in args, "-" being in.
func readStructure(args []string, in io.Reader, opts ...pdbbond.ParserOption) (*pdbbond.Molecule, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: expected one PDB file, got %d arguments", cli.ErrUsage, len(args))
	}
	if args[0] == "-" {
		r, err := pdbbond.Decompress(in)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return pdbbond.PDBRead(r, opts...)
	}
	return pdbbond.PDBFileRead(args[0], opts...)
}
