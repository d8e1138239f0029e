/*
 * bonds.go, part of pdbbond.
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
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/rmera/pdbbond"
	"github.com/rmera/pdbbond/bonds"
	"github.com/rmera/pdbbond/bondtable"
	"github.com/rmera/pdbbond/chemgraph"
	"github.com/rmera/pdbbond/chemjson"
)

func runBonds(cfg *bondsConfig, out io.Writer, in io.Reader, args []string) error {
	stderr := stderrOr(cfg.stderr)
	logger := newLogger(stderr, cfg.Verbose)
	popts := []pdbbond.ParserOption{pdbbond.WithLogger(logger)}
	if cfg.FirstModel {
		popts = append(popts, pdbbond.WithFirstModelOnly())
	}
	if cfg.Guess {
		popts = append(popts, pdbbond.WithSymbolGuess())
	}
	mol, err := readStructure(args, in, popts...)
	if err != nil {
		return err
	}
	table, err := loadTable(cfg.Table)
	if err != nil {
		return err
	}
	if cfg.Covalent {
		table = bondtable.Merge(table, bondtable.Covalent(mol.Types()))
	}
	strategy := bonds.Auto
	if cfg.Strategy != "" {
		if strategy, err = bonds.ParseStrategy(cfg.Strategy); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	engine := bonds.NewEngine(table,
		bonds.WithWorkers(cfg.Workers),
		bonds.WithStrategy(strategy),
		bonds.WithLogger(logger))
	b, missing := engine.Determine(mol)
	top, err := chemgraph.FromBonds(mol, b)
	if err != nil {
		return err
	}
	warnMissing(stderr, missing)

	switch cfg.Format {
	case "", "text":
		return writeBondsText(out, mol, b, top)
	case "json", "yaml":
		doc := chemjson.NewDocument(mol, b, missing)
		doc.Fragments = top.Fragments()
		if cfg.Format == "json" {
			return doc.Send(out)
		}
		return doc.SendYAML(out)
	case "pdb":
		return writePDB(out, mol, top)
	}
	return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, cfg.Format)
}

func writeBondsText(out io.Writer, mol *pdbbond.Molecule, b []bonds.Bond, top *chemgraph.Topology) error {
	frags := top.Fragments()
	if _, err := fmt.Fprintf(out, "# %d atoms, %d bonds, %d fragments\n", mol.Len(), len(b), len(frags)); err != nil {
		return err
	}
	for _, v := range b {
		at1, at2 := mol.Atom(v.I), mol.Atom(v.J)
		if _, err := fmt.Fprintf(out, "%d %d %s-%s\n", v.I, v.J, at1.Type, at2.Type); err != nil {
			return err
		}
	}
	return nil
}

// warnMissing prints the missing pairs to w, in color if w is a terminal.
func warnMissing(w io.Writer, missing bonds.MissingSet) {
	if missing.Len() == 0 {
		return
	}
	pairs := make([]string, 0, missing.Len())
	for _, p := range missing.Sorted() {
		pairs = append(pairs, p.String())
	}
	c := color.New(color.FgYellow, color.Bold)
	if f, ok := w.(*os.File); !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		c.DisableColor()
	}
	c.Fprintf(w, "warning: no bond distances for %d type pairs: %s\n", len(pairs), strings.Join(pairs, " "))
}
