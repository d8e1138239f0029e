/*
 * normalize.go, part of pdbbond.
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

	"github.com/scott-cotton/cli"

	"github.com/rmera/pdbbond"
	"github.com/rmera/pdbbond/bonds"
	"github.com/rmera/pdbbond/chemjson"
)

func runNormalize(cfg *normalizeConfig, out io.Writer, in io.Reader, args []string) error {
	logger := newLogger(stderrOr(cfg.stderr), cfg.Verbose)
	popts := []pdbbond.ParserOption{pdbbond.WithLogger(logger)}
	if cfg.FirstModel {
		popts = append(popts, pdbbond.WithFirstModelOnly())
	}
	mol, err := readStructure(args, in, popts...)
	if err != nil {
		return err
	}
	coords, err := mol.Normalized([2]float64{cfg.Width, cfg.Height}, [2]float64{cfg.MarginX, cfg.MarginY})
	if err != nil {
		return err
	}
	switch cfg.Format {
	case "", "text":
		for i, v := range coords {
			if _, err := fmt.Fprintf(out, "%d %s %.4f %.4f %.4f\n", i, mol.Atom(i).Type, v.X, v.Y, v.Z); err != nil {
				return err
			}
		}
		return nil
	case "json", "yaml":
		doc := chemjson.NewDocument(mol, nil, bonds.MissingSet{})
		if err := doc.SetNormalized(coords); err != nil {
			return err
		}
		if cfg.Format == "json" {
			return doc.Send(out)
		}
		return doc.SendYAML(out)
	}
	return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, cfg.Format)
}
