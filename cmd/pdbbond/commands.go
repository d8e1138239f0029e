/*
 * commands.go, part of pdbbond.
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
	"os"
	"strconv"

	"github.com/scott-cotton/cli"
)

const usageText = `pdbbond - bonds and display coordinates for PDB structures

Usage:
  pdbbond bonds [opts] <file.pdb>       Determine and print bonds
  pdbbond normalize [opts] <file.pdb>   Print coordinates scaled to an area
  pdbbond table [opts]                  Print the bond distance table in use

A file name of "-" reads the structure from standard input. Compressed
(gzip, zstd) files are read transparently. The bond distance table is read
from -table, or from $PDBBOND_DATA_PATH/bond_distances.yml, or the built-in
table is used.`

// Root returns the root command for pdbbond.
func Root() *cli.Command {
	return cli.NewCommand("pdbbond").
		WithSynopsis("pdbbond - bonds and display coordinates for PDB structures").
		WithDescription(usageText).
		WithSubs(
			BondsCommand(),
			NormalizeCommand(),
			TableCommand(),
		)
}

// BondsCommand returns the bonds subcommand.
func BondsCommand() *cli.Command {
	cfg := &bondsConfig{stderr: os.Stderr}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "bonds").
		WithAliases("b").
		WithSynopsis("bonds [opts] <file.pdb>").
		WithDescription("determine bonds from interatomic distances").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Parse(cc, args)
			if err != nil {
				return err
			}
			return runBonds(cfg, cc.Out, cc.In, args)
		})
}

// NormalizeCommand returns the normalize subcommand.
func NormalizeCommand() *cli.Command {
	cfg := &normalizeConfig{Width: 1, Height: 1, stderr: os.Stderr}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "width",
			Description: "width of the area to fill (default 1)",
			Type:        cli.NamedFuncOpt(floatOpt(&cfg.Width), "(float)"),
		},
		&cli.Opt{
			Name:        "height",
			Description: "height of the area to fill (default 1)",
			Type:        cli.NamedFuncOpt(floatOpt(&cfg.Height), "(float)"),
		},
		&cli.Opt{
			Name:        "mx",
			Description: "margin added to x",
			Type:        cli.NamedFuncOpt(floatOpt(&cfg.MarginX), "(float)"),
		},
		&cli.Opt{
			Name:        "my",
			Description: "margin added to y",
			Type:        cli.NamedFuncOpt(floatOpt(&cfg.MarginY), "(float)"),
		})
	return cli.NewCommandAt(&cfg.Command, "normalize").
		WithAliases("n").
		WithSynopsis("normalize [-width w] [-height h] [-mx m] [-my m] <file.pdb>").
		WithDescription("print coordinates scaled to fill an area").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Parse(cc, args)
			if err != nil {
				return err
			}
			return runNormalize(cfg, cc.Out, cc.In, args)
		})
}

// TableCommand returns the table subcommand.
func TableCommand() *cli.Command {
	cfg := &tableConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "table").
		WithAliases("t").
		WithSynopsis("table [-table file]").
		WithDescription("print the bond distance table in use").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if _, err := cfg.Parse(cc, args); err != nil {
				return err
			}
			return runTable(cfg, cc.Out)
		})
}

func floatOpt(dst *float64) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*dst = f
		return f, nil
	})
}
