/*
 * pdbout.go, part of pdbbond.
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
	"bufio"
	"fmt"
	"io"

	"github.com/rmera/pdbbond"
	"github.com/rmera/pdbbond/chemgraph"
)

// writePDB writes the atoms of mol as ATOM/HETATM records, followed by CONECT
// records with the bonds in top. Serial numbers are renumbered from 1.
func writePDB(out io.Writer, mol *pdbbond.Molecule, top *chemgraph.Topology) error {
	w := bufio.NewWriter(out)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		record := "ATOM"
		if at.Het {
			record = "HETATM"
		}
		name := at.Name
		if name == "" {
			name = at.Type
		}
		if len(name) > 4 {
			name = name[:4]
		}
		p := at.Position
		fmt.Fprintf(w, "%-6s%5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
			record, (i+1)%100000, name, "MOL", "A", 1, p.X, p.Y, p.Z, 1.0, 0.0, at.Type)
	}
	for i := 0; i < mol.Len(); i++ {
		nb := top.Neighbors(i)
		//at most 4 bonded atoms per CONECT record
		for len(nb) > 0 {
			n := min(4, len(nb))
			fmt.Fprintf(w, "CONECT%5d", i+1)
			for _, j := range nb[:n] {
				fmt.Fprintf(w, "%5d", j+1)
			}
			fmt.Fprintln(w)
			nb = nb[n:]
		}
	}
	fmt.Fprintln(w, "END")
	return w.Flush()
}
