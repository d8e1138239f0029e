/*
 * doc.go, part of pdbbond.
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

/*
Package pdbbond reads molecular structures from PDB files and keeps them as an
immutable, ordered list of atoms, ready for bond determination (see the bonds
package) and for display.

pdbbond capabilities:

  - Reads the ATOM and HETATM records of PDB files, plain or compressed
    with gzip or zstd.
  - Determines bonds from interatomic distances and a table of allowed
    bond lengths for each pair of atom types (package bonds, with the
    tables in package bondtable).
  - Rescales coordinates so a structure fills a drawing area of a given
    size (AdjustCoordinates).
  - Builds a graph from the bonds, so fragments and neighbours can be
    queried (package chemgraph).
  - Serializes structures and bonds to JSON or YAML (package chemjson).

The basic container is the Molecule, an ordered slice of AtomRecords. The
order of the atoms is the order in which they were read, and every index
reported by the rest of the library refers to it.
*/
package pdbbond
