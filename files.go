/*
 * files.go, part of pdbbond.
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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// PDBFileRead reads the PDB file pdbname. Files compressed with gzip or zstd
// are decompressed on the fly, whatever their extension.
func PDBFileRead(pdbname string, opts ...ParserOption) (*Molecule, error) {
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, err
	}
	defer pdbfile.Close()
	r, err := Decompress(pdbfile)
	if err != nil {
		return nil, fmt.Errorf("PDBFileRead: %s: %w", pdbname, err)
	}
	defer r.Close()
	mol, err := PDBRead(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("PDBFileRead: %s: %w", pdbname, err)
	}
	return mol, nil
}

// Decompress looks at the first bytes of in and, if they belong to a gzip or zstd
// stream, returns a reader that decompresses it. Otherwise the returned reader
// reads in unchanged. Closing the returned reader does not close in.
func Decompress(in io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(in)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	}
	return io.NopCloser(br), nil
}
