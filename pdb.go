/*
 * pdb.go, part of pdbbond.
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
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Fixed columns of the PDB ATOM/HETATM records (0-indexed, half-open).
var coordCols = [3][2]int{{30, 38}, {38, 46}, {46, 54}}

const (
	typeStart = 76
	typeEnd   = 78
)

// Parser reads the ATOM and HETATM records of PDB files. The zero value is
// not ready to use, use NewParser.
type Parser struct {
	firstModel bool
	guess      bool
	logger     *slog.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithFirstModelOnly makes the parser stop at the first ENDMDL record, so only
// the first model of a multi-model file is read.
func WithFirstModelOnly() ParserOption {
	return func(p *Parser) {
		p.firstModel = true
	}
}

// WithSymbolGuess makes the parser guess the atom type from the atom name
// when the element columns of a record are blank. Only common bio-elements
// are guessed. Atoms for which no guess is possible keep an empty type.
func WithSymbolGuess() ParserOption {
	return func(p *Parser) {
		p.guess = true
	}
}

// WithLogger sets the logger used for debug messages. If nil is passed, the
// messages are discarded.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser returns a Parser with the given options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p
}

// ParseLines builds a Molecule from the ATOM and HETATM records among lines.
// All other lines are ignored. Line numbers in errors are 1-based positions
// in lines.
func (p *Parser) ParseLines(lines []string) (*Molecule, error) {
	st := p.newState(len(lines))
	for i, line := range lines {
		if err := st.feed(i+1, line); err != nil {
			return nil, err
		}
		if st.done {
			break
		}
	}
	return st.molecule(), nil
}

// Read builds a Molecule from the PDB records read from r.
func (p *Parser) Read(r io.Reader) (*Molecule, error) {
	st := p.newState(0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := st.feed(lineno, scanner.Text()); err != nil {
			return nil, err
		}
		if st.done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("PDBRead: after line %d: %w", lineno, err)
	}
	return st.molecule(), nil
}

// ParseLines is NewParser().ParseLines(lines).
func ParseLines(lines []string) (*Molecule, error) {
	return NewParser().ParseLines(lines)
}

// PDBRead reads a PDB file from an io.Reader and returns its atoms as a Molecule.
func PDBRead(pdb io.Reader, opts ...ParserOption) (*Molecule, error) {
	return NewParser(opts...).Read(pdb)
}

type pdbState struct {
	p     *Parser
	atoms []AtomRecord
	done  bool
}

func (p *Parser) newState(capacity int) *pdbState {
	return &pdbState{p: p, atoms: make([]AtomRecord, 0, capacity)}
}

func (st *pdbState) feed(lineno int, raw string) error {
	line := strings.TrimRight(raw, "\r\n")
	if st.p.firstModel && strings.HasPrefix(line, "ENDMDL") {
		st.done = true
		return nil
	}
	if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
		return nil
	}
	at, err := st.p.readAtomLine(line)
	if err != nil {
		return &ParseError{Line: lineno, Content: raw, Err: err}
	}
	st.atoms = append(st.atoms, at)
	return nil
}

func (st *pdbState) molecule() *Molecule {
	mol := newMoleculeFromRecords(st.atoms)
	st.p.logger.Debug("structure read", "atoms", mol.Len(), "firstModelOnly", st.p.firstModel)
	return mol
}

// readAtomLine parses a ATOM or HETATM line of a PDB file.
func (p *Parser) readAtomLine(line string) (AtomRecord, error) {
	var at AtomRecord
	if len(line) < typeEnd {
		return at, fmt.Errorf("%w: %d columns, at least %d needed", ErrShortRecord, len(line), typeEnd)
	}
	coords := [3]float64{}
	for k, c := range coordCols {
		v, err := strconv.ParseFloat(strings.TrimSpace(line[c[0]:c[1]]), 64)
		if err != nil {
			return at, fmt.Errorf("coordinate %c: %w", "xyz"[k], err)
		}
		coords[k] = v
	}
	at.Position.X, at.Position.Y, at.Position.Z = coords[0], coords[1], coords[2]
	at.Type = strings.TrimSpace(line[typeStart:typeEnd])
	at.Het = strings.HasPrefix(line, "HETATM")
	//not needed for anything, so we don't complain if they are missing.
	at.Serial, _ = strconv.Atoi(strings.TrimSpace(line[6:11]))
	at.Name = strings.TrimSpace(line[12:16])
	if at.Type == "" && p.guess {
		at.Type, _ = symbolFromName(at.Name)
	}
	return at, nil
}

// symbolFromName tries to guess a chemical element symbol from a PDB atom name.
// Mostly based on AMBER names. It only deals with some common bio-elements.
// Symbols are returned in upper case, as in the element columns of PDB files.
func symbolFromName(name string) (string, error) {
	symbol := ""
	if name == "" {
		return symbol, fmt.Errorf("Couldn't guess symbol from empty PDB name")
	}
	if len(name) == 4 || name[0] == 'H' { //I thiiink only Hs can have 4-char names in amber.
		symbol = "H"
	} else if name[0] == 'C' {
		switch name {
		case "CU", "CO", "CL":
			symbol = name
		default:
			symbol = "C" //Ca is not considered here
		}
	} else if name[0] == 'N' {
		if name == "NA" {
			symbol = "NA"
		} else {
			symbol = "N"
		}
	} else if name[0] == 'O' {
		symbol = "O"
	} else if name[0] == 'P' {
		symbol = "P"
	} else if name[0] == 'S' {
		if name == "SE" {
			symbol = "SE"
		} else {
			symbol = "S"
		}
	} else if strings.HasPrefix(name, "ZN") {
		symbol = "ZN"
	} else if strings.HasPrefix(name, "FE") {
		symbol = "FE"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("Couldn't guess symbol from PDB name %q", name)
	}
	return symbol, nil
}
