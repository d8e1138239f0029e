/*
 * errors.go, part of pdbbond.
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
	"errors"
	"fmt"
)

var (
	// ErrShortRecord is wrapped by ParseError when an ATOM/HETATM record ends
	// before the last column that is read.
	ErrShortRecord = errors.New("record too short")

	// ErrDegenerateGeometry is wrapped by DegenerateGeometryError.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// ParseError is returned when a structure record can't be read. Line is
// 1-based.
//
// The underlying error can be accessed via errors.Unwrap.
type ParseError struct {
	Line    int
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Content)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DegenerateGeometryError is returned when a set of points has no extent along
// any axis, so no scale factor can be obtained for it.
type DegenerateGeometryError struct {
	Points int
	Extent float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%v: %d points, largest extent %g", ErrDegenerateGeometry, e.Points, e.Extent)
}

func (e *DegenerateGeometryError) Unwrap() error { return ErrDegenerateGeometry }
