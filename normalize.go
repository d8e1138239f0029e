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

package pdbbond

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// AdjustCoordinates scales and translates raw so the points fit in an area of
// size fill (width, height). All axes are scaled by the same factor,
// min(width, height) divided by the largest extent of the points along any
// axis, so the shape is preserved. The smallest value along each axis is
// moved to 0, then margin[0] is added to x and margin[1] to y. z gets no
// margin. The margin defaults to (0,0).
//
// A new slice is returned, raw is not modified. If the points have no extent
// (no points, all points equal, or non-finite coordinates) a
// *DegenerateGeometryError is returned.
func AdjustCoordinates(raw []r3.Vec, fill [2]float64, margin ...[2]float64) ([]r3.Vec, error) {
	var m [2]float64
	if len(margin) > 0 {
		m = margin[0]
	}
	if len(raw) == 0 {
		return nil, &DegenerateGeometryError{}
	}
	axes := [3][]float64{}
	for k := range axes {
		axes[k] = make([]float64, len(raw))
	}
	for i, p := range raw {
		if !finite(p) {
			return nil, &DegenerateGeometryError{Points: len(raw), Extent: math.NaN()}
		}
		axes[0][i], axes[1][i], axes[2][i] = p.X, p.Y, p.Z
	}
	var lo [3]float64
	extent := 0.0
	for k, v := range axes {
		lo[k] = floats.Min(v)
		extent = math.Max(extent, floats.Max(v)-lo[k])
	}
	if extent == 0 || math.IsInf(extent, 0) {
		return nil, &DegenerateGeometryError{Points: len(raw), Extent: extent}
	}
	scale := math.Min(fill[0], fill[1]) / extent
	min := r3.Vec{X: lo[0], Y: lo[1], Z: lo[2]}
	shift := r3.Vec{X: m[0], Y: m[1]}
	ret := make([]r3.Vec, len(raw))
	for i, p := range raw {
		ret[i] = r3.Add(r3.Scale(scale, r3.Sub(p, min)), shift)
	}
	return ret, nil
}

func finite(p r3.Vec) bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
