/*
 * options.go, part of pdbbond.
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

package bonds

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Strategy selects how candidate atom pairs are enumerated. All strategies
// produce exactly the same bonds, in the same order.
type Strategy int

const (
	// Auto uses Grid for large structures and BruteForce otherwise.
	Auto Strategy = iota
	// BruteForce measures every pair of atoms.
	BruteForce
	// Grid bins the atoms in cubic cells as large as the longest bond
	// allowed, and only measures pairs in neighbouring cells.
	Grid
)

var strategyNames = map[Strategy]string{Auto: "auto", BruteForce: "brute", Grid: "grid"}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the Strategy with the given name ("auto", "brute" or "grid").
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return Auto, fmt.Errorf("unknown strategy %q", name)
}

// DefaultGridThreshold is the number of atoms from which Auto uses Grid.
const DefaultGridThreshold = 1024

type options struct {
	workers       int
	strategy      Strategy
	gridThreshold int
	logger        *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithWorkers sets the number of goroutines that measure atom pairs.
// Values < 1 mean runtime.GOMAXPROCS(0), which is the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithStrategy sets the pair enumeration strategy. The default is Auto.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithGridThreshold sets the number of atoms from which the Auto strategy
// uses a grid.
func WithGridThreshold(n int) Option {
	return func(o *options) {
		o.gridThreshold = n
	}
}

// WithLogger configures structured logging. If nil is passed, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{gridThreshold: DefaultGridThreshold}
	for _, f := range opts {
		f(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
