// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Design, the root container for everything loaded from
// a user's configuration files.
package model

// Design is the complete pin-multiplexing configuration: every block and every
// pin, in declaration order.
type Design struct {
	Blocks []*Block
	Pins   []*Pin
}

// NewDesign creates and returns an empty, initialized Design.
func NewDesign() *Design {
	return &Design{
		Blocks: []*Block{},
		Pins:   []*Pin{},
	}
}

// Merge appends the blocks and pins of other after those already present.
func (d *Design) Merge(other *Design) {
	d.Blocks = append(d.Blocks, other.Blocks...)
	d.Pins = append(d.Pins, other.Pins...)
}
