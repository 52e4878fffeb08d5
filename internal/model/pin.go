// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Pins and the connections they declare to block signals.
package model

import "fmt"

// SignalRef addresses the target signal of a pin connection. It is either a
// signal name, or a bit index into the block's "ios" signal.
type SignalRef struct {
	name       string
	index      int
	positional bool
}

// ByName references a whole signal by name.
func ByName(name string) SignalRef {
	return SignalRef{name: name}
}

// ByIndex references bit index of the block's "ios" signal.
func ByIndex(index int) SignalRef {
	return SignalRef{name: IOsSignal, index: index, positional: true}
}

// Positional reports whether the reference is index based.
func (r SignalRef) Positional() bool {
	return r.positional
}

// Signal returns the referenced signal name. Positional references always
// name "ios".
func (r SignalRef) Signal() string {
	return r.name
}

// Index returns the base bit index. Named references start at bit 0.
func (r SignalRef) Index() int {
	if !r.positional {
		return 0
	}
	return r.index
}

func (r SignalRef) String() string {
	if r.positional {
		return fmt.Sprintf("%s[%d]", r.name, r.index)
	}
	return r.name
}

// Connection is one declared link from a pin to a block signal instance.
type Connection struct {
	Block    string
	Instance int
	Ref      SignalRef
}

func (c Connection) String() string {
	return fmt.Sprintf("%s[%d].%s", c.Block, c.Instance, c.Ref)
}

// Pin is a physical package pin.
type Pin struct {
	Name string
	// Width is the number of bits of an arrayed pin. Zero means a scalar pin.
	Width       int
	Connections []Connection
}

// Arrayed reports whether the pin was declared with a width.
func (p *Pin) Arrayed() bool {
	return p.Width > 0
}

// Bits returns the number of bits the pin spans.
func (p *Pin) Bits() int {
	if p.Arrayed() {
		return p.Width
	}
	return 1
}

// BitName returns the name of one bit of the pin, e.g. "ser0_tx[1]". Scalar
// pins return their plain name.
func (p *Pin) BitName(bit int) string {
	if !p.Arrayed() {
		return p.Name
	}
	return fmt.Sprintf("%s[%d]", p.Name, bit)
}
