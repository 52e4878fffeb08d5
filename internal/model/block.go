// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Blocks and their Signals, the targets that pins connect to.
package model

import (
	"fmt"
	"strings"
)

// Direction is the direction of a block signal, seen from the block.
type Direction int

const (
	Input Direction = iota
	Output
	InOut
)

// String returns the configuration keyword for the direction.
func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	case InOut:
		return "inout"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a configuration keyword into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	case "inout":
		return InOut, nil
	}
	return 0, fmt.Errorf("unknown signal direction %q: must be 'input', 'output' or 'inout'", s)
}

// Combine is the policy used to merge several drivers of an inout signal.
type Combine int

const (
	// CombineNone means no policy was configured.
	CombineNone Combine = iota
	CombineAnd
	CombineOr
	CombineMux
)

func (c Combine) String() string {
	switch c {
	case CombineNone:
		return ""
	case CombineAnd:
		return "and"
	case CombineOr:
		return "or"
	case CombineMux:
		return "mux"
	default:
		return fmt.Sprintf("Combine(%d)", int(c))
	}
}

// ParseCombine converts a configuration keyword into a Combine policy. An
// empty string yields CombineNone.
func ParseCombine(s string) (Combine, error) {
	switch strings.ToLower(s) {
	case "":
		return CombineNone, nil
	case "and":
		return CombineAnd, nil
	case "or":
		return CombineOr, nil
	case "mux":
		return CombineMux, nil
	}
	return CombineNone, fmt.Errorf("unknown combine policy %q: must be 'and', 'or' or 'mux'", s)
}

// IOsSignal is the signal addressed by positional pin connections.
const IOsSignal = "ios"

// Signal is a named, directional wire group belonging to a Block.
type Signal struct {
	Name      string
	Direction Direction
	Combine   Combine
	// Default is the value an input takes when no pin drives it. Nil when
	// the configuration left it out.
	Default *int
	// Width is the number of bits. 1 is a scalar signal.
	Width int
}

// Indexed reports whether the signal spans more than one bit.
func (s *Signal) Indexed() bool {
	return s.Width > 1
}

// Muxed reports whether the signal takes its value from a selector-driven
// multiplexer over candidate pins.
func (s *Signal) Muxed() bool {
	return s.Direction == Input || (s.Direction == InOut && s.Combine == CombineMux)
}

// Drives reports whether the signal can drive pins.
func (s *Signal) Drives() bool {
	return s.Direction == Output || s.Direction == InOut
}

// Combined reports whether the signal merges its drivers with an and/or
// policy rather than a multiplexer.
func (s *Signal) Combined() bool {
	return s.Direction == InOut && (s.Combine == CombineAnd || s.Combine == CombineOr)
}

// Block is a functional unit with named signals, instantiated Instances times.
type Block struct {
	Name      string
	Instances int
	Signals   []*Signal
}

// Signal returns the block's signal with the given name.
func (b *Block) Signal(name string) (*Signal, bool) {
	for _, s := range b.Signals {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// PortName returns the prefix used for the block signal's ports, e.g. "uart_tx".
func PortName(block, signal string) string {
	return block + "_" + signal
}
