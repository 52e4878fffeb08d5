// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of a pin-multiplexing
// configuration. It is the format-agnostic, in-memory shape that every loader
// produces and that the resolver consumes.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Design: The root container. It holds every Block and every Pin, in the
//     order they were declared. Declaration order is part of the contract: it
//     decides multiplexer selector order downstream.
//
//   - Block: A functional unit (gpio, uart, spi, ...) instantiated one or more
//     times. It owns an ordered list of Signals.
//
//   - Signal: A named, directional wire group of a Block. Width 1 is a scalar
//     signal, anything wider is an indexed signal.
//
//   - Pin: A physical package pin. A pin may be a single bit or an arrayed pin
//     spanning several bits, and it lists the block signals it can connect to.
//
//   - SignalRef: How a pin connection addresses its target signal, either by
//     name or by bit index into the block's "ios" signal.
//
// Objects in this package are never mutated after a loader returns them. All
// per-run state built during resolution lives in the resolver.
package model
