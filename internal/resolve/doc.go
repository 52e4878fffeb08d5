// Package resolve turns a pin-multiplexing design into connectivity tables.
//
// # Pipeline
//
// Resolution is a single forward pass. Each stage reads what the previous one
// produced and nothing is revisited:
//
//  1. Slots: every signal gets a fixed width × instances grid of empty
//     candidate lists (slots.go).
//  2. Bind: every pin connection, in declaration order, appends the pin to the
//     slots of the signal bits it reaches (bind.go).
//  3. Generate: input-capable bits become multiplexer candidate lists, and
//     output-capable bits are recorded as drivers of their pins (generate.go).
//  4. Combine: and/or-combined inout signals get one selector per pin
//     (combine.go).
//  5. Aggregate: drivers are grouped per pin, and per bit for arrayed pins
//     (aggregate.go).
//
// # Ordering
//
// The position of a pin in a candidate list is its multiplexer selector value
// in the emitted hardware, and the position of a driver in a pin's driver list
// is its combine selector. Every stage therefore iterates slices in
// declaration order. Maps are only used for name lookups, through the
// registry.
//
// # Errors
//
// Any inconsistency aborts the whole pass with a typed error. No partial
// tables are ever returned.
package resolve
