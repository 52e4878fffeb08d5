package resolve

import (
	"fmt"

	"github.com/specialistvlad/pinmuxgen/internal/tables"
)

// ConfigError reports a block or signal whose declared shape cannot be
// resolved, such as a non-positive width.
type ConfigError struct {
	Block  string
	Signal string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Signal == "" {
		return fmt.Sprintf("block %q: %s", e.Block, e.Reason)
	}
	return fmt.Sprintf("block %q signal %q: %s", e.Block, e.Signal, e.Reason)
}

// UnknownBlockError reports a pin connection naming a block that is not declared.
type UnknownBlockError struct {
	Pin   string
	Block string
}

func (e *UnknownBlockError) Error() string {
	return fmt.Sprintf("pin %q connects to unknown block %q", e.Pin, e.Block)
}

// UnknownSignalError reports a pin connection naming a signal its block does
// not have.
type UnknownSignalError struct {
	Pin    string
	Block  string
	Signal string
}

func (e *UnknownSignalError) Error() string {
	return fmt.Sprintf("pin %q connects to unknown signal %q of block %q", e.Pin, e.Signal, e.Block)
}

// InstanceRangeError reports a connection to a block instance that does not exist.
type InstanceRangeError struct {
	Pin       string
	Block     string
	Instance  int
	Instances int
}

func (e *InstanceRangeError) Error() string {
	return fmt.Sprintf("pin %q connects to instance %d of block %q, which has %d instances",
		e.Pin, e.Instance, e.Block, e.Instances)
}

// BitRangeError reports a connection addressing a bit past the end of a signal.
type BitRangeError struct {
	Pin    string
	Block  string
	Signal string
	Bit    int
	Width  int
}

func (e *BitRangeError) Error() string {
	return fmt.Sprintf("pin %q connects to bit %d of %s_%s, which is %d bits wide",
		e.Pin, e.Bit, e.Block, e.Signal, e.Width)
}

// NonIntegerIndexError reports an arrayed pin connected by signal name to an
// input-capable signal. The bit offset into the pin cannot be derived from a
// named connection.
type NonIntegerIndexError struct {
	Pin    string
	Block  string
	Signal string
}

func (e *NonIntegerIndexError) Error() string {
	return fmt.Sprintf("arrayed pin %q must connect to %s_%s by bit index, not by name",
		e.Pin, e.Block, e.Signal)
}

// UnsupportedIndexedCombineError reports an and/or-combined inout signal wider
// than one bit.
type UnsupportedIndexedCombineError struct {
	Block  string
	Signal string
	Width  int
}

func (e *UnsupportedIndexedCombineError) Error() string {
	return fmt.Sprintf("inout signal %s_%s is %d bits wide: only scalar signals can be combined with and/or",
		e.Block, e.Signal, e.Width)
}

// IndexedDriverUnsupportedError reports a pin of a combined inout signal that
// is also driven by an indexed signal bit.
type IndexedDriverUnsupportedError struct {
	Block    string
	Signal   string
	Instance int
	Pin      string
	Driver   tables.Driver
}

func (e *IndexedDriverUnsupportedError) Error() string {
	return fmt.Sprintf("pin %q of combined signal %s_%s[%d] is also driven by indexed %s: combining indexed pins is unsupported",
		e.Pin, e.Block, e.Signal, e.Instance, e.Driver)
}

// IncompleteSelectorMappingError reports a combined signal instance whose
// candidate pins were not all found among the pins' drivers.
type IncompleteSelectorMappingError struct {
	Block     string
	Signal    string
	Instance  int
	Pins      int
	Selectors int
}

func (e *IncompleteSelectorMappingError) Error() string {
	return fmt.Sprintf("could not fill combine pin selectors for %s_%s[%d]: %d pins, %d selectors",
		e.Block, e.Signal, e.Instance, e.Pins, e.Selectors)
}

// IncompletePinMappingError reports an arrayed pin whose bits are not each
// driven by exactly one signal bit.
type IncompletePinMappingError struct {
	Pin     string
	Width   int
	Drivers int
}

func (e *IncompletePinMappingError) Error() string {
	return fmt.Sprintf("arrayed pin %q must have complete mapping: %d bits, %d drivers",
		e.Pin, e.Width, e.Drivers)
}
