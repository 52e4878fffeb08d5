// Package tables holds the connectivity tables produced by resolution. They
// are plain data with no behavior, consumed verbatim by template rendering.
package tables

import (
	"encoding/json"
	"fmt"
)

// Tables is the complete resolution output. Each slice is one table with flat
// rows, in the deterministic order the resolver produced them.
type Tables struct {
	InstanceCounts map[string]int `json:"instance_counts"`
	BlockPorts     []BlockPort    `json:"block_ports"`
	PinPorts       []PinPort      `json:"pin_ports"`
	Inputs         []InputRow     `json:"inputs"`
	Outputs        []OutputRow    `json:"outputs"`
	Combines       []CombineRow   `json:"combines"`
}

// New returns Tables with every table initialized to an empty, non-nil slice.
func New() *Tables {
	return &Tables{
		InstanceCounts: map[string]int{},
		BlockPorts:     []BlockPort{},
		PinPorts:       []PinPort{},
		Inputs:         []InputRow{},
		Outputs:        []OutputRow{},
		Combines:       []CombineRow{},
	}
}

// Port directions, seen from the pinmux.
const (
	PortInput  = "input"
	PortOutput = "output"
)

// BlockPort is one pinmux port facing a block signal.
type BlockPort struct {
	Direction string `json:"direction"`
	Name      string `json:"name"`
	Width     int    `json:"width"`
	Instances int    `json:"instances"`
}

// PinPort is one pinmux port facing a package pin.
type PinPort struct {
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Arrayed bool   `json:"arrayed"`
}

// InputRow is the multiplexer candidate list for one bit of one instance of
// an input-capable signal. Candidates[0] is the default value.
type InputRow struct {
	Signal     string   `json:"signal"`
	Instance   int      `json:"instance"`
	Bit        int      `json:"bit"`
	BitSuffix  string   `json:"bit_suffix"`
	Candidates []string `json:"candidates"`
}

// Driver is one block signal instance bit able to drive a pin.
type Driver struct {
	Block    string `json:"block"`
	Signal   string `json:"signal"`
	Instance int    `json:"instance"`
	// Bit is empty for scalar signals, otherwise the bracketed bit index.
	Bit   string `json:"bit"`
	InOut bool   `json:"inout"`
}

// Matches reports whether d is a driver from the given signal instance.
func (d Driver) Matches(block, signal string, instance int) bool {
	return d.Block == block && d.Signal == signal && d.Instance == instance
}

func (d Driver) String() string {
	return fmt.Sprintf("%s_%s[%d]%s", d.Block, d.Signal, d.Instance, d.Bit)
}

// OutputRow lists the drivers of one pin, or of one bit of an arrayed pin.
type OutputRow struct {
	Pin     string   `json:"pin"`
	Suffix  string   `json:"suffix"`
	Index   string   `json:"index"`
	Drivers []Driver `json:"drivers"`
}

// CombineRow lists the pins of one and/or-combined inout signal instance with
// the selector that marks each pin as driven by that instance.
type CombineRow struct {
	Signal    string   `json:"signal"`
	Instance  int      `json:"instance"`
	Pins      []string `json:"pins"`
	Selectors []int    `json:"selectors"`
	Policy    string   `json:"policy"`
}

// MarshalIndent renders the tables as indented JSON with a trailing newline.
func (t *Tables) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling tables: %w", err)
	}
	return append(data, '\n'), nil
}
