// This file defines the HCL schema structs decoded by gohcl.
package hcladapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Blocks []*BlockDefinition `hcl:"block,block"`
	Pins   []*PinDefinition   `hcl:"pin,block"`
	Remain hcl.Body           `hcl:",remain"`
}

// BlockDefinition is a `block "name" { ... }` declaration.
type BlockDefinition struct {
	Name      string              `hcl:"name,label"`
	Instances int                 `hcl:"instances"`
	Signals   []*SignalDefinition `hcl:"signal,block"`
}

// SignalDefinition is a `signal "name" { ... }` declaration inside a block.
type SignalDefinition struct {
	Name    string  `hcl:"name,label"`
	Type    string  `hcl:"type"`
	Combine *string `hcl:"combine,optional"`
	Default *int    `hcl:"default,optional"`
	Length  *int    `hcl:"length,optional"`
}

// PinDefinition is a `pin "name" { ... }` declaration.
type PinDefinition struct {
	Name     string         `hcl:"name,label"`
	Length   *int           `hcl:"length,optional"`
	Connects []string       `hcl:"connects,optional"`
	Connect  []*ConnectBlock `hcl:"connect,block"`
}

// ConnectBlock is one `connect { ... }` block of a pin. The io attribute is
// either a signal name or a bit index of the block's ios signal.
type ConnectBlock struct {
	Block    string         `hcl:"block"`
	Instance *int           `hcl:"instance,optional"`
	IO       hcl.Expression `hcl:"io"`
}
