package registry

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/pinmuxgen/internal/model"
)

// DefaultRequiredBlocks are the blocks the emitted top level is parameterized
// on. A configuration without them cannot be rendered.
var DefaultRequiredBlocks = []string{"gpio", "uart", "i2c", "spi"}

// DuplicateNameError reports two entities of the same kind sharing a name.
type DuplicateNameError struct {
	Kind  string
	Name  string
	Block string // set for duplicate signals
}

func (e *DuplicateNameError) Error() string {
	if e.Block != "" {
		return fmt.Sprintf("duplicate %s %q in block %q", e.Kind, e.Name, e.Block)
	}
	return fmt.Sprintf("duplicate %s %q", e.Kind, e.Name)
}

// MissingBlocksError reports required blocks absent from the configuration.
type MissingBlocksError struct {
	Missing []string
}

func (e *MissingBlocksError) Error() string {
	return "one or more blocks not present in configuration: " + strings.Join(e.Missing, ", ")
}

// Registry holds the lookup tables for a single design.
type Registry struct {
	design  *model.Design
	blocks  map[string]int
	signals []map[string]int
}

// New indexes the design. It fails with a DuplicateNameError if a name is
// declared twice.
func New(design *model.Design) (*Registry, error) {
	r := &Registry{
		design:  design,
		blocks:  make(map[string]int, len(design.Blocks)),
		signals: make([]map[string]int, len(design.Blocks)),
	}

	for i, b := range design.Blocks {
		if _, ok := r.blocks[b.Name]; ok {
			return nil, &DuplicateNameError{Kind: "block", Name: b.Name}
		}
		r.blocks[b.Name] = i

		sigs := make(map[string]int, len(b.Signals))
		for j, s := range b.Signals {
			if _, ok := sigs[s.Name]; ok {
				return nil, &DuplicateNameError{Kind: "signal", Name: s.Name, Block: b.Name}
			}
			sigs[s.Name] = j
		}
		r.signals[i] = sigs
	}

	pins := make(map[string]struct{}, len(design.Pins))
	for _, p := range design.Pins {
		if _, ok := pins[p.Name]; ok {
			return nil, &DuplicateNameError{Kind: "pin", Name: p.Name}
		}
		pins[p.Name] = struct{}{}
	}

	return r, nil
}

// Design returns the indexed design.
func (r *Registry) Design() *model.Design {
	return r.design
}

// BlockIndex returns the declaration index of the named block.
func (r *Registry) BlockIndex(name string) (int, bool) {
	i, ok := r.blocks[name]
	return i, ok
}

// SignalIndex returns the declaration index of a signal within the block at
// blockIndex.
func (r *Registry) SignalIndex(blockIndex int, name string) (int, bool) {
	i, ok := r.signals[blockIndex][name]
	return i, ok
}

// RequireBlocks checks that every named block is declared. Missing names are
// reported in the order given.
func (r *Registry) RequireBlocks(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := r.blocks[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingBlocksError{Missing: missing}
	}
	return nil
}

// InstanceCounts maps every block name to its instance count.
func (r *Registry) InstanceCounts() map[string]int {
	counts := make(map[string]int, len(r.design.Blocks))
	for _, b := range r.design.Blocks {
		counts[b.Name] = b.Instances
	}
	return counts
}
