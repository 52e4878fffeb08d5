// This file contains the logic for translating HCL schema structs into the
// design model.
package hcladapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/pinmuxgen/internal/connref"
	"github.com/specialistvlad/pinmuxgen/internal/ctxlog"
	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

func (l *Loader) translate(ctx context.Context, root *fileRoot) (*model.Design, error) {
	design := model.NewDesign()
	for _, b := range root.Blocks {
		block, err := translateBlock(b)
		if err != nil {
			return nil, err
		}
		design.Blocks = append(design.Blocks, block)
	}
	for _, p := range root.Pins {
		pin, err := translatePin(ctx, p)
		if err != nil {
			return nil, err
		}
		design.Pins = append(design.Pins, pin)
	}
	return design, nil
}

// translateBlock converts a block declaration. Range checks on instances and
// widths are left to the resolver.
func translateBlock(b *BlockDefinition) (*model.Block, error) {
	block := &model.Block{Name: b.Name, Instances: b.Instances, Signals: make([]*model.Signal, 0, len(b.Signals))}
	for _, s := range b.Signals {
		dir, err := model.ParseDirection(s.Type)
		if err != nil {
			return nil, fmt.Errorf("block '%s', signal '%s': %w", b.Name, s.Name, err)
		}
		combine := model.CombineNone
		if s.Combine != nil {
			if combine, err = model.ParseCombine(*s.Combine); err != nil {
				return nil, fmt.Errorf("block '%s', signal '%s': %w", b.Name, s.Name, err)
			}
		}
		width := 1
		if s.Length != nil {
			width = *s.Length
		}
		block.Signals = append(block.Signals, &model.Signal{
			Name:      s.Name,
			Direction: dir,
			Combine:   combine,
			Default:   s.Default,
			Width:     width,
		})
	}
	return block, nil
}

func translatePin(ctx context.Context, p *PinDefinition) (*model.Pin, error) {
	logger := ctxlog.FromContext(ctx).With("pin", p.Name)

	pin := &model.Pin{Name: p.Name}
	if p.Length != nil {
		if *p.Length < 1 {
			return nil, fmt.Errorf("pin '%s': length must be at least 1, got %d", p.Name, *p.Length)
		}
		pin.Width = *p.Length
	}

	if len(p.Connects) > 0 && len(p.Connect) > 0 {
		return nil, fmt.Errorf("pin '%s': use either 'connect' blocks or the 'connects' list, not both", p.Name)
	}

	if len(p.Connects) > 0 {
		logger.Debug("Parsing shorthand connections.", "count", len(p.Connects))
		conns, err := connref.ParseAll(p.Connects)
		if err != nil {
			return nil, fmt.Errorf("pin '%s': %w", p.Name, err)
		}
		pin.Connections = conns
		return pin, nil
	}

	pin.Connections = make([]model.Connection, 0, len(p.Connect))
	for _, c := range p.Connect {
		ref, err := signalRef(c.IO)
		if err != nil {
			return nil, fmt.Errorf("pin '%s', connection to '%s': %w", p.Name, c.Block, err)
		}
		conn := model.Connection{Block: c.Block, Ref: ref}
		if c.Instance != nil {
			conn.Instance = *c.Instance
		}
		pin.Connections = append(pin.Connections, conn)
	}
	return pin, nil
}

// signalRef evaluates an io attribute. A string names a signal, a whole
// non-negative number addresses a bit of the ios signal.
func signalRef(expr hcl.Expression) (model.SignalRef, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return model.SignalRef{}, fmt.Errorf("invalid io value: %w", diags)
	}
	if val.IsNull() || !val.IsKnown() {
		return model.SignalRef{}, fmt.Errorf("io must not be null")
	}

	switch val.Type() {
	case cty.String:
		return model.ByName(val.AsString()), nil
	case cty.Number:
		var bit int
		if err := gocty.FromCtyValue(val, &bit); err != nil {
			return model.SignalRef{}, fmt.Errorf("io must be a whole number: %w", err)
		}
		if bit < 0 {
			return model.SignalRef{}, fmt.Errorf("io bit index must not be negative, got %d", bit)
		}
		return model.ByIndex(bit), nil
	default:
		return model.SignalRef{}, fmt.Errorf("io must be a string or a number, got %s", val.Type().FriendlyName())
	}
}
