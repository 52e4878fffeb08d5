package resolve

import (
	"context"

	"github.com/specialistvlad/pinmuxgen/internal/ctxlog"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
)

// Resolve runs the full resolution pass over the registry's design and
// returns the connectivity tables.
func Resolve(ctx context.Context, reg *registry.Registry) (*tables.Tables, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolve: Starting pinmux resolution.")

	a, err := buildSlots(ctx, reg)
	if err != nil {
		return nil, err
	}

	if err := bind(ctx, reg, a); err != nil {
		return nil, err
	}

	g, err := generate(ctx, reg, a)
	if err != nil {
		return nil, err
	}

	combines, err := encodeCombines(ctx, reg, a, g.drivers)
	if err != nil {
		return nil, err
	}

	outputs, err := aggregate(ctx, reg, g.drivers)
	if err != nil {
		return nil, err
	}

	design := reg.Design()
	t := tables.New()
	t.InstanceCounts = reg.InstanceCounts()
	t.BlockPorts = blockPorts(design)
	t.PinPorts = pinPorts(design)
	t.Inputs = g.inputs
	t.Outputs = outputs
	t.Combines = combines

	logger.Debug("Resolve: Resolution successful.",
		"inputs", len(t.Inputs), "outputs", len(t.Outputs), "combines", len(t.Combines))
	return t, nil
}
