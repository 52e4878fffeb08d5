package resolve

import (
	"context"

	"github.com/specialistvlad/pinmuxgen/internal/ctxlog"
	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
)

// encodeCombines assigns selectors to the pins of every and/or-combined inout
// signal instance. A pin's selector is 1 << (N+1), where N is the position of
// the signal instance among that pin's drivers. Bit 0 means undriven.
func encodeCombines(ctx context.Context, reg *registry.Registry, a *arena, drivers [][]tables.Driver) ([]tables.CombineRow, error) {
	logger := ctxlog.FromContext(ctx)
	design := reg.Design()

	rows := []tables.CombineRow{}
	for bi, block := range design.Blocks {
		for si, signal := range block.Signals {
			if !signal.Combined() {
				continue
			}
			if signal.Indexed() {
				return nil, &UnsupportedIndexedCombineError{Block: block.Name, Signal: signal.Name, Width: signal.Width}
			}
			_, signalLogger := ctxlog.With(ctx, "block", block.Name, "signal", signal.Name)
			slots := a.slots(bi, si)
			for inst := 0; inst < block.Instances; inst++ {
				row, err := combineRow(design, slots, inst, drivers)
				if err != nil {
					return nil, err
				}
				signalLogger.Debug("Selectors encoded.", "instance", inst, "pins", len(row.Pins))
				rows = append(rows, row)
			}
		}
	}

	logger.Debug("Combine selectors encoded.", "rows", len(rows))
	return rows, nil
}

func combineRow(design *model.Design, slots *signalSlots, inst int, drivers [][]tables.Driver) (tables.CombineRow, error) {
	block, signal := slots.block, slots.signal
	candidates := slots.at(0, inst)

	pins := make([]string, 0, len(candidates))
	selectors := make([]int, 0, len(candidates))
	for _, c := range candidates {
		pin := design.Pins[c.pin]
		pins = append(pins, pin.Name)
		for pos, d := range drivers[c.pin] {
			if d.Bit != "" {
				return tables.CombineRow{}, &IndexedDriverUnsupportedError{
					Block: block.Name, Signal: signal.Name, Instance: inst, Pin: pin.Name, Driver: d,
				}
			}
			if d.Matches(block.Name, signal.Name, inst) {
				selectors = append(selectors, 1<<(pos+1))
				break
			}
		}
	}

	if len(selectors) != len(pins) {
		return tables.CombineRow{}, &IncompleteSelectorMappingError{
			Block: block.Name, Signal: signal.Name, Instance: inst, Pins: len(pins), Selectors: len(selectors),
		}
	}

	return tables.CombineRow{
		Signal:    model.PortName(block.Name, signal.Name),
		Instance:  inst,
		Pins:      pins,
		Selectors: selectors,
		Policy:    signal.Combine.String(),
	}, nil
}
