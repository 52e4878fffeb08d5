package resolve

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/specialistvlad/pinmuxgen/internal/ctxlog"
	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
)

// inoutDefault is the multiplexer default of muxed inout signals.
const inoutDefault = "1'b0"

// generated is the output of the generate stage.
type generated struct {
	inputs []tables.InputRow
	// drivers is indexed by pin declaration index.
	drivers [][]tables.Driver
}

// generate builds the multiplexer candidate list of every input-capable
// signal bit, and records every output-capable signal bit as a driver of the
// pins bound to it.
func generate(ctx context.Context, reg *registry.Registry, a *arena) (*generated, error) {
	logger := ctxlog.FromContext(ctx)
	design := reg.Design()

	g := &generated{
		inputs:  []tables.InputRow{},
		drivers: make([][]tables.Driver, len(design.Pins)),
	}

	for bi, block := range design.Blocks {
		_, blockLogger := ctxlog.With(ctx, "block", block.Name)
		inputs := len(g.inputs)
		for si, signal := range block.Signals {
			slots := a.slots(bi, si)
			if signal.Muxed() {
				rows, err := inputRows(design, slots)
				if err != nil {
					return nil, errors.Wrapf(err, "generating inputs of %s", model.PortName(block.Name, signal.Name))
				}
				g.inputs = append(g.inputs, rows...)
			}
			if signal.Drives() {
				recordDrivers(slots, g.drivers)
			}
		}
		blockLogger.Debug("Block lists generated.", "signals", len(block.Signals), "input_rows", len(g.inputs)-inputs)
	}

	logger.Debug("Input and output lists generated.", "input_rows", len(g.inputs))
	return g, nil
}

func defaultLiteral(signal *model.Signal) string {
	if signal.Direction == model.InOut {
		return inoutDefault
	}
	return fmt.Sprintf("1'b%d", *signal.Default)
}

func inputRows(design *model.Design, slots *signalSlots) ([]tables.InputRow, error) {
	block, signal := slots.block, slots.signal
	def := defaultLiteral(signal)
	name := model.PortName(block.Name, signal.Name)

	rows := make([]tables.InputRow, 0, signal.Width*block.Instances)
	for bit := 0; bit < signal.Width; bit++ {
		suffix := ""
		if signal.Indexed() {
			suffix = fmt.Sprintf("_%d", bit)
		}
		for inst := 0; inst < block.Instances; inst++ {
			candidates := []string{def}
			for _, c := range slots.at(bit, inst) {
				pin := design.Pins[c.pin]
				entry := pin.Name
				if pin.Arrayed() {
					conn := pin.Connections[c.conn]
					if !conn.Ref.Positional() {
						return nil, &NonIntegerIndexError{Pin: pin.Name, Block: block.Name, Signal: signal.Name}
					}
					entry = pin.BitName(bit - conn.Ref.Index())
				}
				candidates = append(candidates, entry)
			}
			// Entry 1 is selected by default in the emitted multiplexer, so an
			// unconnected bit still needs two entries.
			if len(candidates) == 1 {
				candidates = append(candidates, def)
			}
			rows = append(rows, tables.InputRow{
				Signal:     name,
				Instance:   inst,
				Bit:        bit,
				BitSuffix:  suffix,
				Candidates: candidates,
			})
		}
	}
	return rows, nil
}

func recordDrivers(slots *signalSlots, drivers [][]tables.Driver) {
	block, signal := slots.block, slots.signal
	for bit := 0; bit < signal.Width; bit++ {
		qualifier := ""
		if signal.Indexed() {
			qualifier = fmt.Sprintf("[%d]", bit)
		}
		for inst := 0; inst < block.Instances; inst++ {
			for _, c := range slots.at(bit, inst) {
				drivers[c.pin] = append(drivers[c.pin], tables.Driver{
					Block:    block.Name,
					Signal:   signal.Name,
					Instance: inst,
					Bit:      qualifier,
					InOut:    signal.Direction == model.InOut,
				})
			}
		}
	}
}
