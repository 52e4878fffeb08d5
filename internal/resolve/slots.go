package resolve

import (
	"context"

	"github.com/specialistvlad/pinmuxgen/internal/ctxlog"
	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
)

// candidate is a pin bound to a signal bit, along with the connection that
// bound it.
type candidate struct {
	pin  int // index into Design.Pins
	conn int // index into Pin.Connections
}

// signalSlots holds the candidate lists of one signal, indexed [bit][instance].
type signalSlots struct {
	block  *model.Block
	signal *model.Signal
	bits   [][][]candidate
}

func newSignalSlots(block *model.Block, signal *model.Signal) *signalSlots {
	bits := make([][][]candidate, signal.Width)
	for bit := range bits {
		bits[bit] = make([][]candidate, block.Instances)
	}
	return &signalSlots{block: block, signal: signal, bits: bits}
}

func (s *signalSlots) add(bit, instance int, c candidate) {
	s.bits[bit][instance] = append(s.bits[bit][instance], c)
}

func (s *signalSlots) at(bit, instance int) []candidate {
	return s.bits[bit][instance]
}

// arena holds the slots of every signal, indexed [block][signal] in
// declaration order.
type arena struct {
	signals [][]*signalSlots
}

func (a *arena) slots(blockIndex, signalIndex int) *signalSlots {
	return a.signals[blockIndex][signalIndex]
}

// buildSlots allocates empty candidate lists for every signal bit of every
// block instance.
func buildSlots(ctx context.Context, reg *registry.Registry) (*arena, error) {
	logger := ctxlog.FromContext(ctx)
	design := reg.Design()

	a := &arena{signals: make([][]*signalSlots, len(design.Blocks))}
	total := 0
	for bi, block := range design.Blocks {
		if block.Instances < 1 {
			return nil, &ConfigError{Block: block.Name, Reason: "instance count must be at least 1"}
		}
		a.signals[bi] = make([]*signalSlots, len(block.Signals))
		for si, signal := range block.Signals {
			if err := checkSignal(block, signal); err != nil {
				return nil, err
			}
			if signal.Direction != model.InOut && signal.Combine != model.CombineNone {
				logger.Warn("Combine policy ignored on non-inout signal.",
					"block", block.Name, "signal", signal.Name, "combine", signal.Combine.String())
			}
			a.signals[bi][si] = newSignalSlots(block, signal)
			total += signal.Width * block.Instances
		}
	}

	logger.Debug("Signal slots allocated.", "blocks", len(design.Blocks), "slots", total)
	return a, nil
}

func checkSignal(block *model.Block, signal *model.Signal) error {
	if signal.Width < 1 {
		return &ConfigError{Block: block.Name, Signal: signal.Name, Reason: "width must be at least 1"}
	}
	switch signal.Direction {
	case model.Input:
		if signal.Default == nil {
			return &ConfigError{Block: block.Name, Signal: signal.Name, Reason: "input signal requires a default value"}
		}
		if *signal.Default != 0 && *signal.Default != 1 {
			return &ConfigError{Block: block.Name, Signal: signal.Name, Reason: "default value must be 0 or 1"}
		}
	case model.InOut:
		if signal.Combine == model.CombineNone {
			return &ConfigError{Block: block.Name, Signal: signal.Name, Reason: "inout signal requires a combine policy"}
		}
	}
	return nil
}
