package resolve

import (
	"context"

	"github.com/pkg/errors"
	"github.com/specialistvlad/pinmuxgen/internal/ctxlog"
	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
)

// bind walks every pin connection in declaration order and appends the pin to
// the slots of each signal bit the connection reaches.
func bind(ctx context.Context, reg *registry.Registry, a *arena) error {
	logger := ctxlog.FromContext(ctx)

	bound := 0
	for pi, pin := range reg.Design().Pins {
		for ci, conn := range pin.Connections {
			n, err := bindConnection(reg, a, pi, pin, ci, conn)
			if err != nil {
				return errors.Wrapf(err, "binding %s", conn)
			}
			bound += n
		}
	}

	logger.Debug("Pins bound to signals.", "pins", len(reg.Design().Pins), "bindings", bound)
	return nil
}

func bindConnection(reg *registry.Registry, a *arena, pi int, pin *model.Pin, ci int, conn model.Connection) (int, error) {
	bi, ok := reg.BlockIndex(conn.Block)
	if !ok {
		return 0, &UnknownBlockError{Pin: pin.Name, Block: conn.Block}
	}
	block := reg.Design().Blocks[bi]

	si, ok := reg.SignalIndex(bi, conn.Ref.Signal())
	if !ok {
		return 0, &UnknownSignalError{Pin: pin.Name, Block: block.Name, Signal: conn.Ref.Signal()}
	}
	signal := block.Signals[si]

	if conn.Instance < 0 || conn.Instance >= block.Instances {
		return 0, &InstanceRangeError{Pin: pin.Name, Block: block.Name, Instance: conn.Instance, Instances: block.Instances}
	}

	bits, err := connectedBits(pin, conn.Ref, block, signal)
	if err != nil {
		return 0, err
	}

	slots := a.slots(bi, si)
	for _, bit := range bits {
		slots.add(bit, conn.Instance, candidate{pin: pi, conn: ci})
	}
	return len(bits), nil
}

// connectedBits returns the signal bits a connection reaches. Every bit of an
// arrayed pin must land inside the signal.
func connectedBits(pin *model.Pin, ref model.SignalRef, block *model.Block, signal *model.Signal) ([]int, error) {
	base := ref.Index()
	if base < 0 || base >= signal.Width {
		return nil, &BitRangeError{Pin: pin.Name, Block: block.Name, Signal: signal.Name, Bit: base, Width: signal.Width}
	}

	if !pin.Arrayed() {
		if ref.Positional() {
			return []int{base}, nil
		}
		bits := make([]int, signal.Width)
		for bit := range bits {
			bits[bit] = bit
		}
		return bits, nil
	}

	if base+pin.Width > signal.Width {
		return nil, &BitRangeError{Pin: pin.Name, Block: block.Name, Signal: signal.Name, Bit: base + pin.Width - 1, Width: signal.Width}
	}
	bits := make([]int, pin.Width)
	for i := range bits {
		bits[i] = base + i
	}
	return bits, nil
}
