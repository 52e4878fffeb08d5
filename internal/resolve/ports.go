package resolve

import (
	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
)

// blockPorts lists the pinmux ports facing each block signal. An output
// signal enters the pinmux, an input signal leaves it, and an inout signal has
// three wires: the value it drives, its drive enable, and the value it senses.
func blockPorts(design *model.Design) []tables.BlockPort {
	ports := []tables.BlockPort{}
	for _, block := range design.Blocks {
		for _, signal := range block.Signals {
			name := model.PortName(block.Name, signal.Name)
			port := func(dir, suffix string) tables.BlockPort {
				return tables.BlockPort{Direction: dir, Name: name + suffix, Width: signal.Width, Instances: block.Instances}
			}
			switch signal.Direction {
			case model.Output:
				ports = append(ports, port(tables.PortInput, "_i"))
			case model.Input:
				ports = append(ports, port(tables.PortOutput, "_o"))
			case model.InOut:
				ports = append(ports,
					port(tables.PortInput, "_i"),
					port(tables.PortInput, "_en_i"),
					port(tables.PortOutput, "_o"),
				)
			}
		}
	}
	return ports
}

func pinPorts(design *model.Design) []tables.PinPort {
	ports := make([]tables.PinPort, 0, len(design.Pins))
	for _, pin := range design.Pins {
		ports = append(ports, tables.PinPort{Name: pin.Name, Width: pin.Bits(), Arrayed: pin.Arrayed()})
	}
	return ports
}
