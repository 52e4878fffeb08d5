package resolve

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pinmuxgen/internal/ctxlog"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
)

// aggregate groups the drivers of every driven pin. An arrayed pin gets one
// row per bit and must be driven by exactly one signal bit per pin bit.
func aggregate(ctx context.Context, reg *registry.Registry, drivers [][]tables.Driver) ([]tables.OutputRow, error) {
	logger := ctxlog.FromContext(ctx)

	rows := []tables.OutputRow{}
	for pi, pin := range reg.Design().Pins {
		ds := drivers[pi]
		if len(ds) == 0 {
			continue
		}
		if !pin.Arrayed() {
			rows = append(rows, tables.OutputRow{Pin: pin.Name, Drivers: ds})
			continue
		}
		if len(ds) != pin.Width {
			return nil, &IncompletePinMappingError{Pin: pin.Name, Width: pin.Width, Drivers: len(ds)}
		}
		for i := 0; i < pin.Width; i++ {
			rows = append(rows, tables.OutputRow{
				Pin:     pin.Name,
				Suffix:  fmt.Sprintf("_%d", i),
				Index:   fmt.Sprintf("[%d]", i),
				Drivers: []tables.Driver{ds[i]},
			})
		}
	}

	logger.Debug("Pin outputs aggregated.", "rows", len(rows))
	return rows, nil
}
