package resolve

import (
	"context"
	"testing"

	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func mustRegistry(t *testing.T, d *model.Design) *registry.Registry {
	t.Helper()
	reg, err := registry.New(d)
	require.NoError(t, err)
	return reg
}

// mustBind runs the slot and bind stages.
func mustBind(t *testing.T, d *model.Design) (*registry.Registry, *arena) {
	t.Helper()
	ctx := context.Background()
	reg := mustRegistry(t, d)
	a, err := buildSlots(ctx, reg)
	require.NoError(t, err)
	require.NoError(t, bind(ctx, reg, a))
	return reg, a
}

func mustResolve(t *testing.T, d *model.Design) *tables.Tables {
	t.Helper()
	out, err := Resolve(context.Background(), mustRegistry(t, d))
	require.NoError(t, err)
	return out
}

func resolveErr(t *testing.T, d *model.Design) error {
	t.Helper()
	out, err := Resolve(context.Background(), mustRegistry(t, d))
	require.Error(t, err)
	require.Nil(t, out, "no partial tables may be returned on failure")
	return err
}

func gpioBlock(instances, width int) *model.Block {
	return &model.Block{Name: "gpio", Instances: instances, Signals: []*model.Signal{
		{Name: model.IOsSignal, Direction: model.InOut, Combine: model.CombineMux, Width: width},
	}}
}

func uartBlock(instances int) *model.Block {
	return &model.Block{Name: "uart", Instances: instances, Signals: []*model.Signal{
		{Name: "rx", Direction: model.Input, Default: intPtr(1), Width: 1},
		{Name: "tx", Direction: model.Output, Width: 1},
	}}
}

func i2cBlock(instances int, combine model.Combine) *model.Block {
	return &model.Block{Name: "i2c", Instances: instances, Signals: []*model.Signal{
		{Name: "sda", Direction: model.InOut, Combine: combine, Width: 1},
		{Name: "scl", Direction: model.InOut, Combine: combine, Width: 1},
	}}
}

func conn(block string, instance int, ref model.SignalRef) model.Connection {
	return model.Connection{Block: block, Instance: instance, Ref: ref}
}

// inputRow finds the input row for a signal instance bit.
func inputRow(t *testing.T, out *tables.Tables, signal string, instance, bit int) tables.InputRow {
	t.Helper()
	for _, row := range out.Inputs {
		if row.Signal == signal && row.Instance == instance && row.Bit == bit {
			return row
		}
	}
	t.Fatalf("no input row for %s[%d] bit %d", signal, instance, bit)
	return tables.InputRow{}
}
