package resolve

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_ScalarPinCollectsAllDrivers(t *testing.T) {
	d := &model.Design{
		Blocks: []*model.Block{uartBlock(2)},
		Pins: []*model.Pin{
			{Name: "tx", Connections: []model.Connection{
				conn("uart", 1, model.ByName("tx")),
				conn("uart", 0, model.ByName("tx")),
			}},
			{Name: "rx", Connections: []model.Connection{conn("uart", 0, model.ByName("rx"))}},
		},
	}
	out := mustResolve(t, d)

	want := []tables.OutputRow{{
		Pin: "tx",
		Drivers: []tables.Driver{
			{Block: "uart", Signal: "tx", Instance: 0},
			{Block: "uart", Signal: "tx", Instance: 1},
		},
	}}
	if diff := cmp.Diff(want, out.Outputs); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_ArrayedPinOneRowPerBit(t *testing.T) {
	d := &model.Design{
		Blocks: []*model.Block{gpioBlock(1, 8)},
		Pins: []*model.Pin{
			{Name: "led", Width: 3, Connections: []model.Connection{conn("gpio", 0, model.ByIndex(2))}},
		},
	}
	out := mustResolve(t, d)
	require.Len(t, out.Outputs, 3)

	for i, row := range out.Outputs {
		assert.Equal(t, "led", row.Pin)
		require.Len(t, row.Drivers, 1)
		assert.Equal(t, "gpio_ios[0]["+string(rune('2'+i))+"]", row.Drivers[0].String())
	}
	assert.Equal(t, "_0", out.Outputs[0].Suffix)
	assert.Equal(t, "[2]", out.Outputs[2].Index)
}

func TestAggregate_IncompleteArrayedPin(t *testing.T) {
	// Both connections fit, but together they drive four bits of a two-bit pin.
	d := &model.Design{
		Blocks: []*model.Block{gpioBlock(2, 8)},
		Pins: []*model.Pin{
			{Name: "pair", Width: 2, Connections: []model.Connection{
				conn("gpio", 0, model.ByIndex(0)),
				conn("gpio", 1, model.ByIndex(0)),
			}},
		},
	}
	err := resolveErr(t, d)

	var e *IncompletePinMappingError
	require.True(t, errors.As(err, &e), "got %v", err)
	assert.Equal(t, IncompletePinMappingError{Pin: "pair", Width: 2, Drivers: 4}, *e)
}

func TestAggregate_UndrivenPinsOmitted(t *testing.T) {
	d := &model.Design{
		Blocks: []*model.Block{uartBlock(1)},
		Pins:   []*model.Pin{{Name: "rx", Connections: []model.Connection{conn("uart", 0, model.ByName("rx"))}}},
	}
	assert.Empty(t, mustResolve(t, d).Outputs)
}
