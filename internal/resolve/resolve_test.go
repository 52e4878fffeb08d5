package resolve

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/pinmuxgen/internal/ctxlog"
	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardDesign() *model.Design {
	return &model.Design{
		Blocks: []*model.Block{
			gpioBlock(2, 8),
			uartBlock(2),
			i2cBlock(1, model.CombineAnd),
			{Name: "spi", Instances: 1, Signals: []*model.Signal{
				{Name: "sck", Direction: model.Output, Width: 1},
				{Name: "cs", Direction: model.Output, Width: 2},
				{Name: "cipo", Direction: model.Input, Default: intPtr(0), Width: 1},
			}},
		},
		Pins: []*model.Pin{
			{Name: "p0", Connections: []model.Connection{
				conn("gpio", 0, model.ByIndex(0)),
				conn("uart", 0, model.ByName("tx")),
			}},
			{Name: "p1", Connections: []model.Connection{
				conn("gpio", 0, model.ByIndex(1)),
				conn("uart", 0, model.ByName("rx")),
			}},
			{Name: "sda", Connections: []model.Connection{conn("i2c", 0, model.ByName("sda"))}},
			{Name: "scl", Connections: []model.Connection{conn("i2c", 0, model.ByName("scl"))}},
			{Name: "hdr", Width: 4, Connections: []model.Connection{conn("gpio", 1, model.ByIndex(4))}},
			{Name: "cs", Connections: []model.Connection{conn("spi", 0, model.ByName("cs"))}},
		},
	}
}

func TestResolve_Board(t *testing.T) {
	out := mustResolve(t, boardDesign())

	assert.Equal(t, map[string]int{"gpio": 2, "uart": 2, "i2c": 1, "spi": 1}, out.InstanceCounts)

	// and-combined inouts get no candidate lists.
	assert.Len(t, out.Inputs, 16+2+1)
	assert.Equal(t, []string{"1'b0", "p1"}, inputRow(t, out, "gpio_ios", 0, 1).Candidates)
	assert.Equal(t, []string{"1'b1", "p1"}, inputRow(t, out, "uart_rx", 0, 0).Candidates)
	assert.Equal(t, []string{"1'b0", "hdr[3]"}, inputRow(t, out, "gpio_ios", 1, 7).Candidates)
	assert.Equal(t, []string{"1'b0", "1'b0"}, inputRow(t, out, "spi_cipo", 0, 0).Candidates)

	pins := []string{}
	for _, row := range out.Outputs {
		pins = append(pins, row.Pin+row.Suffix)
	}
	want := []string{"p0", "p1", "sda", "scl", "hdr_0", "hdr_1", "hdr_2", "hdr_3", "cs"}
	if diff := cmp.Diff(want, pins); diff != "" {
		t.Errorf("output pins mismatch (-want +got):\n%s", diff)
	}

	cs := out.Outputs[len(out.Outputs)-1]
	require.Len(t, cs.Drivers, 2)
	assert.Equal(t, "spi_cs[0][1]", cs.Drivers[1].String())

	require.Len(t, out.Combines, 2)
	assert.Equal(t, []int{2}, out.Combines[0].Selectors)
}

func TestResolve_Ports(t *testing.T) {
	out := mustResolve(t, boardDesign())

	want := []tables.BlockPort{
		{Direction: "input", Name: "gpio_ios_i", Width: 8, Instances: 2},
		{Direction: "input", Name: "gpio_ios_en_i", Width: 8, Instances: 2},
		{Direction: "output", Name: "gpio_ios_o", Width: 8, Instances: 2},
		{Direction: "output", Name: "uart_rx_o", Width: 1, Instances: 2},
		{Direction: "input", Name: "uart_tx_i", Width: 1, Instances: 2},
		{Direction: "input", Name: "i2c_sda_i", Width: 1, Instances: 1},
		{Direction: "input", Name: "i2c_sda_en_i", Width: 1, Instances: 1},
		{Direction: "output", Name: "i2c_sda_o", Width: 1, Instances: 1},
		{Direction: "input", Name: "i2c_scl_i", Width: 1, Instances: 1},
		{Direction: "input", Name: "i2c_scl_en_i", Width: 1, Instances: 1},
		{Direction: "output", Name: "i2c_scl_o", Width: 1, Instances: 1},
		{Direction: "input", Name: "spi_sck_i", Width: 1, Instances: 1},
		{Direction: "input", Name: "spi_cs_i", Width: 2, Instances: 1},
		{Direction: "output", Name: "spi_cipo_o", Width: 1, Instances: 1},
	}
	if diff := cmp.Diff(want, out.BlockPorts); diff != "" {
		t.Errorf("block ports mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, out.PinPorts, 6)
	assert.Equal(t, tables.PinPort{Name: "hdr", Width: 4, Arrayed: true}, out.PinPorts[4])
	assert.Equal(t, tables.PinPort{Name: "p0", Width: 1}, out.PinPorts[0])
}

func TestResolve_Idempotent(t *testing.T) {
	first, err := mustResolve(t, boardDesign()).MarshalIndent()
	require.NoError(t, err)
	second, err := mustResolve(t, boardDesign()).MarshalIndent()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestResolve_EmptyDesign(t *testing.T) {
	out := mustResolve(t, model.NewDesign())
	assert.Empty(t, out.Inputs)
	assert.Empty(t, out.Outputs)
	assert.Empty(t, out.Combines)
	assert.NotNil(t, out.Inputs)
}

func TestResolve_LogsPerBlock(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, err := Resolve(ctx, mustRegistry(t, boardDesign()))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="Block lists generated." block=gpio signals=1 input_rows=16`)
	assert.Contains(t, out, `msg="Block lists generated." block=i2c signals=2 input_rows=0`)
	assert.Contains(t, out, `msg="Selectors encoded." block=i2c signal=sda instance=0 pins=1`)
	assert.NotContains(t, out, "signal=ios")
}
