package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/pinmuxgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSlots_Dimensions(t *testing.T) {
	d := &model.Design{Blocks: []*model.Block{gpioBlock(4, 8), uartBlock(2)}}
	a, err := buildSlots(context.Background(), mustRegistry(t, d))
	require.NoError(t, err)

	ios := a.slots(0, 0)
	require.Len(t, ios.bits, 8)
	for _, bit := range ios.bits {
		require.Len(t, bit, 4)
		for _, slot := range bit {
			assert.Empty(t, slot)
		}
	}

	tx := a.slots(1, 1)
	require.Len(t, tx.bits, 1)
	assert.Len(t, tx.bits[0], 2)
	assert.Equal(t, "tx", tx.signal.Name)
	assert.Equal(t, "uart", tx.block.Name)
}

func TestBuildSlots_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		block  *model.Block
		reason string
	}{
		{
			name:   "zero instances",
			block:  &model.Block{Name: "spi", Instances: 0},
			reason: "instance count",
		},
		{
			name: "zero width",
			block: &model.Block{Name: "spi", Instances: 1, Signals: []*model.Signal{
				{Name: "cs", Direction: model.Output, Width: 0},
			}},
			reason: "width",
		},
		{
			name: "input without default",
			block: &model.Block{Name: "spi", Instances: 1, Signals: []*model.Signal{
				{Name: "cipo", Direction: model.Input, Width: 1},
			}},
			reason: "default value",
		},
		{
			name: "input default not a bit",
			block: &model.Block{Name: "spi", Instances: 1, Signals: []*model.Signal{
				{Name: "cipo", Direction: model.Input, Default: intPtr(2), Width: 1},
			}},
			reason: "0 or 1",
		},
		{
			name: "inout without policy",
			block: &model.Block{Name: "spi", Instances: 1, Signals: []*model.Signal{
				{Name: "io", Direction: model.InOut, Width: 1},
			}},
			reason: "combine policy",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := &model.Design{Blocks: []*model.Block{tc.block}}
			_, err := buildSlots(context.Background(), mustRegistry(t, d))
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
			assert.Equal(t, "spi", cfgErr.Block)
			assert.Contains(t, cfgErr.Reason, tc.reason)
		})
	}
}
