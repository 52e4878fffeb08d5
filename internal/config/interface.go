package config

import (
	"context"

	"github.com/specialistvlad/pinmuxgen/internal/model"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into a
	// single design. Declaration order across files is preserved.
	Load(ctx context.Context, paths ...string) (*model.Design, error)
}
