package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/pinmuxgen/internal/ctxlog"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
	"github.com/specialistvlad/pinmuxgen/internal/resolve"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
	"github.com/specialistvlad/pinmuxgen/internal/validator"
)

// Run loads the configuration, resolves it into connectivity tables and
// writes them as JSON, either to outW or to the configured output file.
// Nothing is written when any stage fails.
func (a *App) Run(ctx context.Context, outW io.Writer) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	design, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration loaded.", "blocks", len(design.Blocks), "pins", len(design.Pins))

	reg, err := registry.New(design)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := reg.RequireBlocks(a.config.RequiredBlocks...); err != nil {
		return err
	}

	out, err := resolve.Resolve(ctx, reg)
	if err != nil {
		return fmt.Errorf("failed to resolve pinmux: %w", err)
	}

	if a.config.SkipValidate {
		a.logger.Warn("Table validation skipped.")
	} else if err := a.validate(out); err != nil {
		return err
	}

	data, err := out.MarshalIndent()
	if err != nil {
		return err
	}
	if err := a.write(outW, data); err != nil {
		return err
	}

	a.logger.Info("Pinmux tables generated.",
		"blocks", len(design.Blocks),
		"pins", len(design.Pins),
		"inputs", len(out.Inputs),
		"outputs", len(out.Outputs),
		"combines", len(out.Combines),
		"out", a.config.OutPath,
	)
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) validate(out *tables.Tables) error {
	v, err := validator.New()
	if err != nil {
		return err
	}
	if err := v.Validate(out); err != nil {
		return fmt.Errorf("generated tables are invalid: %w", err)
	}
	a.logger.Debug("Tables passed schema validation.")
	return nil
}

func (a *App) write(outW io.Writer, data []byte) error {
	if a.config.OutPath == StdoutPath {
		if _, err := outW.Write(data); err != nil {
			return fmt.Errorf("failed to write tables: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(a.config.OutPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write tables to %s: %w", a.config.OutPath, err)
	}
	return nil
}
