package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/pinmuxgen/internal/app"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
	"github.com/spf13/cobra"
)

// Exit codes used by the pinmuxgen entrypoint.
const (
	CodeFailure       = 1
	CodeUsage         = 2
	CodeMissingBlocks = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type options struct {
	configPath     string
	outPath        string
	logFormat      string
	logLevel       string
	requiredBlocks []string
	skipValidate   bool
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if args == nil {
		args = []string{}
	}

	var (
		opts   options
		config *app.Config
	)

	cmd := &cobra.Command{
		Use:   "pinmuxgen [flags] [CONFIG_PATH]",
		Short: "Resolve a pin-multiplexing configuration into connectivity tables",
		Long: `pinmuxgen - Resolves which package pins can drive and sense which
peripheral signals, and writes the connectivity tables used to render
the pinmux RTL.

Arguments:
  CONFIG_PATH
    Path to a single .hcl file or a directory containing .hcl files.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			path := opts.configPath
			if path == "" && len(positional) > 0 {
				path = positional[0]
			}
			slog.Debug("Config path determined.", "path", path)

			if path == "" {
				slog.Debug("No config path provided, printing usage and exiting.")
				return cmd.Usage()
			}

			cfg, err := buildConfig(path, opts)
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to the configuration file or directory.")
	flags.StringVarP(&opts.outPath, "out", "o", app.StdoutPath, "Output file for the JSON tables. '-' writes to stdout.")
	flags.StringVar(&opts.logFormat, "log-format", "json", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringSliceVar(&opts.requiredBlocks, "require", registry.DefaultRequiredBlocks, "Blocks that must be declared in the configuration.")
	flags.BoolVar(&opts.skipValidate, "skip-validate", false, "Skip schema validation of the generated tables.")

	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}
	if config == nil {
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func buildConfig(path string, opts options) (*app.Config, error) {
	logFormat := strings.ToLower(opts.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: CodeUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(opts.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, &ExitError{Code: CodeUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	return app.NewConfig(app.Config{
		ConfigPath:     path,
		OutPath:        opts.outPath,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		RequiredBlocks: append([]string(nil), opts.requiredBlocks...),
		SkipValidate:   opts.skipValidate,
	})
}
