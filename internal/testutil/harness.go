// Package testutil provides a harness that writes HCL fixtures to a temporary
// directory and runs the full application over them.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/pinmuxgen/internal/app"
	"github.com/specialistvlad/pinmuxgen/internal/hcladapter"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	// Output is the raw JSON written by the run.
	Output []byte
	// Tables is Output decoded, or nil when the run failed.
	Tables *tables.Tables
	Err    error
}

// RunIntegrationTest writes files under a temporary directory, then runs the
// app on that directory. cfg may set any field except ConfigPath; the log
// level is forced to debug. A nil RequiredBlocks requires nothing.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	require.NoError(t, os.Mkdir(configDir, 0o755))

	for name, content := range files {
		filePath := filepath.Join(configDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg.ConfigPath = configDir
	cfg.LogLevel = "debug"
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	out := &bytes.Buffer{}
	runErr := app.NewApp(logBuffer, appConfig, hcladapter.NewLoader()).Run(ctx, out)

	if os.Getenv("PINMUX_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result := &HarnessResult{
		LogOutput: logBuffer.String(),
		Output:    out.Bytes(),
		Err:       runErr,
	}
	if runErr == nil && appConfig.OutPath == app.StdoutPath {
		var decoded tables.Tables
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded), "run output must be valid JSON")
		result.Tables = &decoded
	}
	return result
}

// InputRow returns the input row for one signal instance bit, failing the
// test when absent.
func InputRow(t *testing.T, tbl *tables.Tables, signal string, instance, bit int) tables.InputRow {
	t.Helper()
	for _, row := range tbl.Inputs {
		if row.Signal == signal && row.Instance == instance && row.Bit == bit {
			return row
		}
	}
	t.Fatalf("no input row for %s[%d] bit %d", signal, instance, bit)
	return tables.InputRow{}
}
