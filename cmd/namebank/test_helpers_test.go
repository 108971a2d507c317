package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"namebank/internal/names"
	"namebank/internal/testsupport"
)

type cliTestEnv struct {
	baseDir      string
	configPath   string
	databasePath string
	historyPath  string
}

// setupCLITestEnv writes a config file pointing at temp paths and seeds the
// name database with the given records (an empty array when nil).
func setupCLITestEnv(t *testing.T, records []names.Record) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:      base,
		configPath:   filepath.Join(base, "config.toml"),
		databasePath: filepath.Join(base, "names.json"),
		historyPath:  filepath.Join(base, "history.db"),
	}

	content := fmt.Sprintf(`[paths]
database = %q
log_dir = %q

[history]
enabled = true
path = %q
`, env.databasePath, filepath.Join(base, "logs"), env.historyPath)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	testsupport.WriteDatabase(t, env.databasePath, records)

	return env
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}
