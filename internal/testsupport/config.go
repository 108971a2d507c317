package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"namebank/internal/config"
	"namebank/internal/names"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Database = filepath.Join(base, "names.json")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.History.Path = filepath.Join(base, "history.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDatabase seeds the configured database path with the given records.
func WithDatabase(records []names.Record) ConfigOption {
	return func(b *configBuilder) {
		WriteDatabase(b.t, b.cfg.Paths.Database, records)
	}
}

// WriteDatabase writes a JSON name database fixture at path.
func WriteDatabase(t testing.TB, path string, records []names.Record) {
	t.Helper()
	if records == nil {
		records = []names.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("marshal database fixture: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir database dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write database fixture: %v", err)
	}
}
