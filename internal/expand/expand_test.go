package expand_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"namebank/internal/expand"
	"namebank/internal/history"
	"namebank/internal/names"
	"namebank/internal/testsupport"
)

func writeDatabase(t *testing.T, records []names.Record) string {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithDatabase(records))
	return cfg.Paths.Database
}

func TestRunEmptyDatabaseFullCandidates(t *testing.T) {
	path := writeDatabase(t, []names.Record{})

	result, err := expand.Run(context.Background(), expand.Options{
		DatabasePath: path,
		LockPath:     path + ".lock",
		Candidates:   names.BuiltinCandidates(),
		Source:       "builtin",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Before != 0 || result.Added != 56 || result.After != 56 {
		t.Fatalf("unexpected result: %+v", result)
	}

	catalog, err := names.Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	records := catalog.Records()
	if records[0].Name != "Abraham" {
		t.Fatalf("expected Abraham first, got %q", records[0].Name)
	}
	if records[len(records)-1].Name != "Zara" {
		t.Fatalf("expected Zara last, got %q", records[len(records)-1].Name)
	}
	for i := 1; i < len(records); i++ {
		if strings.ToLower(records[i-1].Name) > strings.ToLower(records[i].Name) {
			t.Fatalf("output not sorted at %d: %q > %q", i, records[i-1].Name, records[i].Name)
		}
	}
}

func TestRunPreservesExistingRecords(t *testing.T) {
	original := names.Record{ID: "ava", Name: "Ava", Gender: names.GenderFemale, Origins: []string{"latin"}, Styles: []string{"modern", "elegant"}, Meaning: "Life", Popularity: names.PopularityPopular}
	path := writeDatabase(t, []names.Record{original})

	result, err := expand.Run(context.Background(), expand.Options{
		DatabasePath: path,
		Candidates: []names.Record{
			{ID: "ava", Name: "Conflicting Ava", Meaning: "changed"},
			{ID: "kai", Name: "Kai", Gender: names.GenderNeutral},
		},
		Source: "builtin",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Before != 1 || result.Added != 1 || result.After != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}

	catalog, err := names.Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, ok := catalog.Get("ava")
	if !ok {
		t.Fatal("ava missing after run")
	}
	if got.Name != original.Name || got.Meaning != original.Meaning {
		t.Fatalf("existing record changed: %+v", got)
	}
}

func TestRunIdempotent(t *testing.T) {
	path := writeDatabase(t, []names.Record{})

	opts := expand.Options{
		DatabasePath: path,
		Candidates:   names.BuiltinCandidates(),
		Source:       "builtin",
	}

	first, err := expand.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	second, err := expand.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if second.Added != 0 {
		t.Fatalf("second run added %d records", second.Added)
	}
	if second.After != first.After {
		t.Fatalf("collection size changed on repeat run: %d != %d", second.After, first.After)
	}
}

func TestRunMissingDatabase(t *testing.T) {
	_, err := expand.Run(context.Background(), expand.Options{
		DatabasePath: filepath.Join(t.TempDir(), "absent.json"),
		Candidates:   names.BuiltinCandidates(),
	})
	if err == nil {
		t.Fatal("expected error for missing database")
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	path := writeDatabase(t, []names.Record{})
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	result, err := expand.Run(context.Background(), expand.Options{
		DatabasePath: path,
		Candidates:   names.BuiltinCandidates(),
		DryRun:       true,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Added != 56 {
		t.Fatalf("expected 56 reported additions, got %d", result.Added)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read database: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("dry run modified the database")
	}
}

func TestRunRecordsHistory(t *testing.T) {
	path := writeDatabase(t, []names.Record{})
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer store.Close()

	if _, err := expand.Run(context.Background(), expand.Options{
		DatabasePath: path,
		Candidates:   names.BuiltinCandidates(),
		Source:       "builtin",
		History:      store,
	}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	runs, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Source != "builtin" || runs[0].Added != 56 || runs[0].After != 56 {
		t.Fatalf("unexpected run: %+v", runs[0])
	}
	if runs[0].RunID == "" {
		t.Fatal("expected the recorded run to carry a run id")
	}
}

func TestRunRefusesHeldLock(t *testing.T) {
	path := writeDatabase(t, []names.Record{})
	lockPath := path + ".lock"

	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil || !locked {
		t.Fatalf("failed to take lock: locked=%v err=%v", locked, err)
	}
	defer lock.Unlock()

	_, err = expand.Run(context.Background(), expand.Options{
		DatabasePath: path,
		LockPath:     lockPath,
		Candidates:   names.BuiltinCandidates(),
	})
	if err == nil {
		t.Fatal("expected lock error")
	}
}
