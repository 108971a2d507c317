package names

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDatabase(t *testing.T, records []Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.json")
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing database")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.json")
	if err := os.WriteFile(path, []byte("{not an array"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestMergeSkipsExistingIdentifiers(t *testing.T) {
	existing := Record{ID: "ava", Name: "Ava", Gender: GenderFemale, Origins: []string{"latin"}, Styles: []string{"modern", "elegant"}, Meaning: "Life", Popularity: PopularityPopular}
	catalog := NewCatalog([]Record{existing})

	candidates := []Record{
		{ID: "ava", Name: "AVA CHANGED", Gender: GenderNeutral, Meaning: "different"},
		{ID: "kai", Name: "Kai", Gender: GenderNeutral, Origins: []string{"hawaiian", "japanese"}, Styles: []string{"modern", "nature"}, Meaning: "Sea", Popularity: PopularityCommon},
	}

	added := catalog.Merge(candidates)
	if added != 1 {
		t.Fatalf("expected 1 addition, got %d", added)
	}
	if catalog.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", catalog.Len())
	}

	got, ok := catalog.Get("ava")
	if !ok {
		t.Fatal("ava record missing after merge")
	}
	if got.Name != "Ava" || got.Meaning != "Life" {
		t.Fatalf("existing record was overwritten: %+v", got)
	}
	if !catalog.Contains("kai") {
		t.Fatal("kai record missing after merge")
	}
}

func TestMergeSizeArithmetic(t *testing.T) {
	catalog := NewCatalog([]Record{
		{ID: "emma", Name: "Emma"},
		{ID: "kai", Name: "Kai"},
	})

	candidates := BuiltinCandidates()
	novel := 0
	for _, c := range candidates {
		if c.ID != "emma" && c.ID != "kai" {
			novel++
		}
	}

	added := catalog.Merge(candidates)
	if added != novel {
		t.Fatalf("expected %d additions, got %d", novel, added)
	}
	if catalog.Len() != 2+novel {
		t.Fatalf("expected %d records, got %d", 2+novel, catalog.Len())
	}
}

func TestMergeIdempotent(t *testing.T) {
	catalog := NewCatalog(nil)

	first := catalog.Merge(BuiltinCandidates())
	second := catalog.Merge(BuiltinCandidates())

	if second != 0 {
		t.Fatalf("second merge added %d records", second)
	}
	if catalog.Len() != first {
		t.Fatalf("catalog grew on repeat merge: %d != %d", catalog.Len(), first)
	}
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	catalog := NewCatalog([]Record{
		{ID: "zara", Name: "Zara"},
		{ID: "ava", Name: "ava"},
		{ID: "kai", Name: "Kai"},
		{ID: "ava2", Name: "Ava"},
	})

	catalog.SortByName()

	records := catalog.Records()
	for i := 1; i < len(records); i++ {
		a := strings.ToLower(records[i-1].Name)
		b := strings.ToLower(records[i].Name)
		if a > b {
			t.Fatalf("records out of order at %d: %q > %q", i, a, b)
		}
	}

	// Equal folded keys keep their original relative order.
	if records[0].ID != "ava" || records[1].ID != "ava2" {
		t.Fatalf("stable order violated: %q then %q", records[0].ID, records[1].ID)
	}
}

func TestFoldName(t *testing.T) {
	if FoldName("Zoë") != FoldName("ZOË") {
		t.Fatal("folded keys differ by case")
	}
	if FoldName("Ava") == FoldName("Kai") {
		t.Fatal("distinct names folded to the same key")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeDatabase(t, []Record{
		{ID: "ava", Name: "Ava", Gender: GenderFemale, Origins: []string{"latin"}, Styles: []string{"modern"}, Meaning: "Life", Popularity: PopularityPopular},
	})

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	catalog.Merge([]Record{{ID: "kai", Name: "Kai", Gender: GenderNeutral}})
	catalog.SortByName()
	if err := catalog.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 records after reload, got %d", reloaded.Len())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read database: %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n  {") {
		t.Fatalf("expected two-space indented array, got prefix %q", string(data)[:10])
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp file left behind after save")
	}
}

func TestSelectFilters(t *testing.T) {
	catalog := NewCatalog(BuiltinCandidates())

	hebrew := catalog.Select(Filter{Origin: "hebrew"})
	for _, r := range hebrew {
		if !r.HasOrigin("hebrew") {
			t.Fatalf("non-hebrew record selected: %+v", r)
		}
	}
	if len(hebrew) == 0 {
		t.Fatal("expected hebrew records in builtin set")
	}

	rareMale := catalog.Select(Filter{Gender: GenderMale, Popularity: PopularityRare})
	if len(rareMale) != 1 || rareMale[0].ID != "oak" {
		t.Fatalf("expected only oak, got %+v", rareMale)
	}

	nothing := catalog.Select(Filter{Style: "does-not-exist"})
	if len(nothing) != 0 {
		t.Fatalf("expected empty selection, got %d", len(nothing))
	}
}

func TestSummarize(t *testing.T) {
	catalog := NewCatalog([]Record{
		{ID: "a", Name: "A", Gender: GenderMale, Popularity: PopularityRare},
		{ID: "b", Name: "B", Gender: GenderMale, Popularity: PopularityCommon},
		{ID: "c", Name: "C", Gender: GenderFemale, Popularity: PopularityCommon},
	})

	stats := catalog.Summarize()
	if stats.Total != 3 {
		t.Fatalf("unexpected total: %d", stats.Total)
	}
	if stats.ByGender[GenderMale] != 2 || stats.ByGender[GenderFemale] != 1 {
		t.Fatalf("unexpected gender counts: %+v", stats.ByGender)
	}
	if stats.ByPopularity[PopularityCommon] != 2 {
		t.Fatalf("unexpected popularity counts: %+v", stats.ByPopularity)
	}
}
