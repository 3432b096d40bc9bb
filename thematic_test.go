package distant

import (
	"math"
	"testing"
)

func TestMatchThematic(t *testing.T) {
	table := FrequencyTable{"love": 3, "affection": 1, "hate": 2}
	categories := CategoryTable{"love": {"love", "affection"}}

	report := MatchThematic(table, categories)

	stats, ok := report.Categories["love"]
	if !ok {
		t.Fatal("love category missing from report")
	}
	if stats.Total != 4 {
		t.Errorf("total = %d, want 4", stats.Total)
	}
	if stats.Unique != 2 {
		t.Errorf("unique = %d, want 2", stats.Unique)
	}
	if stats.Words["love"] != 3 || stats.Words["affection"] != 1 {
		t.Errorf("word counts = %v", stats.Words)
	}

	// 100 * 4 / 6, rounded to three decimals.
	if math.Abs(report.DensityPercentage-66.667) > 1e-9 {
		t.Errorf("density = %.3f, want 66.667", report.DensityPercentage)
	}
}

func TestMatchThematicReportsEmptyCategories(t *testing.T) {
	table := FrequencyTable{"ship": 2}
	report := MatchThematic(table, DefaultCategoryTable())

	if len(report.Categories) != 5 {
		t.Fatalf("got %d categories, want all 5", len(report.Categories))
	}
	for name, stats := range report.Categories {
		if stats.Total != 0 || stats.Unique != 0 {
			t.Errorf("category %s = %+v, want zeros", name, stats)
		}
	}
	if report.DensityPercentage != 0 {
		t.Errorf("density = %.3f, want 0", report.DensityPercentage)
	}
}

func TestMatchThematicEmptyTable(t *testing.T) {
	report := MatchThematic(FrequencyTable{}, DefaultCategoryTable())
	if report.DensityPercentage != 0 {
		t.Errorf("density over empty table = %.3f, want 0 not a division error", report.DensityPercentage)
	}
}

func TestCategoryTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   CategoryTable
		wantErr bool
	}{
		{"valid", CategoryTable{"love": {"love"}}, false},
		{"empty table", CategoryTable{}, true},
		{"empty category", CategoryTable{"love": {}}, true},
		{"unnamed category", CategoryTable{" ": {"love"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCategoryTable(t *testing.T) {
	dir := t.TempDir()

	good := dir + "/good.json"
	if err := writeTestFile(t, good, `{"sea": ["wave", "tide"]}`); err != nil {
		t.Fatal(err)
	}
	table, err := LoadCategoryTable(good)
	if err != nil {
		t.Fatalf("LoadCategoryTable: %v", err)
	}
	if len(table["sea"]) != 2 {
		t.Errorf("table = %v", table)
	}

	bad := dir + "/bad.json"
	if err := writeTestFile(t, bad, `["not", "a", "table"]`); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCategoryTable(bad); err == nil {
		t.Error("malformed table should error")
	}

	if _, err := LoadCategoryTable(dir + "/missing.json"); err == nil {
		t.Error("missing file should error")
	}
}
