package distant

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

// A CategoryTable maps thematic category names to their member word lists.
// The table is fixed configuration, loaded once and passed in explicitly.
type CategoryTable map[string][]string

// DefaultCategoryTable is the built-in five-category romantic lexicon.
func DefaultCategoryTable() CategoryTable {
	return CategoryTable{
		"love": {
			"love", "loved", "loving", "lover", "lovers", "beloved",
			"adore", "adored", "adoring", "adoration",
		},
		"yearning": {
			"yearning", "yearn", "yearned", "longing", "long", "longed",
			"desire", "desired", "desiring", "wish", "wished", "wishing",
			"hope", "hoped", "hoping", "pine", "pined", "pining",
		},
		"affection": {
			"affection", "affectionate", "tender", "tenderness", "fond",
			"fondness", "devotion", "devoted", "attachment", "attached",
			"passion", "passionate",
		},
		"pain": {
			"pain", "painful", "anguish", "anguished", "sorrow",
			"sorrowful", "grief", "grieved", "melancholy", "despair",
			"despairing", "heartbreak", "heartbroken", "torment",
			"tormented", "suffering", "suffer", "suffered", "misery",
			"miserable", "wretched", "agony",
		},
		"loss": {
			"loss", "lost", "forsaken", "abandoned", "rejection",
			"rejected", "unrequited", "separated", "separation", "parted",
			"parting", "farewell",
		},
	}
}

// LoadCategoryTable reads a replacement table from a JSON file shaped as
// {"category": ["word", ...], ...}. The loaded table replaces the default
// wholesale. A malformed or empty table is a configuration error; it would
// silently corrupt every text's density, so the caller must abort the run.
func LoadCategoryTable(path string) (CategoryTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category table: %w", err)
	}

	var table CategoryTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse category table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate rejects tables that cannot produce meaningful densities.
func (ct CategoryTable) Validate() error {
	if len(ct) == 0 {
		return fmt.Errorf("category table has no categories")
	}
	for name, words := range ct {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("category table has an unnamed category")
		}
		if len(words) == 0 {
			return fmt.Errorf("category %q has no words", name)
		}
	}
	return nil
}

// thematicTopWords caps the per-category word counts retained for display.
const thematicTopWords = 10

// MatchThematic scans a text's frequency table for the category members and
// reports per-category totals plus the overall density. Every configured
// category appears in the report, zero matches or not.
func MatchThematic(table FrequencyTable, categories CategoryTable) ThematicReport {
	report := ThematicReport{Categories: make(map[string]CategoryStats, len(categories))}

	for name, members := range categories {
		counts := make(map[string]int)
		total := 0
		for _, word := range members {
			if n, ok := table[strings.ToLower(word)]; ok {
				counts[word] = n
				total += n
			}
		}
		report.Categories[name] = CategoryStats{
			Words:  topWordCounts(counts, thematicTopWords),
			Total:  total,
			Unique: len(counts),
		}
		report.TotalMatches += total
	}

	if wordCount := table.Total(); wordCount > 0 {
		density := 100 * float64(report.TotalMatches) / float64(wordCount)
		report.DensityPercentage = math.Round(density*1000) / 1000
	}
	return report
}

// topWordCounts keeps the n highest counts, ties broken by word for
// deterministic output.
func topWordCounts(counts map[string]int, n int) map[string]int {
	if len(counts) <= n {
		return counts
	}
	type entry struct {
		word  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for w, c := range counts {
		entries = append(entries, entry{w, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})
	top := make(map[string]int, n)
	for _, e := range entries[:n] {
		top[e.word] = e.count
	}
	return top
}
