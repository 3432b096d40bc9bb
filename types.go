package distant

import "sort"

// A SourceText is one raw text handed to the pipeline, with metadata already
// resolved. It is never mutated after loading.
type SourceText struct {
	Filename string
	Title    string
	Author   string
	Content  string
}

// A Sentence is one segmented sentence of a document. Index preserves the
// sentence's position within the document, which the arc segmentation needs.
type Sentence struct {
	Text  string
	Index int
}

// A FrequencyTable maps each stopword-surviving word of one text to its
// count. Every count is at least 1 and the counts sum to the number of
// surviving tokens.
type FrequencyTable map[string]int

// Total returns the number of surviving tokens behind the table.
func (ft FrequencyTable) Total() int {
	total := 0
	for _, n := range ft {
		total += n
	}
	return total
}

// TopN returns the n most frequent entries. Ties are broken by word so the
// selection is deterministic across runs.
func (ft FrequencyTable) TopN(n int) map[string]int {
	type entry struct {
		word  string
		count int
	}
	entries := make([]entry, 0, len(ft))
	for w, c := range ft {
		entries = append(entries, entry{w, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})
	if n > len(entries) {
		n = len(entries)
	}
	top := make(map[string]int, n)
	for _, e := range entries[:n] {
		top[e.word] = e.count
	}
	return top
}

// A Score is the four-part sentiment result for a span of text. Positive,
// negative and neutral are proportions that sum to 1; compound is a single
// normalized polarity in [-1, 1].
type Score struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

// NeutralScore is the score carried by spans with no scorable content.
func NeutralScore() Score {
	return Score{Positive: 0, Negative: 0, Neutral: 1, Compound: 0}
}

// A SentimentSummary reports document sentiment two ways: Overall re-scores
// the whole body as one unit, Average is the arithmetic mean of per-sentence
// scores. The two compounds diverge by construction of the normalizer and
// both are part of the output contract.
type SentimentSummary struct {
	Overall       Score `json:"overall"`
	Average       Score `json:"average"`
	SentenceCount int   `json:"sentence_count"`
}

// An ArcSegment is one contiguous slice of the document's sentence sequence
// with its mean sentiment. Segment is 1-based; Label names the slice's
// position within the document.
type ArcSegment struct {
	Segment       int    `json:"segment"`
	Label         string `json:"label"`
	Sentiment     Score  `json:"sentiment"`
	SentenceCount int    `json:"sentence_count"`
}

// An EmotionalArc is the full ordered segmentation of a document.
type EmotionalArc struct {
	Segments      []ArcSegment `json:"segments"`
	TotalSegments int          `json:"total_segments"`
}

// StyleMetrics are the corpus-free statistics of one text.
type StyleMetrics struct {
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgWordLength     float64 `json:"avg_word_length"`
	SentenceCount     int     `json:"sentence_count"`
	WordCount         int     `json:"word_count"`
	UniqueWords       int     `json:"unique_words"`
	TypeTokenRatio    float64 `json:"type_token_ratio"`
	LexicalDiversity  float64 `json:"lexical_diversity"`
}

// A DistinctiveWord pairs a word with its corpus-relative salience.
type DistinctiveWord struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// CategoryStats holds one thematic category's matches within a text.
type CategoryStats struct {
	Words  map[string]int `json:"words"`
	Total  int            `json:"total"`
	Unique int            `json:"unique"`
}

// A ThematicReport covers every configured category, zero matches or not.
// Filtering empty categories for display is the consumer's concern.
type ThematicReport struct {
	Categories        map[string]CategoryStats `json:"categories"`
	TotalMatches      int                      `json:"total_romantic_words"`
	DensityPercentage float64                  `json:"density_percentage"`
}

// A Result is the finalized per-text record. Field names and nesting are a
// stable contract consumed by the visualization layer.
type Result struct {
	Filename        string            `json:"filename"`
	Title           string            `json:"title"`
	Author          string            `json:"author"`
	WordFrequencies map[string]int    `json:"word_frequencies"`
	Sentiment       SentimentSummary  `json:"sentiment"`
	Style           StyleMetrics      `json:"style"`
	RomanticVocab   ThematicReport    `json:"romantic_vocabulary"`
	EmotionalArc    EmotionalArc      `json:"emotional_arc"`
	Distinctive     []DistinctiveWord `json:"distinctive_words"`
}
