package distant

import (
	"math"
	"testing"
)

func TestCalculateStyleMetrics(t *testing.T) {
	surviving := []string{"love", "love", "hate", "sea", "ship", "sea"}
	sents := []Sentence{{Text: "a", Index: 0}, {Text: "b", Index: 1}, {Text: "c", Index: 2}}
	table := FrequencyTable{"love": 2, "hate": 1, "sea": 2, "ship": 1}

	m := CalculateStyleMetrics(surviving, sents, table)

	if m.WordCount != 6 {
		t.Errorf("word_count = %d, want 6", m.WordCount)
	}
	if m.SentenceCount != 3 {
		t.Errorf("sentence_count = %d, want 3", m.SentenceCount)
	}
	if m.UniqueWords != 4 {
		t.Errorf("unique_words = %d, want 4", m.UniqueWords)
	}
	if math.Abs(m.AvgSentenceLength-2) > 1e-9 {
		t.Errorf("avg_sentence_length = %.3f, want 2", m.AvgSentenceLength)
	}
	// love(4)+love(4)+hate(4)+sea(3)+ship(4)+sea(3) = 22 runes over 6 words.
	if math.Abs(m.AvgWordLength-22.0/6.0) > 1e-9 {
		t.Errorf("avg_word_length = %.4f, want %.4f", m.AvgWordLength, 22.0/6.0)
	}
	if math.Abs(m.LexicalDiversity-4.0/6.0) > 1e-9 {
		t.Errorf("lexical_diversity = %.4f, want %.4f", m.LexicalDiversity, 4.0/6.0)
	}
	if m.TypeTokenRatio != m.LexicalDiversity {
		t.Errorf("type_token_ratio (%.4f) should equal lexical_diversity (%.4f)",
			m.TypeTokenRatio, m.LexicalDiversity)
	}
}

func TestStyleMetricsInvariants(t *testing.T) {
	texts := []string{
		"Anne loved the autumn leaves. She walked alone by the shore.",
		"One.",
		"love love love love",
	}
	for _, text := range texts {
		doc, err := NewDocument(text)
		if err != nil {
			t.Fatalf("NewDocument: %v", err)
		}
		m := CalculateStyleMetrics(doc.SurvivingTokens(), doc.Sentences(), doc.FrequencyTable())
		if m.UniqueWords > m.WordCount {
			t.Errorf("text %q: unique_words %d > word_count %d", text, m.UniqueWords, m.WordCount)
		}
		if m.WordCount > 0 {
			want := float64(m.UniqueWords) / float64(m.WordCount)
			if math.Abs(m.LexicalDiversity-want) > 1e-9 {
				t.Errorf("text %q: lexical_diversity = %.4f, want %.4f", text, m.LexicalDiversity, want)
			}
		}
	}
}

func TestStyleMetricsEmpty(t *testing.T) {
	m := CalculateStyleMetrics(nil, nil, FrequencyTable{})
	zero := StyleMetrics{}
	if m != zero {
		t.Errorf("empty input produced %+v, want all zeros", m)
	}
}
