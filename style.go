package distant

import (
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"
)

// CalculateStyleMetrics derives the corpus-free statistics of one text from
// its surviving token sequence, sentence sequence and frequency table. It is
// a pure function: no randomness, no I/O, and every divide guards zero.
//
// TypeTokenRatio is reported identically to LexicalDiversity; the consumer
// labels its charts with both names.
func CalculateStyleMetrics(surviving []string, sents []Sentence, table FrequencyTable) StyleMetrics {
	wordCount := len(surviving)
	sentenceCount := len(sents)
	uniqueWords := len(table)

	metrics := StyleMetrics{
		WordCount:     wordCount,
		SentenceCount: sentenceCount,
		UniqueWords:   uniqueWords,
	}
	if wordCount == 0 {
		return metrics
	}

	if sentenceCount > 0 {
		metrics.AvgSentenceLength = float64(wordCount) / float64(sentenceCount)
	}

	lengths := make([]float64, wordCount)
	for i, tok := range surviving {
		lengths[i] = float64(utf8.RuneCountInString(tok))
	}
	metrics.AvgWordLength = stat.Mean(lengths, nil)

	diversity := float64(uniqueWords) / float64(wordCount)
	metrics.LexicalDiversity = diversity
	metrics.TypeTokenRatio = diversity
	return metrics
}
