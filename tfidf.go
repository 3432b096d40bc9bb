package distant

import (
	"math"
	"sort"
)

// ExtractDistinctiveWords ranks each text's words by tf-idf salience against
// the whole corpus. It runs only after every text's frequency table exists:
// idf needs the global document counts.
//
// score(word, text) = (count / tokens in text) * ln(N / texts containing word)
//
// Words present in every text get idf = ln(1) = 0 and are suppressed. A
// corpus of one text degenerates the same way — every score is exactly zero
// and the ranking falls back to the tie-breaks. That is documented behavior,
// not an error.
//
// Results are deterministic: ties break by descending raw count, then
// ascending word.
func ExtractDistinctiveWords(tables []FrequencyTable, topK int) [][]DistinctiveWord {
	out := make([][]DistinctiveWord, len(tables))
	if len(tables) == 0 || topK < 1 {
		return out
	}

	docFreq := make(map[string]int)
	for _, table := range tables {
		for word := range table {
			docFreq[word]++
		}
	}
	corpusSize := float64(len(tables))

	for i, table := range tables {
		total := table.Total()
		if total == 0 {
			out[i] = []DistinctiveWord{}
			continue
		}

		type scored struct {
			word  string
			count int
			score float64
		}
		words := make([]scored, 0, len(table))
		for word, count := range table {
			tf := float64(count) / float64(total)
			idf := math.Log(corpusSize / float64(docFreq[word]))
			words = append(words, scored{word: word, count: count, score: tf * idf})
		}

		sort.Slice(words, func(a, b int) bool {
			if words[a].score != words[b].score {
				return words[a].score > words[b].score
			}
			if words[a].count != words[b].count {
				return words[a].count > words[b].count
			}
			return words[a].word < words[b].word
		})

		k := topK
		if k > len(words) {
			k = len(words)
		}
		ranked := make([]DistinctiveWord, k)
		for j := 0; j < k; j++ {
			ranked[j] = DistinctiveWord{Word: words[j].word, Score: words[j].score}
		}
		out[i] = ranked
	}
	return out
}
