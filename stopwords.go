package distant

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bbalet/stopwords"
)

// A StopwordSet is the read-only set of words excluded from frequency tables.
// Build it once at startup and pass it in explicitly.
type StopwordSet struct {
	words map[string]struct{}
}

// NewStopwordSet builds a set from explicit words.
func NewStopwordSet(words []string) *StopwordSet {
	set := &StopwordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set.words[w] = struct{}{}
		}
	}
	return set
}

// Contains reports whether word is a stopword. The word must already be
// lowercased, which the tokenizer guarantees.
func (s *StopwordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Append adds words to the set.
func (s *StopwordSet) Append(words []string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s.words[w] = struct{}{}
		}
	}
}

// Len returns the set size.
func (s *StopwordSet) Len() int {
	return len(s.words)
}

var (
	defaultStopwordsOnce sync.Once
	defaultStopwords     []string
)

// DefaultStopwords returns the built-in stopword list: the English base set
// probed out of the stopwords library, extended with narrative vocabulary
// that dominates nineteenth-century prose without carrying meaning.
func DefaultStopwords() []string {
	defaultStopwordsOnce.Do(func() {
		base := probeStopwords("en", stopwordCandidates)
		defaultStopwords = append(base, literaryStopwords...)
	})
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}

// probeStopwords tests each candidate against the stopwords library. The
// library doesn't export its word lists, so membership is detected by whether
// CleanString filters the word out.
func probeStopwords(langCode string, candidates []string) []string {
	var found []string
	for _, word := range candidates {
		cleaned := strings.TrimSpace(stopwords.CleanString(word, langCode, false))
		if cleaned == "" || cleaned != word {
			found = append(found, word)
		}
	}
	return found
}

// stopwordCandidates is the probe list for the English base set.
var stopwordCandidates = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "cannot",
	"could", "did", "do", "does", "doing", "down", "during", "each", "few",
	"for", "from", "further", "had", "has", "have", "having", "he", "her",
	"here", "hers", "herself", "him", "himself", "his", "how", "i", "if",
	"in", "into", "is", "it", "its", "itself", "me", "more", "most", "my",
	"myself", "no", "nor", "not", "of", "off", "on", "once", "only", "or",
	"other", "ought", "our", "ours", "ourselves", "out", "over", "own",
	"same", "she", "should", "so", "some", "such", "than", "that", "the",
	"their", "theirs", "them", "themselves", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "we", "were", "what", "when", "where", "which", "while",
	"who", "whom", "why", "with", "would", "you", "your", "yours",
	"yourself", "yourselves",
}

// literaryStopwords extends the base set for long-form fiction: narrative
// filler, honorifics, time words and chapter markers.
var literaryStopwords = []string{
	// Common narrative words.
	"said", "upon", "would", "could", "one", "two", "three",
	"may", "might", "must", "shall", "will", "though", "yet",
	"thus", "indeed", "therefore", "however", "moreover",
	// Titles and honorifics.
	"mr", "mrs", "miss", "sir", "lord", "lady", "master",
	// Common verbs that don't add meaning.
	"came", "went", "saw", "looked", "seemed", "made", "took",
	"gave", "found", "knew", "thought", "felt", "began",
	// Time words.
	"day", "time", "moment", "hour", "night", "morning",
	// Frequent qualifiers.
	"little", "great", "old", "new", "long", "good", "first",
	"last", "much", "many", "own", "ever", "never", "still",
	"even", "well", "back", "thing", "things", "way",
	// Chapter markers.
	"chapter", "volume", "part", "book", "section",
}

// LoadStopwordsFile reads a newline-delimited word list. Blank lines and
// lines starting with # are skipped.
func LoadStopwordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords file: %w", err)
	}
	return words, nil
}
