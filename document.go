package distant

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A DocOpt changes the document creation process.
type DocOpt func(*docOpts)

type docOpts struct {
	tokenizer Tokenizer
	stops     *StopwordSet
	minLen    int
}

// UsingTokenizer specifies the word tokenizer to use.
func UsingTokenizer(t Tokenizer) DocOpt {
	return func(o *docOpts) {
		o.tokenizer = t
	}
}

// WithStopwords specifies the stopword set for the frequency table.
func WithStopwords(s *StopwordSet) DocOpt {
	return func(o *docOpts) {
		o.stops = s
	}
}

// WithMinTokenLength sets the minimum surviving token length.
func WithMinTokenLength(n int) DocOpt {
	return func(o *docOpts) {
		o.minLen = n
	}
}

// A Document is one parsed body of text: its ordered sentences, its word
// tokens, and the stopword-filtered frequency table built from them. A
// document is immutable once created.
type Document struct {
	Text string

	sentences []Sentence
	tokens    []string
	surviving []string
	table     FrequencyTable
}

// Sentences returns the document's ordered sentence sequence.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

// Tokens returns every word token, before stopword filtering.
func (doc *Document) Tokens() []string {
	return doc.tokens
}

// SurvivingTokens returns the ordered tokens behind the frequency table.
func (doc *Document) SurvivingTokens() []string {
	return doc.surviving
}

// FrequencyTable returns the document's bag of words.
func (doc *Document) FrequencyTable() FrequencyTable {
	return doc.table
}

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
	segmenterErr  error
)

// sentenceSegmenter lazily builds the shared Punkt segmenter. The trained
// English data is embedded in the sentences package, so this fails only if
// that data is corrupt.
func sentenceSegmenter() (*sentences.DefaultSentenceTokenizer, error) {
	segmenterOnce.Do(func() {
		segmenter, segmenterErr = english.NewSentenceTokenizer(nil)
	})
	return segmenter, segmenterErr
}

var defaultDocOpts = docOpts{minLen: 2}

// NewDocument segments and tokenizes text according to the given options.
// Identical input and options always yield an identical document.
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	base := defaultDocOpts
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.tokenizer == nil {
		base.tokenizer = NewWordTokenizer()
	}
	if base.stops == nil {
		base.stops = NewStopwordSet(DefaultStopwords())
	}

	seg, err := sentenceSegmenter()
	if err != nil {
		return nil, err
	}

	doc := &Document{Text: text}
	for _, s := range seg.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		doc.sentences = append(doc.sentences, Sentence{Text: trimmed, Index: len(doc.sentences)})
	}

	doc.tokens = base.tokenizer.Tokenize(text)
	doc.surviving = SurvivingTokens(doc.tokens, base.stops, base.minLen)
	doc.table = BuildFrequencyTable(doc.tokens, base.stops, base.minLen)
	return doc, nil
}
