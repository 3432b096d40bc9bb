package distant

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// A SentimentScorer scores spans of text against a valence lexicon plus a
// small set of rule adjustments: a negator within the window before a word
// flips and dampens its valence, and boosters scale its magnitude. The
// scorer is stateless after construction and safe for concurrent use.
type SentimentScorer struct {
	lexicon        *SentimentLexicon
	tokenizer      Tokenizer
	negationWindow int
}

const (
	defaultNegationWindow = 3

	// negationDamp reverses and weakens a negated valence.
	negationDamp = -0.74

	// normAlpha is the normalization constant for the compound score:
	// compound = sum / sqrt(sum^2 + normAlpha).
	normAlpha = 15.0
)

// NewSentimentScorer builds a scorer over the given lexicon.
func NewSentimentScorer(lexicon *SentimentLexicon) *SentimentScorer {
	return &SentimentScorer{
		lexicon:        lexicon,
		tokenizer:      NewWordTokenizer(),
		negationWindow: defaultNegationWindow,
	}
}

// ScoreText scores one span of text. Positive, negative and neutral are
// proportions of the matched mass and sum to 1; a span with no tokens at all
// scores the neutral default.
func (s *SentimentScorer) ScoreText(text string) Score {
	tokens := s.tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return NeutralScore()
	}

	var sum, posSum, negSum float64
	neutralCount := 0
	for i, tok := range tokens {
		v, known := s.lexicon.Valence(tok)
		if !known || v == 0 {
			neutralCount++
			continue
		}
		v = s.applyBoosters(v, tokens, i)
		if s.negated(tokens, i) {
			v *= negationDamp
		}

		// Each matched word contributes its valence plus one unit of mass,
		// so a single strong word still leaves room for neutral context.
		if v > 0 {
			posSum += v + 1
		} else {
			negSum += v - 1
		}
		sum += v
	}

	total := posSum + math.Abs(negSum) + float64(neutralCount)
	if total == 0 {
		return NeutralScore()
	}

	compound := sum / math.Sqrt(sum*sum+normAlpha)
	compound = math.Max(-1, math.Min(1, compound))

	return Score{
		Positive: posSum / total,
		Negative: math.Abs(negSum) / total,
		Neutral:  float64(neutralCount) / total,
		Compound: compound,
	}
}

// applyBoosters scales a valence by any boosters in the window before the
// word, decayed by distance.
func (s *SentimentScorer) applyBoosters(valence float64, tokens []string, position int) float64 {
	start := position - s.negationWindow
	if start < 0 {
		start = 0
	}
	for i := start; i < position; i++ {
		boost := s.lexicon.BoosterStrength(tokens[i])
		if boost == 0 {
			continue
		}
		switch position - i {
		case 2:
			boost *= 0.95
		case 3:
			boost *= 0.9
		}
		if valence < 0 {
			boost = -boost
		}
		valence += boost
	}
	return valence
}

// negated reports whether a negator appears in the window before the word.
func (s *SentimentScorer) negated(tokens []string, position int) bool {
	start := position - s.negationWindow
	if start < 0 {
		start = 0
	}
	for i := start; i < position; i++ {
		if s.lexicon.IsNegator(tokens[i]) {
			return true
		}
	}
	return false
}

// ScoreSentences scores each sentence independently, preserving order.
func (s *SentimentScorer) ScoreSentences(sents []Sentence) []Score {
	scores := make([]Score, len(sents))
	for i, sent := range sents {
		scores[i] = s.ScoreText(sent.Text)
	}
	return scores
}

// MeanScore is the arithmetic mean of the given scores, component-wise. An
// empty input yields the neutral default.
func MeanScore(scores []Score) Score {
	if len(scores) == 0 {
		return NeutralScore()
	}
	pos := make([]float64, len(scores))
	neg := make([]float64, len(scores))
	neu := make([]float64, len(scores))
	cmp := make([]float64, len(scores))
	for i, sc := range scores {
		pos[i] = sc.Positive
		neg[i] = sc.Negative
		neu[i] = sc.Neutral
		cmp[i] = sc.Compound
	}
	return Score{
		Positive: stat.Mean(pos, nil),
		Negative: stat.Mean(neg, nil),
		Neutral:  stat.Mean(neu, nil),
		Compound: stat.Mean(cmp, nil),
	}
}

// Summarize reports document sentiment both ways: the whole body scored as
// one unit and the mean of per-sentence scores. The two compounds diverge
// because the normalizer is applied at different granularities; both are
// preserved as distinct fields.
func (s *SentimentScorer) Summarize(doc *Document) SentimentSummary {
	sents := doc.Sentences()
	return SentimentSummary{
		Overall:       s.ScoreText(doc.Text),
		Average:       MeanScore(s.ScoreSentences(sents)),
		SentenceCount: len(sents),
	}
}

// EmotionalArc partitions the sentence sequence into exactly segmentCount
// contiguous equal-size groups, the remainder going to the final group, and
// reports each group's mean sentiment. Documents with fewer sentences than
// segments still produce the full count; empty groups carry the neutral
// default.
func (s *SentimentScorer) EmotionalArc(sents []Sentence, segmentCount int) EmotionalArc {
	if segmentCount < 1 {
		segmentCount = 1
	}
	scores := s.ScoreSentences(sents)
	size := len(sents) / segmentCount

	segments := make([]ArcSegment, 0, segmentCount)
	for i := 0; i < segmentCount; i++ {
		start := i * size
		end := start + size
		if i == segmentCount-1 {
			end = len(sents)
		}

		group := scores[start:end]
		segment := ArcSegment{
			Segment:       i + 1,
			Label:         fmt.Sprintf("%d%%–%d%%", i*100/segmentCount, (i+1)*100/segmentCount),
			Sentiment:     NeutralScore(),
			SentenceCount: len(group),
		}
		if len(group) > 0 {
			segment.Sentiment = MeanScore(group)
		}
		segments = append(segments, segment)
	}

	return EmotionalArc{Segments: segments, TotalSegments: segmentCount}
}
