package distant

import (
	"math"
	"testing"
)

func newTestScorer() *SentimentScorer {
	return NewSentimentScorer(NewSentimentLexicon())
}

func TestScoreTextPolarity(t *testing.T) {
	tests := []struct {
		text string
		sign float64
		desc string
	}{
		{"I love this story.", 1, "strong positive"},
		{"This is terrible.", -1, "strong negative"},
		{"I do not love this.", -1, "negation of positive"},
		{"It was not bad.", 1, "negation of negative"},
		{"I don't love this.", -1, "contraction negation"},
		{"She was never happy.", -1, "never negation"},
		{"The carriage stopped at the gate.", 0, "no lexicon matches"},
		{"", 0, "empty text"},
	}

	scorer := newTestScorer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			score := scorer.ScoreText(tt.text)
			switch {
			case tt.sign > 0 && score.Compound <= 0:
				t.Errorf("compound = %.3f, want > 0", score.Compound)
			case tt.sign < 0 && score.Compound >= 0:
				t.Errorf("compound = %.3f, want < 0", score.Compound)
			case tt.sign == 0 && score.Compound != 0:
				t.Errorf("compound = %.3f, want 0", score.Compound)
			}
		})
	}
}

func TestScoreNormalization(t *testing.T) {
	texts := []string{
		"I love this and I hate this.",
		"A truly wonderful, happy day.",
		"Grief and sorrow and despair.",
		"Nothing of note happened on the road.",
		"She was not unhappy, though hardly glad.",
		"",
	}

	scorer := newTestScorer()
	for _, text := range texts {
		score := scorer.ScoreText(text)
		sum := score.Positive + score.Negative + score.Neutral
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("text %q: pos+neg+neu = %.9f, want 1", text, sum)
		}
		if score.Compound < -1 || score.Compound > 1 {
			t.Errorf("text %q: compound %.3f out of [-1, 1]", text, score.Compound)
		}
		if score.Positive < 0 || score.Negative < 0 || score.Neutral < 0 {
			t.Errorf("text %q: negative proportion in %+v", text, score)
		}
	}
}

func TestBoosterScaling(t *testing.T) {
	scorer := newTestScorer()

	base := scorer.ScoreText("This is good.")
	boosted := scorer.ScoreText("This is very good.")
	diminished := scorer.ScoreText("This is slightly good.")

	if math.Abs(boosted.Compound) <= math.Abs(base.Compound) {
		t.Errorf("intensifier failed: base=%.3f boosted=%.3f", base.Compound, boosted.Compound)
	}
	if math.Abs(diminished.Compound) >= math.Abs(base.Compound) {
		t.Errorf("diminisher failed: base=%.3f diminished=%.3f", base.Compound, diminished.Compound)
	}
}

func TestNeutralDefault(t *testing.T) {
	scorer := newTestScorer()
	score := scorer.ScoreText("")
	want := NeutralScore()
	if score != want {
		t.Errorf("empty text scored %+v, want %+v", score, want)
	}
}

func TestOverallAndAverageDiverge(t *testing.T) {
	doc, err := NewDocument("I love love love this place. It was terrible beyond words.")
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}

	scorer := newTestScorer()
	summary := scorer.Summarize(doc)

	if summary.SentenceCount != 2 {
		t.Fatalf("sentence count = %d, want 2", summary.SentenceCount)
	}
	// Overall re-scores the whole body as one unit; average is the mean of
	// per-sentence scores. The normalizer makes them diverge; both are kept.
	if math.Abs(summary.Overall.Compound-summary.Average.Compound) < 1e-6 {
		t.Errorf("overall (%.4f) and average (%.4f) compounds should diverge",
			summary.Overall.Compound, summary.Average.Compound)
	}
}

func TestMeanScore(t *testing.T) {
	scores := []Score{
		{Positive: 0.4, Negative: 0.1, Neutral: 0.5, Compound: 0.6},
		{Positive: 0.2, Negative: 0.3, Neutral: 0.5, Compound: -0.2},
	}
	mean := MeanScore(scores)
	if math.Abs(mean.Compound-0.2) > 1e-9 {
		t.Errorf("mean compound = %.4f, want 0.2", mean.Compound)
	}
	if math.Abs(mean.Positive-0.3) > 1e-9 {
		t.Errorf("mean positive = %.4f, want 0.3", mean.Positive)
	}

	if MeanScore(nil) != NeutralScore() {
		t.Error("mean of no scores should be the neutral default")
	}
}

func TestEmotionalArcSegmentCount(t *testing.T) {
	tests := []struct {
		sentences int
		segments  int
		desc      string
	}{
		{30, 10, "plenty of sentences"},
		{3, 10, "fewer sentences than segments"},
		{0, 10, "no sentences at all"},
		{7, 3, "remainder goes to the final segment"},
	}

	scorer := newTestScorer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			sents := make([]Sentence, tt.sentences)
			for i := range sents {
				sents[i] = Sentence{Text: "A happy day.", Index: i}
			}

			arc := scorer.EmotionalArc(sents, tt.segments)
			if len(arc.Segments) != tt.segments {
				t.Fatalf("got %d segments, want exactly %d", len(arc.Segments), tt.segments)
			}
			if arc.TotalSegments != tt.segments {
				t.Errorf("TotalSegments = %d, want %d", arc.TotalSegments, tt.segments)
			}

			covered := 0
			for i, seg := range arc.Segments {
				if seg.Segment != i+1 {
					t.Errorf("segment %d numbered %d", i, seg.Segment)
				}
				if seg.SentenceCount == 0 && seg.Sentiment != NeutralScore() {
					t.Errorf("empty segment %d carries %+v, want neutral default", i+1, seg.Sentiment)
				}
				covered += seg.SentenceCount
			}
			if covered != tt.sentences {
				t.Errorf("segments cover %d sentences, want %d", covered, tt.sentences)
			}
		})
	}
}

func TestEmotionalArcLabels(t *testing.T) {
	scorer := newTestScorer()
	arc := scorer.EmotionalArc(make([]Sentence, 20), 10)

	if got := arc.Segments[0].Label; got != "0%–10%" {
		t.Errorf("first label = %q", got)
	}
	if got := arc.Segments[9].Label; got != "90%–100%" {
		t.Errorf("last label = %q", got)
	}
}

func TestExternalLexiconMerge(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/lexicon.json"
	data := `{"words": {"tolerable": 1.1, "love": 0.5}, "negators": ["nought"]}`
	if err := writeTestFile(t, path, data); err != nil {
		t.Fatal(err)
	}

	lex, err := NewSentimentLexiconWithExternal(path)
	if err != nil {
		t.Fatalf("NewSentimentLexiconWithExternal: %v", err)
	}

	if v, ok := lex.Valence("tolerable"); !ok || v != 1.1 {
		t.Errorf("tolerable = (%.1f, %v), want (1.1, true)", v, ok)
	}
	if v, _ := lex.Valence("love"); v != 0.5 {
		t.Errorf("external entry should override base: love = %.1f", v)
	}
	if !lex.IsNegator("nought") {
		t.Error("merged negator missing")
	}
}

func TestExternalLexiconMalformed(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/broken.json"
	if err := writeTestFile(t, path, "{not json"); err != nil {
		t.Fatal(err)
	}
	if _, err := NewSentimentLexiconWithExternal(path); err == nil {
		t.Error("malformed lexicon file should error")
	}
}
