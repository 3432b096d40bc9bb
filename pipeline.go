package distant

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// textState tracks one text's progress through the pipeline. Only FINALIZED
// texts appear in the output document.
type textState int

const (
	stateLoaded textState = iota
	stateNormalized
	stateTokenized
	stateScored
	stateMetricsComputed
	stateDistinctiveRanked
	stateFinalized
	stateFailed
)

func (s textState) String() string {
	switch s {
	case stateLoaded:
		return "LOADED"
	case stateNormalized:
		return "NORMALIZED"
	case stateTokenized:
		return "TOKENIZED"
	case stateScored:
		return "SCORED"
	case stateMetricsComputed:
		return "METRICS_COMPUTED"
	case stateDistinctiveRanked:
		return "DISTINCTIVE_RANKED"
	case stateFinalized:
		return "FINALIZED"
	default:
		return "FAILED"
	}
}

// A Failure records one text that did not reach FINALIZED. Failures never
// abort the run for other texts.
type Failure struct {
	Filename string
	Stage    string
	Err      error
}

// A RunSummary reports what a run produced.
type RunSummary struct {
	Analyzed int
	Failures []Failure
}

// A Pipeline runs the full analysis over a corpus: per-text stages on a
// bounded worker pool, then the corpus-wide distinctive-vocabulary pass once
// every frequency table exists.
type Pipeline struct {
	cfg        Config
	stops      *StopwordSet
	scorer     *SentimentScorer
	categories CategoryTable
	log        *Logger
}

// NewPipeline validates the configuration and resolves the fixed tables. Any
// error here is a ConfigError: it would corrupt every text, so the caller
// must abort before processing anything.
func NewPipeline(cfg Config, log *Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stops, err := cfg.BuildStopwords()
	if err != nil {
		return nil, err
	}
	categories, err := cfg.BuildCategories()
	if err != nil {
		return nil, err
	}
	lexicon, err := cfg.BuildLexicon()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = NewDiscardLogger()
	}
	return &Pipeline{
		cfg:        cfg,
		stops:      stops,
		scorer:     NewSentimentScorer(lexicon),
		categories: categories,
		log:        log,
	}, nil
}

// textJob carries one text's intermediate state between the per-text phase
// and the corpus barrier. Workers never share jobs, so no locking is needed
// beyond the barrier itself.
type textJob struct {
	source SourceText
	state  textState
	table  FrequencyTable
	result Result
	stage  string
	err    error
}

func (j *textJob) fail(stage string, err error) {
	j.state = stateFailed
	j.stage = stage
	j.err = err
}

// Run analyzes the corpus and returns the finalized results in input order.
// Per-text failures are isolated and reported in the summary. Cancelling the
// context stops scheduling new texts; texts already analyzed still pass
// through the distinctive-vocabulary phase and are emitted.
func (p *Pipeline) Run(ctx context.Context, sources []SourceText) ([]Result, RunSummary) {
	jobs := make([]*textJob, len(sources))
	for i, src := range sources {
		jobs[i] = &textJob{source: src, state: stateLoaded}
	}

	workers := p.cfg.Workers
	if workers > len(jobs) && len(jobs) > 0 {
		workers = len(jobs)
	}

	work := make(chan *textJob)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range work {
				p.analyzeText(job)
			}
		}()
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			p.log.Info("run cancelled, finishing texts already in flight")
			break
		}
		work <- job
	}
	close(work)
	wg.Wait() // corpus barrier: every table exists past this point

	for _, job := range jobs {
		if job.state == stateLoaded {
			job.fail("scheduling", ctx.Err())
		}
	}

	p.rankDistinctive(jobs)

	var results []Result
	summary := RunSummary{}
	for _, job := range jobs {
		if job.state == stateFailed {
			summary.Failures = append(summary.Failures, Failure{
				Filename: job.source.Filename,
				Stage:    job.stage,
				Err:      job.err,
			})
			p.log.Error("%s failed at %s: %v", job.source.Filename, job.stage, job.err)
			continue
		}
		job.state = stateFinalized
		results = append(results, job.result)
		summary.Analyzed++
	}
	return results, summary
}

// analyzeText runs the per-text stages. Everything here depends only on the
// one text, so texts process independently and concurrently.
func (p *Pipeline) analyzeText(job *textJob) {
	src := job.source

	body, found := StripBoilerplate(src.Content)
	if !found {
		p.log.Info("%s: no boilerplate markers found, text may include front/back matter", src.Filename)
	}
	body = CollapseWhitespace(body)
	if body == "" {
		job.fail("normalize", ErrEmptyText)
		return
	}
	job.state = stateNormalized

	doc, err := NewDocument(body,
		WithStopwords(p.stops),
		WithMinTokenLength(p.cfg.MinTokenLength))
	if err != nil {
		job.fail("tokenize", err)
		return
	}
	job.table = doc.FrequencyTable()
	job.state = stateTokenized

	sentiment := p.scorer.Summarize(doc)
	arc := p.scorer.EmotionalArc(doc.Sentences(), p.cfg.ArcSegments)
	job.state = stateScored

	style := CalculateStyleMetrics(doc.SurvivingTokens(), doc.Sentences(), job.table)
	thematic := MatchThematic(job.table, p.categories)
	job.state = stateMetricsComputed

	job.result = Result{
		Filename:        src.Filename,
		Title:           src.Title,
		Author:          src.Author,
		WordFrequencies: job.table.TopN(p.cfg.TopWords),
		Sentiment:       sentiment,
		Style:           style,
		RomanticVocab:   thematic,
		EmotionalArc:    arc,
		Distinctive:     []DistinctiveWord{},
	}
	p.log.Debug("%s: analyzed (%d sentences, %d surviving tokens)",
		src.Filename, style.SentenceCount, style.WordCount)
}

// rankDistinctive is the corpus-wide pass. Failed texts are excluded from
// the document counts; a corpus of fewer than two texts degenerates to
// all-zero scores, which is documented behavior rather than an error.
func (p *Pipeline) rankDistinctive(jobs []*textJob) {
	var analyzed []*textJob
	for _, job := range jobs {
		if job.state == stateMetricsComputed {
			analyzed = append(analyzed, job)
		}
	}
	if len(analyzed) == 0 {
		return
	}
	if len(analyzed) < 2 {
		p.log.Info("corpus has %d text(s): idf degenerates to zero and distinctive scores collapse", len(analyzed))
	}

	tables := make([]FrequencyTable, len(analyzed))
	for i, job := range analyzed {
		tables[i] = job.table
	}
	ranked := ExtractDistinctiveWords(tables, p.cfg.DistinctiveWords)
	for i, job := range analyzed {
		job.result.Distinctive = ranked[i]
		job.state = stateDistinctiveRanked
	}
}

// WriteResults serializes the aggregate document. The write goes through a
// temporary file and a rename so the consumer never observes a partially
// written document.
func WriteResults(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".distant-*.json")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}
