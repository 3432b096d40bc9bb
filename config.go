package distant

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// A ConfigError marks configuration that would corrupt every result. It is
// fatal: the run must abort before any text is processed.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Reason
}

// Config holds the recognized pipeline options. Load it once at startup;
// everything downstream receives it explicitly.
type Config struct {
	Workers          int
	MinTokenLength   int
	ArcSegments      int
	DistinctiveWords int
	TopWords         int
	StopwordsFile    string
	StopwordsMode    string // "append" extends the default set, "replace" discards it
	CategoriesFile   string
	LexiconFile      string
	OutputPath       string
	LogLevel         string
}

// LoadConfig reads configuration from the environment, consulting a .env
// file when present.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Workers:          getEnvInt("DISTANT_WORKERS", runtime.NumCPU()),
		MinTokenLength:   getEnvInt("DISTANT_MIN_TOKEN_LEN", 2),
		ArcSegments:      getEnvInt("DISTANT_ARC_SEGMENTS", 10),
		DistinctiveWords: getEnvInt("DISTANT_DISTINCTIVE_WORDS", 15),
		TopWords:         getEnvInt("DISTANT_TOP_WORDS", 100),
		StopwordsFile:    getEnv("DISTANT_STOPWORDS_FILE", ""),
		StopwordsMode:    getEnv("DISTANT_STOPWORDS_MODE", "append"),
		CategoriesFile:   getEnv("DISTANT_CATEGORIES_FILE", ""),
		LexiconFile:      getEnv("DISTANT_LEXICON_FILE", ""),
		OutputPath:       getEnv("DISTANT_OUTPUT", "analysis_results.json"),
		LogLevel:         getEnv("DISTANT_LOG_LEVEL", "info"),
	}
}

// Validate rejects configuration that would silently corrupt results.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return &ConfigError{Reason: "DISTANT_WORKERS must be at least 1"}
	}
	if c.MinTokenLength < 1 {
		return &ConfigError{Reason: "DISTANT_MIN_TOKEN_LEN must be at least 1"}
	}
	if c.ArcSegments < 1 {
		return &ConfigError{Reason: "DISTANT_ARC_SEGMENTS must be at least 1"}
	}
	if c.DistinctiveWords < 1 {
		return &ConfigError{Reason: "DISTANT_DISTINCTIVE_WORDS must be at least 1"}
	}
	if c.TopWords < 1 {
		return &ConfigError{Reason: "DISTANT_TOP_WORDS must be at least 1"}
	}
	if c.StopwordsMode != "append" && c.StopwordsMode != "replace" {
		return &ConfigError{Reason: "DISTANT_STOPWORDS_MODE must be append or replace"}
	}
	return nil
}

// BuildStopwords resolves the effective stopword set: the built-in list,
// optionally extended or replaced by an override file.
func (c Config) BuildStopwords() (*StopwordSet, error) {
	if c.StopwordsFile == "" {
		return NewStopwordSet(DefaultStopwords()), nil
	}

	words, err := LoadStopwordsFile(c.StopwordsFile)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	if c.StopwordsMode == "replace" {
		set := NewStopwordSet(words)
		if set.Len() == 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("stopword file %s replaced the set with nothing", c.StopwordsFile)}
		}
		return set, nil
	}

	set := NewStopwordSet(DefaultStopwords())
	set.Append(words)
	return set, nil
}

// BuildCategories resolves the thematic category table.
func (c Config) BuildCategories() (CategoryTable, error) {
	if c.CategoriesFile == "" {
		return DefaultCategoryTable(), nil
	}
	table, err := LoadCategoryTable(c.CategoriesFile)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	return table, nil
}

// BuildLexicon resolves the sentiment lexicon, merging an external file when
// configured.
func (c Config) BuildLexicon() (*SentimentLexicon, error) {
	lex, err := NewSentimentLexiconWithExternal(c.LexiconFile)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	return lex, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
