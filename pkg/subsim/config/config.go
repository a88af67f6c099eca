package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/subsim/pkg/subsim/internalerr"
)

// Defaults for the recognized option surface.
const (
	DefaultMinLength   = 50000
	DefaultNWords      = 10
	DefaultNSubreddits = 10
	DefaultMinDF       = 1.0
	DefaultVocabSize   = 20000
	DefaultPattern     = `\W+`
	DefaultKeyField    = "subreddit"
	DefaultTextField   = "body"
)

// Params holds the full pipeline configuration.
//
// MinDF follows the CountVectorizer convention: values >= 1.0 are an
// absolute document count, values in (0, 1) are a fraction of the total
// document count.
type Params struct {
	MinLength   int     `yaml:"minlength"`
	NWords      int     `yaml:"nwords"`
	NSubreddits int     `yaml:"nsubreddits"`
	MinDF       float64 `yaml:"mindf"`
	VocabSize   int     `yaml:"vocabsize"`

	// Pattern is the token-boundary regular expression.
	Pattern string `yaml:"pattern"`

	// KeyField and TextField name the raw input fields holding the group
	// key and the comment text.
	KeyField  string `yaml:"keyfield"`
	TextField string `yaml:"textfield"`
}

// Default returns a Params with all defaults applied.
func Default() Params {
	return Params{
		MinLength:   DefaultMinLength,
		NWords:      DefaultNWords,
		NSubreddits: DefaultNSubreddits,
		MinDF:       DefaultMinDF,
		VocabSize:   DefaultVocabSize,
		Pattern:     DefaultPattern,
		KeyField:    DefaultKeyField,
		TextField:   DefaultTextField,
	}
}

// Load reads Params from a YAML file, applying defaults for absent keys.
func Load(path string) (Params, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse config %s: %w", path, err)
	}
	return p, nil
}

// Validate fails fast on invalid option values, before any data pass.
func (p Params) Validate() error {
	if p.MinLength < 0 {
		return fmt.Errorf("%w: minlength must be >= 0, got %d", internalerr.ErrInvalidConfig, p.MinLength)
	}
	if p.NWords <= 0 {
		return fmt.Errorf("%w: nwords must be > 0, got %d", internalerr.ErrInvalidConfig, p.NWords)
	}
	if p.NSubreddits <= 0 {
		return fmt.Errorf("%w: nsubreddits must be > 0, got %d", internalerr.ErrInvalidConfig, p.NSubreddits)
	}
	if p.MinDF <= 0 {
		return fmt.Errorf("%w: mindf must be > 0, got %g", internalerr.ErrInvalidConfig, p.MinDF)
	}
	if p.VocabSize <= 0 {
		return fmt.Errorf("%w: vocabsize must be > 0, got %d", internalerr.ErrInvalidConfig, p.VocabSize)
	}
	if p.Pattern == "" {
		return fmt.Errorf("%w: pattern must not be empty", internalerr.ErrInvalidConfig)
	}
	if p.KeyField == "" {
		return fmt.Errorf("%w: keyfield must not be empty", internalerr.ErrInvalidConfig)
	}
	if p.TextField == "" {
		return fmt.Errorf("%w: textfield must not be empty", internalerr.ErrInvalidConfig)
	}
	return nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads extra stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
