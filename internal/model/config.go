package model

import (
	"fmt"
	"math"
	"time"
)

// WeightTable maps each signal to its share of the overall score.
// The weights must be non-negative and sum to 1.0 over the full signal set;
// when signals are missing at analysis time the aggregator renormalizes so
// the relative ratios among present signals are preserved.
type WeightTable map[SignalName]float64

// DefaultWeights returns the documented default weighting.
func DefaultWeights() WeightTable {
	return WeightTable{
		SignalSource:         0.30,
		SignalContent:        0.25,
		SignalCrossReference: 0.20,
		SignalBias:           0.15,
		SignalSentiment:      0.10,
	}
}

// Weight returns the configured weight for a signal (0 if unnamed).
func (w WeightTable) Weight(name SignalName) float64 {
	return w[name]
}

// Validate checks the weight table invariants.
func (w WeightTable) Validate() error {
	known := make(map[SignalName]bool, len(AllSignals))
	for _, name := range AllSignals {
		known[name] = true
	}

	sum := 0.0
	for name, weight := range w {
		if !known[name] {
			return fmt.Errorf("%w: %q", ErrUnknownSignal, name)
		}
		if weight < 0 {
			return fmt.Errorf("%w: %s = %v", ErrNegativeWeight, name, weight)
		}
		sum += weight
	}

	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("%w: got %v", ErrWeightSum, sum)
	}

	return nil
}

// ThresholdSet holds the ordered credibility band boundaries.
// A score equal to a boundary belongs to the higher band.
type ThresholdSet struct {
	High   float64 `yaml:"high" mapstructure:"high"`
	Medium float64 `yaml:"medium" mapstructure:"medium"`
	Low    float64 `yaml:"low" mapstructure:"low"`
}

// DefaultThresholds returns the documented default boundaries.
func DefaultThresholds() ThresholdSet {
	return ThresholdSet{High: 0.8, Medium: 0.5, Low: 0.3}
}

// Validate checks the threshold ordering invariant.
func (t ThresholdSet) Validate() error {
	for _, v := range []float64{t.High, t.Medium, t.Low} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: got {%v, %v, %v}", ErrThresholdRange, t.High, t.Medium, t.Low)
		}
	}
	if !(t.High > t.Medium && t.Medium > t.Low) {
		return fmt.Errorf("%w: got {%v, %v, %v}", ErrThresholdOrder, t.High, t.Medium, t.Low)
	}
	return nil
}

// HTTPConfig controls article fetching.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls article and API-response caching.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// SourcesConfig carries the reliable/unreliable source lists consumed by the
// source extractor. A domain matching neither list rates "unknown".
type SourcesConfig struct {
	Reliable   []string `yaml:"reliable" mapstructure:"reliable"`
	Mixed      []string `yaml:"mixed" mapstructure:"mixed"`
	Unreliable []string `yaml:"unreliable" mapstructure:"unreliable"`
}

// SentimentConfig tunes the sentiment normalizer.
type SentimentConfig struct {
	// PolarityThreshold is the |polarity| above which emotional language
	// starts reducing the objectivity score.
	PolarityThreshold float64 `yaml:"polarity_threshold" mapstructure:"polarity_threshold"`
}

// CrossRefConfig controls the cross-reference search collaborator.
type CrossRefConfig struct {
	APIKey            string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL           string        `yaml:"base_url" mapstructure:"base_url"`
	PageSize          int           `yaml:"page_size" mapstructure:"page_size"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
}

// LLMConfig controls the optional AI commentary collaborator.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ServerConfig controls the web API.
type ServerConfig struct {
	Addr   string `yaml:"addr" mapstructure:"addr"`
	DBPath string `yaml:"db_path" mapstructure:"db_path"`
}

// ExportConfig controls the JSONL/CSV analysis log.
type ExportConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir     string `yaml:"dir" mapstructure:"dir"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// Config is the full application configuration, loaded once at startup,
// validated once, and read-only at analysis time.
type Config struct {
	Weights     WeightTable       `yaml:"weights" mapstructure:"weights"`
	Thresholds  ThresholdSet      `yaml:"thresholds" mapstructure:"thresholds"`
	Sources     SourcesConfig     `yaml:"sources" mapstructure:"sources"`
	Sentiment   SentimentConfig   `yaml:"sentiment" mapstructure:"sentiment"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	CrossRef    CrossRefConfig    `yaml:"cross_reference" mapstructure:"cross_reference"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Export      ExportConfig      `yaml:"export" mapstructure:"export"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// DefaultConfig returns the built-in defaults. Source lists and thresholds
// match the shipped configuration; weights follow the documented table.
func DefaultConfig() *Config {
	return &Config{
		Weights:    DefaultWeights(),
		Thresholds: DefaultThresholds(),
		Sources: SourcesConfig{
			Reliable: []string{
				"reuters.com", "ap.org", "apnews.com", "bbc.com", "npr.org",
				"pbs.org", "wsj.com", "nytimes.com", "washingtonpost.com",
				"theguardian.com", "cnn.com", "abcnews.go.com", "cbsnews.com",
				"nbcnews.com",
			},
			Mixed: []string{
				"nypost.com", "dailymail.co.uk", "foxnews.com", "msnbc.com",
			},
			Unreliable: []string{
				"infowars.com", "breitbart.com", "theonion.com", "satirewire.com",
				"clickhole.com", "reductress.com",
			},
		},
		Sentiment: SentimentConfig{
			PolarityThreshold: 0.5,
		},
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "FakeNewsDetector/1.0 (+https://github.com/Tejass17x/fake-news-detector)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.fakenews/cache by the CLI
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   6 * time.Hour,
		},
		CrossRef: CrossRefConfig{
			BaseURL:           "https://newsapi.org/v2",
			PageSize:          10,
			Timeout:           10 * time.Second,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		LLM: LLMConfig{
			Model:     "gpt-4o-mini",
			MaxTokens: 400,
		},
		Server: ServerConfig{
			Addr:   ":8090",
			DBPath: "fakenews.db",
		},
		Export: ExportConfig{
			Enabled: true,
			Dir:     "logs",
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
	}
}

// Validate checks every load-time invariant. A failure here is fatal: the
// process must not start with a corrupt weight table or threshold set.
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("invalid http timeout: %v", c.HTTP.Timeout)
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body bytes: %d", c.HTTP.MaxBodyBytes)
	}
	if c.Sentiment.PolarityThreshold < 0 || c.Sentiment.PolarityThreshold > 1 {
		return fmt.Errorf("invalid sentiment polarity threshold: %v", c.Sentiment.PolarityThreshold)
	}
	if c.Concurrency.Workers <= 0 {
		return fmt.Errorf("invalid worker count: %d", c.Concurrency.Workers)
	}
	return nil
}
