package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Discovery DiscoveryConfig `yaml:"discovery" mapstructure:"discovery"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Contacts  ContactsConfig  `yaml:"contacts" mapstructure:"contacts"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Results   ResultsConfig   `yaml:"results" mapstructure:"results"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DiscoveryConfig controls the discovery pipeline.
type DiscoveryConfig struct {
	// MinCandidates is the floor below which synthetic generation kicks in.
	MinCandidates int `yaml:"min_candidates" mapstructure:"min_candidates"`
	// TargetCandidates short-circuits fetching once this many raw candidates
	// survive filtering.
	TargetCandidates int `yaml:"target_candidates" mapstructure:"target_candidates"`
	// MaxQueries bounds the query plan.
	MaxQueries int `yaml:"max_queries" mapstructure:"max_queries"`
	// MaxIndustries bounds how many target industries are searched.
	MaxIndustries int `yaml:"max_industries" mapstructure:"max_industries"`
	// RequestTimeoutSecs is the hard per-request deadline. On expiry the
	// engine returns partial results instead of hanging.
	RequestTimeoutSecs int `yaml:"request_timeout_secs" mapstructure:"request_timeout_secs"`
	// LexiconPath optionally points at a YAML file overriding the built-in
	// keyword and denylist lexicons.
	LexiconPath string `yaml:"lexicon_path" mapstructure:"lexicon_path"`
}

// RequestTimeout returns the per-request deadline as a duration.
func (c DiscoveryConfig) RequestTimeout() time.Duration {
	secs := c.RequestTimeoutSecs
	if secs <= 0 {
		secs = 90
	}
	return time.Duration(secs) * time.Second
}

// SearchConfig controls the multi-engine fetch client.
type SearchConfig struct {
	Engines        []string `yaml:"engines" mapstructure:"engines"`
	Workers        int      `yaml:"workers" mapstructure:"workers"`
	MaxAttempts    int      `yaml:"max_attempts" mapstructure:"max_attempts"`
	EngineRPS      float64  `yaml:"engine_rps" mapstructure:"engine_rps"`
	TimeoutSecs    int      `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	DirectorySites []string `yaml:"directory_sites" mapstructure:"directory_sites"`
}

// ContactsConfig controls the contact resolver.
type ContactsConfig struct {
	MaxContacts     int `yaml:"max_contacts" mapstructure:"max_contacts"`
	SiteTimeoutSecs int `yaml:"site_timeout_secs" mapstructure:"site_timeout_secs"`
}

// AnthropicConfig holds Anthropic API settings. An empty key disables the
// LLM-assisted paths; the engine then runs purely on heuristics.
type AnthropicConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	Model       string `yaml:"model" mapstructure:"model"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	BatchSize   int    `yaml:"batch_size" mapstructure:"batch_size"`
}

// ResultsConfig controls the pagination result store.
type ResultsConfig struct {
	TTLMins       int `yaml:"ttl_mins" mapstructure:"ttl_mins"`
	SweepSecs     int `yaml:"sweep_secs" mapstructure:"sweep_secs"`
	DefaultPageSz int `yaml:"default_page_size" mapstructure:"default_page_size"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PROSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("discovery.min_candidates", 5)
	v.SetDefault("discovery.target_candidates", 15)
	v.SetDefault("discovery.max_queries", 8)
	v.SetDefault("discovery.max_industries", 2)
	v.SetDefault("discovery.request_timeout_secs", 90)
	v.SetDefault("search.engines", []string{"duckduckgo", "bing", "startpage"})
	v.SetDefault("search.workers", 6)
	v.SetDefault("search.max_attempts", 5)
	v.SetDefault("search.engine_rps", 1.0)
	v.SetDefault("search.timeout_secs", 15)
	v.SetDefault("search.directory_sites", []string{"clutch.co", "g2.com", "crunchbase.com"})
	v.SetDefault("contacts.max_contacts", 3)
	v.SetDefault("contacts.site_timeout_secs", 10)
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.timeout_secs", 15)
	v.SetDefault("anthropic.batch_size", 12)
	v.SetDefault("results.ttl_mins", 30)
	v.SetDefault("results.sweep_secs", 60)
	v.SetDefault("results.default_page_size", 10)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger builds the global zap logger from LogConfig.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
