package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Auth struct {
		Secret string `yaml:"secret"`
	} `yaml:"auth"`
	OpenAI struct {
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
		Timeout string `yaml:"timeout"`
	} `yaml:"openai"`
	Assessment struct {
		TotalQuestions    int    `yaml:"total_questions"`
		QuestionsPerBatch int    `yaml:"questions_per_batch"`
		CatalogTTL        string `yaml:"catalog_ttl"`
	} `yaml:"assessment"`
	Journal struct {
		AutosaveInterval string `yaml:"autosave_interval"`
		PersistTimeout   string `yaml:"persist_timeout"`
		DraftTTL         string `yaml:"draft_ttl"`
		CompletionWords  int    `yaml:"completion_words"`
	} `yaml:"journal"`
	Prompt struct {
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"prompt"`
	// Client is handed to browsers verbatim via /api/client-config, so it
	// must only ever hold publishable values.
	Client map[string]string `yaml:"client"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// IntOr returns v unless it is zero or negative.
func IntOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
