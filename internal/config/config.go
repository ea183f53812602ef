package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ollama/ollama/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/shahar-caura/triage/internal/extract"
	"github.com/shahar-caura/triage/internal/triage"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "triage.yaml"

// Duration wraps time.Duration with YAML unmarshaling from strings like "45m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}

// Config is the top-level triage configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Ollama OllamaConfig `yaml:"ollama"`
	Models ModelsConfig `yaml:"models"`
}

type ServerConfig struct {
	Port        int      `yaml:"port"`
	SessionIdle Duration `yaml:"session_idle"` // 0 keeps sessions until restart
}

type OllamaConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"` // 0 waits indefinitely
}

type ModelsConfig struct {
	Default string        `yaml:"default"`
	List    []ModelConfig `yaml:"list"`
}

// ModelConfig binds a model identifier to the extraction policy for its output.
type ModelConfig struct {
	Name       string `yaml:"name"`
	Policy     string `yaml:"policy"`
	Statements int    `yaml:"statements,omitempty"`
}

const (
	defaultPort        = 8501
	defaultSessionIdle = 12 * time.Hour
	defaultBaseURL     = "http://localhost:11434"
)

// Default returns the built-in configuration used when no file exists.
// Environment overrides are not applied, so the result is safe to write out.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: defaultPort, SessionIdle: Duration{defaultSessionIdle}},
		Ollama: OllamaConfig{BaseURL: defaultBaseURL},
		Models: ModelsConfig{
			Default: "llama3.3",
			List: []ModelConfig{
				{Name: "llama3.3", Policy: extract.PolicyPattern},
				{Name: "mistral", Policy: extract.PolicyPattern},
				{Name: "deepseek-r1:32b", Policy: extract.PolicyTail, Statements: extract.DefaultStatements},
			},
		},
	}
}

// Load reads, expands env vars, parses, and validates a triage config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault behaves like Load but falls back to Default, with environment
// overrides applied, when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		applyEnv(cfg)
		return cfg, nil
	}
	return cfg, err
}

// Parse expands env vars in data, decodes it and fills defaults.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Ollama.BaseURL == "" {
		cfg.Ollama.BaseURL = defaultBaseURL
	}
	if len(cfg.Models.List) == 0 {
		cfg.Models = Default().Models
	}
	if cfg.Models.Default == "" && len(cfg.Models.List) > 0 {
		cfg.Models.Default = cfg.Models.List[0].Name
	}
	applyEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv lets OLLAMA_HOST win over the file, resolved the way the ollama CLI resolves it.
func applyEnv(cfg *Config) {
	if strings.TrimSpace(os.Getenv("OLLAMA_HOST")) == "" {
		return
	}
	cfg.Ollama.BaseURL = envconfig.Host().String()
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port))
	}
	if cfg.Server.SessionIdle.Duration < 0 {
		errs = append(errs, errors.New("server.session_idle must not be negative"))
	}
	if cfg.Ollama.Timeout.Duration < 0 {
		errs = append(errs, errors.New("ollama.timeout must not be negative"))
	}

	seen := make(map[string]bool)
	for i, m := range cfg.Models.List {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("models.list[%d].name is required", i))
			continue
		}
		if seen[m.Name] {
			errs = append(errs, fmt.Errorf("models.list[%d]: duplicate model %q", i, m.Name))
		}
		seen[m.Name] = true
		if _, err := extract.PolicyByName(m.Policy, m.Statements); err != nil {
			errs = append(errs, fmt.Errorf("models.list[%d]: %w", i, err))
		}
		if m.Statements < 0 {
			errs = append(errs, fmt.Errorf("models.list[%d].statements must not be negative", i))
		}
	}
	if cfg.Models.Default != "" && !seen[cfg.Models.Default] {
		errs = append(errs, fmt.Errorf("models.default %q is not in models.list", cfg.Models.Default))
	}

	return errors.Join(errs...)
}

// Catalog returns the model list offered to users.
func (c *Config) Catalog() triage.Catalog {
	cat := triage.Catalog{Default: c.Models.Default}
	for _, m := range c.Models.List {
		policy := m.Policy
		if policy == "" {
			policy = extract.PolicyPattern
		}
		cat.Models = append(cat.Models, triage.Model{Name: m.Name, Policy: policy})
	}
	return cat
}

// Policies returns the extraction policy of every configured model.
func (c *Config) Policies() map[string]extract.Policy {
	out := make(map[string]extract.Policy, len(c.Models.List))
	for _, m := range c.Models.List {
		p, err := extract.PolicyByName(m.Policy, m.Statements)
		if err != nil {
			continue // rejected by validate
		}
		out[m.Name] = p
	}
	return out
}

// Registry builds the extraction table for the configured models.
func (c *Config) Registry() *extract.Registry {
	r := extract.NewRegistry(extract.Pattern{})
	r.Replace(c.Policies())
	return r
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
