package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds process-level settings loaded from expertpanel.yml.
type ServerConfig struct {
	Addr           string   `yaml:"addr,omitempty"`
	RateRPS        float64  `yaml:"rateRPS,omitempty"`
	RateBurst      int      `yaml:"rateBurst,omitempty"`
	Verbose        bool     `yaml:"verbose,omitempty"`
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"`
}

// Load attempts to read expertpanel.yml or expertpanel.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ServerConfig, error) {
	for _, name := range []string{"expertpanel.yml", "expertpanel.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ServerConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ServerConfig{}, nil
}

// WithDefaults fills unset fields with serving defaults.
func (c *ServerConfig) WithDefaults() *ServerConfig {
	out := *c
	if out.Addr == "" {
		out.Addr = ":8080"
	}
	if out.RateRPS <= 0 {
		out.RateRPS = 10
	}
	if out.RateBurst <= 0 {
		out.RateBurst = 20
	}
	return &out
}
