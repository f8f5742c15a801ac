package config

import "time"

// Config holds runtime settings for the docledger CLI.
type Config struct {
	ServerEndpointAddr string
	CallTimeout        time.Duration
}

// LoadDefaults populates c with defaults matching a local server.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.CallTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then JSON (if present), then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
