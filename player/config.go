package player

import (
	"encoding/json"
	"fmt"
	"os"
)

// Policy selects how a notification pass treats a failing observer callback.
type Policy string

const (
	// PolicyFailFast lets the first callback panic propagate to the caller
	// of the transition method that triggered the pass.
	PolicyFailFast Policy = "fail-fast"

	// PolicyIsolate recovers each callback separately so one failing
	// observer cannot block dispatch to the rest, then reports the
	// aggregated failures through the error hook.
	PolicyIsolate Policy = "isolate"
)

// Config holds player initialization parameters. The Telemetry field is a
// string to enable JSON configuration with runtime resolution via the
// telemetry registry.
//
// Example JSON:
//
//	{
//	  "name": "living-room",
//	  "telemetry": "slog",
//	  "policy": "isolate"
//	}
type Config struct {
	// Name identifies the player in telemetry and logs.
	Name string `json:"name"`

	// Telemetry names the sink to emit diagnostic events to
	// ("noop", "slog", or any name registered with telemetry.Register).
	Telemetry string `json:"telemetry"`

	// Policy controls callback failure handling during notification.
	Policy Policy `json:"policy"`
}

// DefaultConfig returns a Config with sensible defaults: noop telemetry and
// fail-fast dispatch.
func DefaultConfig() Config {
	return Config{
		Name:      "player",
		Telemetry: "noop",
		Policy:    PolicyFailFast,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.Telemetry != "" {
		c.Telemetry = source.Telemetry
	}
	if source.Policy != "" {
		c.Policy = source.Policy
	}
}

// Load reads a JSON config file, merges it with defaults, and returns the
// resulting Config.
func Load(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
