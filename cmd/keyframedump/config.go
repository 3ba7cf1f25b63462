package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/keyframe/internal/sink"
	"gopkg.in/yaml.v2"
)

// Config is the optional YAML config file. Flags given on the command line
// override it.
type Config struct {
	Clip   string           `yaml:"clip"`
	Step   uint32           `yaml:"step"`
	Frames int              `yaml:"frames"`
	Mqtt   *sink.MQTTConfig `yaml:"mqtt"`
}

func defaultConfig() Config {
	return Config{Step: 16}
}

func readConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.SetStrict(true)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	if c.Clip == "" {
		return fmt.Errorf("no clip given")
	}
	if c.Step == 0 {
		return fmt.Errorf("step must be positive")
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative")
	}
	if c.Mqtt != nil && c.Mqtt.URL == "" {
		return fmt.Errorf("mqtt: url required")
	}
	return nil
}

// frameCount is the configured frame count, or enough frames to cover one
// loop of an animation lasting duration ms.
func (c Config) frameCount(duration uint32) int {
	if c.Frames > 0 {
		return c.Frames
	}
	return int(duration/c.Step) + 1
}
