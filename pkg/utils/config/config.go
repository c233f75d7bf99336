package config

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	testutils "github.com/dashline-io/dashline/test"
)

type Config struct {
	Emitter struct {
		Sleep_ms         int
		Minimal_sleep_ms int
	}
	Listener struct {
		Buffer_size int
	}
	Stats struct {
		Interval_s int
	}
	Control struct {
		Port string
	}
	Debug struct {
		Pprof_addr string
	}
}

var Conf, _ = LoadConfig(".")

// LoadConfig reads config.toml from the repository root. A missing file is
// fine (defaults apply); a malformed one is fatal.
func LoadConfig(path string) (*Config, error) {
	testutils.SetRoot()
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(path)

	v.SetDefault("emitter.sleep_ms", 100)
	v.SetDefault("emitter.minimal_sleep_ms", 100)
	v.SetDefault("listener.buffer_size", 2048)
	v.SetDefault("stats.interval_s", 10)
	v.SetDefault("control.port", "7077")
	v.SetDefault("debug.pprof_addr", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read config.toml: %v", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatalf("failed to parse config.toml: %v", err)
	}
	return &config, nil
}
