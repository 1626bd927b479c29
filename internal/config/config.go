// Package config loads spliminal settings from defaults, an optional YAML
// file, SPLIMINAL_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Execution modes.
const (
	// ModeAsync runs commands off the UI loop; the screen stays live.
	ModeAsync = "async"
	// ModeBlocking runs each command to completion before the next key is
	// read.
	ModeBlocking = "blocking"
)

// LogLevels lists the accepted log.level values.
var LogLevels = []string{"trace", "debug", "info", "error"}

// Config holds application configuration.
type Config struct {
	Shell string     `yaml:"shell"`
	Exec  ExecConfig `yaml:"exec"`
	Log   LogConfig  `yaml:"log"`
	UI    UIConfig   `yaml:"ui"`
}

// ExecConfig controls how submitted commands run.
type ExecConfig struct {
	Mode    string   `yaml:"mode"`
	Timeout Duration `yaml:"timeout"`
	// Guard refuses commands that look destructive (see package security).
	Guard bool `yaml:"guard"`
}

// LogConfig controls the log file.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title        string `yaml:"title"`
	Accent       string `yaml:"accent"`
	HighContrast bool   `yaml:"high_contrast"`
}

// Duration is a time.Duration that renders as "1m30s" in YAML.
type Duration time.Duration

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) { return time.Duration(d).String(), nil }

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"shell":     "shell",
	"mode":      "exec.mode",
	"timeout":   "exec.timeout",
	"guard":     "exec.guard",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load reads configuration. path selects an explicit config file which must
// exist; when empty, EnvConfig or config.yaml in the data directory is used
// if present. flags may be nil; otherwise flags named in flagKeys override
// every other source when set.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	dataDir, err := DataDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	v := viper.New()
	v.SetDefault("shell", "sh")
	v.SetDefault("exec.mode", ModeAsync)
	v.SetDefault("exec.timeout", "0s")
	v.SetDefault("exec.guard", false)
	logPath, err := LogPath()
	if err != nil {
		return Config{}, fmt.Errorf("resolve log path: %w", err)
	}
	v.SetDefault("log.file", logPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.title", "Spliminal")
	v.SetDefault("ui.accent", "#c084fc")
	v.SetDefault("ui.high_contrast", false)

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(dataDir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPLIMINAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Shell: v.GetString("shell"),
		Exec: ExecConfig{
			Mode:    strings.ToLower(v.GetString("exec.mode")),
			Timeout: Duration(v.GetDuration("exec.timeout")),
			Guard:   v.GetBool("exec.guard"),
		},
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: strings.ToLower(v.GetString("log.level")),
		},
		UI: UIConfig{
			Title:        v.GetString("ui.title"),
			Accent:       v.GetString("ui.accent"),
			HighContrast: v.GetBool("ui.high_contrast"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	words, err := shellquote.Split(c.Shell)
	if err != nil {
		return fmt.Errorf("shell %q: %w", c.Shell, err)
	}
	if len(words) == 0 {
		return errors.New("shell must not be empty")
	}
	if c.Exec.Mode != ModeAsync && c.Exec.Mode != ModeBlocking {
		return fmt.Errorf("exec.mode %q: must be %q or %q", c.Exec.Mode, ModeAsync, ModeBlocking)
	}
	if c.Exec.Timeout < 0 {
		return fmt.Errorf("exec.timeout %s: must not be negative", time.Duration(c.Exec.Timeout))
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("log.level %q: must be one of %s", c.Log.Level, strings.Join(LogLevels, ", "))
	}
	if c.Log.File == "" {
		return errors.New("log.file must not be empty")
	}
	return nil
}
