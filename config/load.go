package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/hcl"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "BLUETUNER_"

var SearchPaths = []string{"/etc/bluetuner/config.hcl", "~/.config/bluetuner/config.hcl", "./config.hcl"}

// Defaults holds every key a missing config file or environment leaves unset.
var Defaults = map[string]any{
	"receiver.sample_rate":    4e6,
	"receiver.center_freq":    2441e6,
	"receiver.squelch":        -10.0,
	"receiver.snr_threshold":  6.0,
	"receiver.symbol_history": 0,
	"receiver.window":         "hann",

	"clockrecovery.mu":          0.32,
	"clockrecovery.alpha":       0.175,
	"clockrecovery.omega_limit": 0.005,

	"radio.driver":      "rtlsdr",
	"radio.sample_type": "complex64",
	"radio.chunk_size":  1 << 16,

	"scan.workers":        4,
	"scan.low_energy":     true,
	"scan.spectrum_every": 16,

	"tui.refresh_ms":        500,
	"tui.snr_warn_pct":      50.0,
	"tui.snr_crit_pct":      80.0,
	"tui.enable_log_output": true,
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// FindConfigPath returns the first existing file from paths, or "".
func FindConfigPath(paths []string) string {
	for _, path := range paths {
		path = expandHome(path)
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			log.Infof("Found config file: %s", path)
			return path
		}
	}
	log.Info("Config file not found!")
	return ""
}

// Load reads the HCL file at path, falling back to BLUETUNER_* environment
// variables when it cannot be read, then fills in Defaults.
func Load(path string) *koanf.Koanf {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), hcl.Parser(true)); err != nil {
		log.Errorf("Could not read config file: %v", err)
		log.Error("Attempting to use environment variables")
		k.Load(env.Provider(".", env.Opt{
			Prefix: EnvPrefix,
			TransformFunc: func(k, v string) (string, any) {
				key := strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
				k = strings.Replace(key, "_", ".", 1)
				log.Debugf("Found config env var: %s=%v", k, v)
				return k, v
			},
		}), nil)
	}

	for key, val := range Defaults {
		if !k.Exists(key) {
			k.Set(key, val)
		}
	}
	return k
}

// Unmarshal decodes the whole tree into a Conf.
func Unmarshal(k *koanf.Koanf) (Conf, error) {
	var conf Conf
	if err := k.Unmarshal("", &conf); err != nil {
		return conf, fmt.Errorf("could not decode config: %w", err)
	}
	return conf, nil
}
