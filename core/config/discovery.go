// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates configuration files by probing a search path list
//              for a set of base names and extensions.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package config

import (
	"os"
	"strconv"
	"strings"

	perror "github.com/plinth-go/plinth/core/error"
	"github.com/plinth-go/plinth/core/path"
	"github.com/plinth-go/plinth/core/platform"
	"github.com/plinth-go/plinth/core/text"
)

// DiscoveryOptions defines where automatic discovery looks
type DiscoveryOptions struct {
	Dirs       []string // directories to search, in priority order
	Filenames  []string // base filenames without extension
	Extensions []string // extensions to try, leading dot included
	EnvPrefix  string   // environment variable prefix for overrides
	Required   bool     // fail when no file is found
}

// DefaultDiscoveryOptions returns the standard search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Dirs:       []string{".", "./config", "/etc/plinth"},
		Filenames:  []string{"plinth", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		Required:   true,
	}
}

// Discover probes the search directories front to back and loads the
// first configuration file that exists. Duplicate directories shadow
// later mentions, so repeated entries cost nothing.
func Discover(options DiscoveryOptions, env platform.OS) (*Config, error) {
	if len(options.Dirs) == 0 {
		options.Dirs = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}
	if env == nil {
		env = platform.Host()
	}

	schema := path.Native()
	list := path.NewSearchPathList(schema)
	for _, dir := range options.Dirs {
		src, err := text.New(dir)
		if err != nil {
			continue
		}
		p, err := path.Parse(src, schema)
		if err != nil {
			continue
		}
		if err := list.Append(p); err != nil {
			continue
		}
	}

	for _, filename := range options.Filenames {
		for _, ext := range options.Extensions {
			found, ok, err := list.TryFind(filename+ext, env)
			if err != nil || !ok {
				continue
			}
			rendered, err := found.Render(path.UsageKernel, env)
			if err != nil {
				continue
			}
			cfg, err := LoadWithOptions(rendered, LoadOptions{
				Format:    FormatAuto,
				EnvPrefix: options.EnvPrefix,
			})
			if err != nil {
				return nil, perror.Wrap(err, "found config file but failed to load").
					WithCode(perror.CodeInvalidOperation).
					WithOperation("config.Discover").
					WithDetail("configPath", rendered)
			}
			return cfg, nil
		}
	}

	if options.Required {
		return nil, perror.New("no configuration file found").
			WithCode(perror.CodeConfigError).
			WithOperation("config.Discover").
			WithDetail("searchPath", list.String()).
			WithDetail("filenames", strings.Join(options.Filenames, ", "))
	}
	return Empty(options.EnvPrefix), nil
}

// LoadFromEnv builds a configuration entirely from environment
// variables carrying the given prefix. PLINTH_LOG_LEVEL becomes the
// key "log.level".
func LoadFromEnv(envPrefix string) *Config {
	data := make(map[string]interface{})

	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if envPrefix != "" {
			prefix := strings.ToUpper(envPrefix) + "_"
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
		}
		configKey := strings.ToLower(strings.ReplaceAll(key, "_", "."))
		setNestedValue(data, configKey, parseEnvValue(value))
	}

	return &Config{
		data:      data,
		format:    FormatAuto,
		envPrefix: envPrefix,
	}
}

// parseEnvValue narrows environment strings to bool or int when they
// parse cleanly.
func parseEnvValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}
	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}
	return value
}

// setNestedValue sets a dotted key in a nested map
func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}
