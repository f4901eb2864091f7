// Package config loads and validates the gencss.config.json file that
// describes spacing scales and breakpoints.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yacobolo/gencss/internal/result"
)

// FileName is the expected config file name.
const FileName = "gencss.config.json"

// Required top-level keys.
const (
	KeySpacing     = "spacing"
	KeyBreakPoints = "breakPoints"
)

var (
	// ErrNotFound is returned when the config path matches no file.
	ErrNotFound = errors.New("config file not found")
	// ErrInvalidJSON is returned when the config is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrMissingOption is returned once per missing required key.
	ErrMissingOption = errors.New("missing option in config")
	// ErrInvalidOption is returned when a required key holds the wrong type.
	ErrInvalidOption = errors.New("invalid option in config")
)

// Entry is one key/value pair of a config mapping.
type Entry struct {
	Key   string // "sm"
	Value string // "1.5rem", raw and unvalidated
}

// Mapping is an ordered list of entries in config file order.
type Mapping []Entry

// Get returns the value stored under key.
func (m Mapping) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, e := range m {
		keys = append(keys, e.Key)
	}
	return keys
}

// set stores value under key, replacing an existing entry in place.
func (m Mapping) set(key, value string) Mapping {
	for i := range m {
		if m[i].Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, Entry{Key: key, Value: value})
}

// Config is a loaded gencss configuration.
type Config struct {
	Path        string  // Resolved file path
	Spacing     Mapping // Spacing scale, unvalidated
	BreakPoints Mapping // Breakpoints, unvalidated
}

// Resolve expands pattern and returns the first matching file.
func Resolve(pattern string) (string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return "", fmt.Errorf("config path %q: %w", pattern, err)
	}

	for _, m := range matches {
		info, err := os.Stat(m)
		if err == nil && !info.IsDir() {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, pattern)
}

// ReadConfig resolves path, reads the file and parses it.
func ReadConfig(path string) result.Result[Config, []error] {
	resolved, err := Resolve(path)
	if err != nil {
		return result.Err[Config]([]error{err})
	}

	// #nosec G304 - path comes from the user's own CLI flags
	data, err := os.ReadFile(resolved)
	if err != nil {
		return result.Err[Config]([]error{fmt.Errorf("read config: %w", err)})
	}

	return result.Map(Parse(data, resolved), func(c Config) Config {
		c.Path = resolved
		return c
	})
}

// Parse decodes config JSON and checks the required keys. Every missing
// or malformed required key is reported, not just the first.
func Parse(data []byte, name string) result.Result[Config, []error] {
	root, err := decode(data)
	if err != nil {
		return result.Err[Config]([]error{fmt.Errorf("%w in %s: %v", ErrInvalidJSON, name, err)})
	}
	if root.kind != kindObject {
		return result.Err[Config]([]error{fmt.Errorf("%w in %s: top-level value must be an object", ErrInvalidJSON, name)})
	}

	// Later duplicates win, as with any JSON object
	top := make(map[string]node, len(root.fields))
	for _, f := range root.fields {
		top[f.key] = f.val
	}

	var (
		cfg  Config
		errs []error
	)

	for _, key := range []string{KeySpacing, KeyBreakPoints} {
		val, ok := top[key]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingOption, key))
			continue
		}
		if val.kind != kindObject {
			errs = append(errs, fmt.Errorf("%w: %s must be an object", ErrInvalidOption, key))
			continue
		}

		m := toMapping(val)
		switch key {
		case KeySpacing:
			cfg.Spacing = m
		case KeyBreakPoints:
			cfg.BreakPoints = m
		}
	}

	if len(errs) > 0 {
		return result.Err[Config](errs)
	}
	return result.Ok[Config, []error](cfg)
}

func toMapping(obj node) Mapping {
	m := make(Mapping, 0, len(obj.fields))
	for _, f := range obj.fields {
		m = m.set(f.key, f.val.scalar())
	}
	return m
}
