// Package preset reads interpolation options from option strings and YAML
// preset files.
//
// Option strings consist of key=value pairs that are split like a shell
// command line:
//
//	duration=2 curve=outCubic delay=0.5
//
// Preset files map names to options:
//
//	fade:
//	  duration: 0.5
//	  curve: outQuad
//	drop:
//	  duration: 1.2
//	  curve: outBounce
//	  delay: 0.1
package preset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/patrickmn/go-cache"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/256dpi/max-easing/curve"
	"github.com/256dpi/max-easing/tween"
)

// Set is a collection of named options.
type Set map[string]tween.Options

// Get returns the named options.
func (s Set) Get(name string) (tween.Options, bool) {
	opts, ok := s[name]
	return opts, ok
}

// Parse will parse an option string. Missing keys are taken from the default
// options. Unknown curve names resolve to the linear curve, while unknown keys
// and malformed numbers are reported as errors.
func Parse(str string) (tween.Options, error) {
	return Apply(tween.DefaultOptions(), str)
}

// Apply will parse an option string and apply it to the provided options.
func Apply(opts tween.Options, str string) (tween.Options, error) {
	// split string
	tokens, err := shlex.Split(str)
	if err != nil {
		return opts, fmt.Errorf("preset: failed to split options: %w", err)
	}

	for _, token := range tokens {
		// split token
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return opts, fmt.Errorf("preset: expected key=value, got %q", token)
		}

		// apply value
		switch strings.ToLower(key) {
		case "duration":
			opts.Duration, err = cast.ToFloat64E(value)
		case "delay":
			opts.Delay, err = cast.ToFloat64E(value)
		case "curve":
			opts.Curve = curve.Parse(value)
		default:
			return opts, fmt.Errorf("preset: unknown key %q", key)
		}
		if err != nil {
			return opts, fmt.Errorf("preset: invalid %s: %w", key, err)
		}
	}

	return opts, nil
}

// Args splits object arguments into an option string and a preset file path. A
// final argument with a .yaml or .yml extension names the file, all other
// arguments are joined into the option string.
func Args(args []string) (string, string) {
	// get file
	var file string
	if n := len(args); n > 0 {
		switch strings.ToLower(filepath.Ext(args[n-1])) {
		case ".yaml", ".yml":
			file = args[n-1]
			args = args[:n-1]
		}
	}

	return strings.Join(args, " "), file
}

type entry struct {
	Duration *float64 `yaml:"duration"`
	Curve    string   `yaml:"curve"`
	Delay    float64  `yaml:"delay"`
}

// Decode will decode a YAML preset document. Missing durations default to one
// second and missing curves to the linear curve.
func Decode(r io.Reader) (Set, error) {
	// decode document
	var doc map[string]entry
	err := yaml.NewDecoder(r).Decode(&doc)
	if err == io.EOF {
		return Set{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("preset: failed to decode: %w", err)
	}

	// convert entries
	set := make(Set, len(doc))
	for name, e := range doc {
		opts := tween.DefaultOptions()
		if e.Duration != nil {
			opts.Duration = *e.Duration
		}
		if e.Curve != "" {
			opts.Curve = curve.Parse(e.Curve)
		}
		opts.Delay = e.Delay
		set[name] = opts
	}

	return set, nil
}

// CacheExpiration is the duration loaded preset files are cached.
const CacheExpiration = time.Minute

var files = cache.New(CacheExpiration, 2*CacheExpiration)

// Load will read and decode the preset file at the provided path. Decoded
// files are cached so that many objects may share a file.
func Load(path string) (Set, error) {
	// check cache
	if value, ok := files.Get(path); ok {
		return value.(Set), nil
	}

	// open file
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("preset: failed to open file: %w", err)
	}
	defer file.Close()

	// decode file
	set, err := Decode(file)
	if err != nil {
		return nil, err
	}

	// cache set
	files.SetDefault(path, set)

	return set, nil
}

// Forget removes the provided file from the cache.
func Forget(path string) {
	files.Delete(path)
}
