package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chatdrop/chatdrop/internal/domains/upload/domain"
	"github.com/chatdrop/chatdrop/internal/platform/errors"
	"github.com/chatdrop/chatdrop/internal/platform/policy"
)

const (
	EnvConfigPath  = "CHATDROP_CONFIG"
	DefaultProfile = "default"
)

// Config is built once per invocation and never mutated afterwards.
type Config struct {
	Profile     string
	FilePath    string
	URL         string
	Browser     string
	Prompt      string
	CloseFinder bool
	Waits       domain.Waits

	// Collect is the argv run before the upload to refresh FilePath. It runs
	// in CollectDir, the directory of the config file that set it.
	Collect    []string
	CollectDir string

	Log          Log
	AllowDomains []string

	// Source is the config file that was read, or "" when only defaults apply.
	Source string
}

type Log struct {
	Level  string
	Format string
}

// Duration accepts either a Go duration string ("2s", "1500ms") or a bare
// integer count of milliseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	if node.ShortTag() == "!!int" {
		ms, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid milliseconds %q", node.Line, node.Value)
		}
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", node.Line, node.Value)
	}
	*d = Duration(parsed)
	return nil
}

// Overlay is one layer of settings. Unset fields leave the layer below untouched.
type Overlay struct {
	File        string       `yaml:"file"`
	URL         string       `yaml:"url"`
	Browser     string       `yaml:"browser"`
	Prompt      string       `yaml:"prompt"`
	CloseFinder *bool        `yaml:"close_finder"`
	Waits       WaitsOverlay `yaml:"waits"`

	// Collect is an argv, not a shell line. An empty list clears an inherited command.
	Collect *[]string `yaml:"collect"`
}

type WaitsOverlay struct {
	Finder        *Duration `yaml:"finder"`
	BrowserSettle *Duration `yaml:"browser_settle"`
	Delay         *Duration `yaml:"delay"`
	Upload        *Duration `yaml:"upload"`
}

type fileConfig struct {
	Overlay `yaml:",inline"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	// A present but empty list disables the host check.
	AllowDomains *[]string `yaml:"allow_domains"`

	Profiles map[string]Overlay `yaml:"profiles"`
}

type LoadOptions struct {
	// Path is the --config flag. Empty falls back to $CHATDROP_CONFIG.
	Path    string
	Profile string
	// FileArg is the positional input path; it wins over every other layer.
	FileArg  string
	LogLevel string

	Getenv func(string) string
}

// Defaults is the single-profile workflow used when no profile is selected.
func Defaults() Config {
	return Config{
		Profile:  DefaultProfile,
		FilePath: filepath.Join("results", "all_data.json"),
		URL:      "https://chatgpt.com/",
		Browser:  "Google Chrome",
		Prompt:   analysisPrompt,
		Waits: domain.Waits{
			Finder:        2000 * time.Millisecond,
			BrowserSettle: 3000 * time.Millisecond,
			Delay:         3000 * time.Millisecond,
			Upload:        20000 * time.Millisecond,
		},
		Log:          Log{Level: "info", Format: "text"},
		AllowDomains: []string{"chatgpt.com", "chat.openai.com"},
	}
}

// Load layers defaults, the config file, the chosen profile and the CLI
// positional path, in that order, then validates the result.
func Load(opts LoadOptions) (Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Defaults()

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = strings.TrimSpace(getenv(EnvConfigPath))
	}

	var fc *fileConfig
	if path != "" {
		loaded, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		fc = loaded
		cfg.Source = path
		cfg.apply(fc.Overlay, filepath.Dir(path))
		if fc.Log.Level != "" {
			cfg.Log.Level = fc.Log.Level
		}
		if fc.Log.Format != "" {
			cfg.Log.Format = fc.Log.Format
		}
		if fc.AllowDomains != nil {
			cfg.AllowDomains = *fc.AllowDomains
		}
	}

	name := strings.TrimSpace(opts.Profile)
	if name == "" {
		name = DefaultProfile
	}
	preset, builtin := presets()[name]
	var fileProfile Overlay
	var inFile bool
	if fc != nil {
		fileProfile, inFile = fc.Profiles[name]
	}
	if !builtin && !inFile {
		return Config{}, errors.NewConfig(fmt.Sprintf("unknown profile %q (available: %s)", name, strings.Join(profileNames(fc), ", ")), nil)
	}
	if builtin {
		cfg.apply(preset, "")
	}
	if inFile {
		cfg.apply(fileProfile, filepath.Dir(path))
	}
	cfg.Profile = name

	if strings.TrimSpace(opts.FileArg) != "" {
		cfg.FilePath = opts.FileArg
	}
	if lvl := strings.TrimSpace(opts.LogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfig("read config "+path, err)
	}
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return nil, errors.NewConfig("parse config "+path, err)
	}
	return &fc, nil
}

// apply copies the set fields of o onto c. A relative file path in o is taken
// against baseDir when baseDir is not empty.
func (c *Config) apply(o Overlay, baseDir string) {
	if f := o.File; strings.TrimSpace(f) != "" {
		if baseDir != "" && !filepath.IsAbs(f) && !strings.HasPrefix(f, "~") {
			f = filepath.Join(baseDir, f)
		}
		c.FilePath = f
	}
	if o.URL != "" {
		c.URL = strings.TrimSpace(o.URL)
	}
	if o.Browser != "" {
		c.Browser = strings.TrimSpace(o.Browser)
	}
	if o.Prompt != "" {
		c.Prompt = o.Prompt
	}
	if o.CloseFinder != nil {
		c.CloseFinder = *o.CloseFinder
	}
	if o.Collect != nil {
		c.Collect = *o.Collect
		c.CollectDir = baseDir
	}
	if o.Waits.Finder != nil {
		c.Waits.Finder = time.Duration(*o.Waits.Finder)
	}
	if o.Waits.BrowserSettle != nil {
		c.Waits.BrowserSettle = time.Duration(*o.Waits.BrowserSettle)
	}
	if o.Waits.Delay != nil {
		c.Waits.Delay = time.Duration(*o.Waits.Delay)
	}
	if o.Waits.Upload != nil {
		c.Waits.Upload = time.Duration(*o.Waits.Upload)
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.FilePath) == "" {
		return errors.NewConfig("file is required", nil)
	}
	if strings.TrimSpace(c.Browser) == "" {
		return errors.NewConfig("browser is required", nil)
	}
	if strings.TrimSpace(c.Prompt) == "" {
		return errors.NewConfig("prompt is required", nil)
	}
	if len(c.Collect) > 0 && strings.TrimSpace(c.Collect[0]) == "" {
		return errors.NewConfig("collect must start with a program name", nil)
	}

	waits := []struct {
		name string
		d    time.Duration
	}{
		{"waits.finder", c.Waits.Finder},
		{"waits.browser_settle", c.Waits.BrowserSettle},
		{"waits.delay", c.Waits.Delay},
		{"waits.upload", c.Waits.Upload},
	}
	for _, w := range waits {
		if w.d < 0 {
			return errors.NewConfig(fmt.Sprintf("%s must not be negative, got %v", w.name, w.d), nil)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfig("log.level must be debug, info, warn or error, got "+c.Log.Level, nil)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.NewConfig("log.format must be text or json, got "+c.Log.Format, nil)
	}

	return policy.Policy{AllowDomains: c.AllowDomains}.RequireURLAllowed(c.URL)
}

// profileNames lists built-in presets and any profiles defined in fc, sorted.
func profileNames(fc *fileConfig) []string {
	seen := map[string]bool{}
	for name := range presets() {
		seen[name] = true
	}
	if fc != nil {
		for name := range fc.Profiles {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
