package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `toml:"project_path" validate:"required"`
	TestPath    string `toml:"test_path"`

	// Scanning settings
	SourceSuffixes []string `toml:"source_suffixes" validate:"min=1,dive,required"`
	PathsToIgnore  []string `toml:"paths_to_ignore"`

	// Output settings
	OutputFile   string `toml:"output_file" validate:"required"`
	OutputDir    string `toml:"output_dir"`
	OutputFormat string `toml:"output_format" validate:"oneof=json yaml csv"`

	// Registration settings
	Processors   int  `toml:"processors" validate:"min=1,max=256"`
	FilenameTags bool `toml:"filename_tags"`
	FailFast     bool `toml:"fail_fast"`

	LogLevel string `toml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// Command flags
	Flags Flags `toml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	ConfigPath    string
	Processors    int
	TestPath      string
	NameFilter    string
	FailFast      bool
	FilenameTags  bool
	LogLevel      string
	IncludeHidden bool
	Tag           string
	Order         string
	Verbose       bool
	Format        string
	Output        string
	NoProgress    bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:  DefaultProjectPath,
		TestPath:     DefaultTestPath,
		OutputFile:   DefaultOutputFile,
		OutputDir:    DefaultOutputDir,
		OutputFormat: DefaultOutputFormat,
		Processors:   DefaultProcessors,
		LogLevel:     DefaultLogLevel,
		Flags:        Flags{Processors: DefaultProcessors},
	}
	// Copy default slices so callers can't mutate the package defaults
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	cfg.SourceSuffixes = make([]string, len(DefaultSourceSuffixes))
	copy(cfg.SourceSuffixes, DefaultSourceSuffixes)
	return cfg
}

// Resolve layers the config file, the env file and the environment, and
// finally flags on top of the current values, then validates the result.
func (c *Config) Resolve(fsys afero.Fs, flags Flags) error {
	cfgPath := flags.ConfigPath
	if cfgPath == "" {
		cfgPath = filepath.Join(c.ProjectPath, DefaultConfigFile)
	}
	if err := c.LoadFile(fsys, cfgPath); err != nil {
		// Only an explicitly requested config file has to exist
		if flags.ConfigPath != "" || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		log.Debug().Str("path", cfgPath).Msg("no config file, using defaults")
	}

	if err := c.ApplyEnv(filepath.Join(c.ProjectPath, DefaultEnvFile)); err != nil {
		return err
	}

	c.ApplyFlags(flags)
	return c.Validate()
}

// LoadFile decodes a TOML config file on top of the current values, so keys
// missing from the file keep their previous value
func (c *Config) LoadFile(fsys afero.Fs, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("loaded config file")
	return nil
}

// ApplyEnv applies TAGCAT_* settings from envFile and the process
// environment. Process environment values win over the file.
func (c *Config) ApplyEnv(envFile string) error {
	vars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		vars = map[string]string{}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	if v, ok := lookup("TAGCAT_TEST_PATH"); ok {
		c.TestPath = v
	}
	if v, ok := lookup("TAGCAT_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("TAGCAT_OUTPUT_FORMAT"); ok {
		c.OutputFormat = v
	}
	if v, ok := lookup("TAGCAT_SOURCE_SUFFIXES"); ok {
		c.SourceSuffixes = splitList(v)
	}
	if v, ok := lookup("TAGCAT_PROCESSORS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TAGCAT_PROCESSORS %q: %w", v, err)
		}
		c.Processors = n
	}
	for key, target := range map[string]*bool{
		"TAGCAT_FILENAME_TAGS": &c.FilenameTags,
		"TAGCAT_FAIL_FAST":     &c.FailFast,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*target = b
	}
	return nil
}

// ApplyFlags stores flags and applies the ones that override settings
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
	if flags.FailFast {
		c.FailFast = true
	}
	if flags.FilenameTags {
		c.FilenameTags = true
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Format != "" {
		c.OutputFormat = flags.Format
	}
}

// Validate checks the config values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetTestPath returns the test path, using flag if provided
func (c *Config) GetTestPath() string {
	testPath := c.TestPath
	if c.Flags.TestPath != "" {
		testPath = c.Flags.TestPath
	}
	// Relative test paths are resolved against the project path
	if filepath.IsAbs(testPath) {
		return testPath
	}
	return filepath.Join(c.ProjectPath, testPath)
}

// GetOutputPath returns the full path to the report file, using the output
// flag if provided
func (c *Config) GetOutputPath() string {
	if c.Flags.Output != "" {
		return c.Flags.Output
	}
	return filepath.Join(c.ProjectPath, c.OutputDir, c.OutputFile+"."+c.OutputFormat)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
