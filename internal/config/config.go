// Package config handles configuration loading from the project's TOML file
// and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up in the working directory.
const FileName = ".cpphelper.toml"

// Config is the root configuration structure.
type Config struct {
	// ImplementationLocation selects where generated definitions land:
	// "here" (below the prototype) or "source" (the companion source file).
	ImplementationLocation string `toml:"implementation_location"`
	// AddTodoComment emits the "// TODO: Implement" marker in bodies.
	AddTodoComment bool `toml:"add_todo_comment"`
	// EmitReturnStatement adds "return {};" for non-void return types.
	EmitReturnStatement bool `toml:"emit_return_statement"`
	// ScanWindow caps the backward class/template scans, in lines.
	ScanWindow int `toml:"scan_window"`
	// SourceDirs are extra directories probed for companion source files.
	SourceDirs []string `toml:"source_dirs"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ImplementationLocation: "source",
		AddTodoComment:         true,
		EmitReturnStatement:    true,
		ScanWindow:             100,
	}
}

// Load reads configuration from path (FileName when empty). A missing file
// is not an error; defaults apply. Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = FileName
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, cfg.Validate()
		}
		return nil, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CPP_HELPER_LOCATION"); v != "" {
		cfg.ImplementationLocation = v
	}
	if v := os.Getenv("CPP_HELPER_SCAN_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ScanWindow = n
		}
	}
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	switch c.ImplementationLocation {
	case "here", "source":
	default:
		return fmt.Errorf("invalid implementation_location %q (want \"here\" or \"source\")", c.ImplementationLocation)
	}
	if c.ScanWindow <= 0 {
		return fmt.Errorf("scan_window must be positive, got %d", c.ScanWindow)
	}
	return nil
}

const defaultFileContent = `# cpp-helper configuration

# Where generated definitions land: "here" (below the prototype) or
# "source" (the companion source file).
implementation_location = "source"

# Emit the "// TODO: Implement" marker in generated bodies.
add_todo_comment = true

# Emit "return {};" for non-void return types.
emit_return_statement = true

# How many lines the backward class/template scans may walk.
scan_window = 100

# Extra directories probed for companion source files.
# source_dirs = ["src", "lib"]
`

// WriteDefault writes a commented default config file. Fails when the file
// already exists.
func WriteDefault(path string) error {
	if path == "" {
		path = FileName
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return os.WriteFile(path, []byte(defaultFileContent), 0644)
}
