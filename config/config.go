package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"rangeline/feedback"
	"rangeline/log"
	"rangeline/ruler"
)

const (
	ConfigFileName     = "config.json"
	TOMLConfigFileName = "config.toml"
)

// Validation errors, wrapped with details by Validate.
var (
	ErrInvalidRuler    = errors.New("invalid ruler")
	ErrInvalidRange    = errors.New("invalid initial range")
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrInvalidHaptics  = errors.New("invalid haptics mode")
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".rangeline"), nil
}

// Config represents the application configuration
type Config struct {
	// Inset is the end cap width in pixels, reserved at both ends of the track.
	Inset float64 `json:"inset" toml:"inset"`
	// VerticalInset is the plank frame thickness in rows above and below the ruler.
	VerticalInset int `json:"vertical_inset" toml:"vertical_inset"`
	// CellWidth is how many pixels one terminal column stands for.
	CellWidth float64 `json:"cell_width" toml:"cell_width"`
	// Sensitivity is the handle hit radius in pixels.
	Sensitivity float64 `json:"sensitivity" toml:"sensitivity"`
	// Ruler is the optional tick ruler. Nil hides the ruler and disables haptics.
	Ruler *ruler.Ruler `json:"ruler,omitempty" toml:"ruler,omitempty"`
	// InitialLeft and InitialRight are the range the slider starts with and resets to.
	InitialLeft  float64 `json:"initial_left" toml:"initial_left"`
	InitialRight float64 `json:"initial_right" toml:"initial_right"`
	// Haptics selects the tick feedback: "bell", "log" or "none".
	Haptics string `json:"haptics" toml:"haptics"`
	// FrontColor and RearColor are the plank colors.
	FrontColor string `json:"front_color" toml:"front_color"`
	RearColor  string `json:"rear_color" toml:"rear_color"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Inset:         16,
		VerticalInset: 1,
		CellWidth:     8,
		Sensitivity:   40,
		Ruler:         ruler.New(40, 10),
		InitialLeft:   0.2,
		InitialRight:  0.8,
		Haptics:       feedback.ModeBell,
		FrontColor:    "#F5C518",
		RearColor:     "#1F1F1F",
	}
}

// Validate checks every field and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if c.Ruler != nil {
		if err := c.Ruler.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidRuler, err))
		}
	}
	if c.InitialLeft < 0 || c.InitialRight > 1 || c.InitialLeft > c.InitialRight {
		errs = append(errs, fmt.Errorf("%w: need 0 <= left <= right <= 1, got %g/%g",
			ErrInvalidRange, c.InitialLeft, c.InitialRight))
	}
	if c.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("%w: cell_width must be positive, got %g", ErrInvalidGeometry, c.CellWidth))
	}
	if c.Inset < 0 {
		errs = append(errs, fmt.Errorf("%w: inset must be >= 0, got %g", ErrInvalidGeometry, c.Inset))
	}
	if c.VerticalInset < 0 {
		errs = append(errs, fmt.Errorf("%w: vertical_inset must be >= 0, got %d", ErrInvalidGeometry, c.VerticalInset))
	}
	if c.Sensitivity < 0 {
		errs = append(errs, fmt.Errorf("%w: sensitivity must be >= 0, got %g", ErrInvalidGeometry, c.Sensitivity))
	}
	switch c.Haptics {
	case feedback.ModeBell, feedback.ModeLog, feedback.ModeNone, "":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidHaptics, c.Haptics))
	}

	return errors.Join(errs...)
}

// ConfigPath returns the config file in use: config.toml when it exists,
// config.json otherwise.
func ConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	tomlPath := filepath.Join(configDir, TOMLConfigFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// LoadConfig loads the user config. It never fails: problems are logged and
// the defaults are used. A missing config is created with the defaults.
func LoadConfig() *Config {
	configPath, err := ConfigPath()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	cfg, err := LoadConfigFrom(configPath)
	if err == nil {
		return cfg
	}

	if errors.Is(err, os.ErrNotExist) {
		defaultCfg := DefaultConfig()
		if saveErr := SaveConfig(defaultCfg); saveErr != nil {
			log.WarningLog.Printf("failed to save default config: %v", saveErr)
		}
		return defaultCfg
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		log.ErrorLog.Printf("%v\nConfig content preview: %s", err, parseErr.Preview())

		// Keep the broken file around so the user can fix it.
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, parseErr.Data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}
		return DefaultConfig()
	}

	log.WarningLog.Printf("failed to load config: %v", err)
	return DefaultConfig()
}

// ParseError is returned when a config file cannot be decoded.
type ParseError struct {
	Path string
	Data []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config file at %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Preview returns the start of the offending file.
func (e *ParseError) Preview() string {
	preview := string(e.Data)
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	return preview
}

// LoadConfigFrom reads and validates a config file. The format follows the
// extension: .toml is TOML, anything else JSON. Fields missing from the file
// keep their defaults.
func LoadConfigFrom(path string) (*Config, error) {
	lock := NewFileLock(filepath.Dir(path))
	if err := lock.RLock(); err != nil {
		// Reading without the lock risks a torn read, which parsing catches.
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
	} else {
		defer lock.Unlock()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Data: data, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// saveConfig saves the configuration to path, in the format its extension names.
func saveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := NewFileLock(dir)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// SaveConfig writes config to the config file in use.
func SaveConfig(config *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return saveConfig(config, path)
}

// SaveConfigTo writes config to an explicit path.
func SaveConfigTo(config *Config, path string) error {
	return saveConfig(config, path)
}
