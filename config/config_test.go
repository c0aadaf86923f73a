package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangeline/ruler"
)

// useTempHome points the config directory at a fresh temp dir.
func useTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return filepath.Join(home, ".rangeline")
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ruler.New(40, 10), cfg.Ruler)
	assert.Equal(t, 0.2, cfg.InitialLeft)
	assert.Equal(t, 0.8, cfg.InitialRight)
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := useTempHome(t)

	cfg := LoadConfig()
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}

	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	assert.NoError(t, err, "default config should be written")
}

func TestLoadConfigFromJSONKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"initial_left": 0.1, "ruler": {"count": 20, "step": 5}}`), 0644))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.InitialLeft = 0.1
	want.Ruler = ruler.New(20, 5)
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfigFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFromJSONNullRuler(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"ruler": null}`), 0644))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Ruler)
}

func TestLoadConfigFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), TOMLConfigFileName)
	data := strings.Join([]string{
		`haptics = "log"`,
		`cell_width = 4.0`,
		`initial_right = 0.5`,
		``,
		`[ruler]`,
		`count = 8`,
		`step = 4`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "log", cfg.Haptics)
	assert.Equal(t, 4.0, cfg.CellWidth)
	assert.Equal(t, 0.5, cfg.InitialRight)
	assert.Equal(t, ruler.New(8, 4), cfg.Ruler)
	assert.Equal(t, 16.0, cfg.Inset, "unset fields keep defaults")
}

func TestTOMLPreferredWhenPresent(t *testing.T) {
	dir := useTempHome(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLConfigFileName), []byte(`haptics = "none"`), 0644))

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, TOMLConfigFileName), path)
	assert.Equal(t, "none", LoadConfig().Haptics)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	for _, name := range []string{ConfigFileName, TOMLConfigFileName} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := DefaultConfig()
			cfg.Ruler = ruler.New(12, 3)
			cfg.Haptics = "none"
			require.NoError(t, SaveConfigTo(cfg, path))

			loaded, err := LoadConfigFrom(path)
			require.NoError(t, err)
			if diff := cmp.Diff(cfg, loaded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfigBacksUpCorruptFile(t *testing.T) {
	dir := useTempHome(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{not json`), 0644))

	cfg := LoadConfig()
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("corrupt config should fall back to defaults (-want +got):\n%s", diff)
	}

	matches, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestLoadConfigFromErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfigFrom(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[]`), 0644))
	_, err = LoadConfigFrom(bad)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, bad, parseErr.Path)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"initial_left": 0.9, "initial_right": 0.1}`), 0644))
	_, err = LoadConfigFrom(invalid)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{name: "negative tick count", mutate: func(c *Config) { c.Ruler = ruler.New(-1, 1) }, want: ErrInvalidRuler},
		{name: "zero step", mutate: func(c *Config) { c.Ruler = ruler.New(10, 0) }, want: ErrInvalidRuler},
		{name: "crossed range", mutate: func(c *Config) { c.InitialLeft, c.InitialRight = 0.7, 0.3 }, want: ErrInvalidRange},
		{name: "range past one", mutate: func(c *Config) { c.InitialRight = 1.5 }, want: ErrInvalidRange},
		{name: "zero cell width", mutate: func(c *Config) { c.CellWidth = 0 }, want: ErrInvalidGeometry},
		{name: "negative inset", mutate: func(c *Config) { c.Inset = -1 }, want: ErrInvalidGeometry},
		{name: "unknown haptics", mutate: func(c *Config) { c.Haptics = "rumble" }, want: ErrInvalidHaptics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	t.Run("no ruler is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Ruler = nil
		assert.NoError(t, cfg.Validate())
	})
}

func TestFileLock(t *testing.T) {
	dir := t.TempDir()
	lock := NewFileLock(dir)

	require.NoError(t, lock.Lock())
	assert.ErrorIs(t, lock.RLock(), errLockHeld)
	require.NoError(t, lock.Unlock())
	require.NoError(t, lock.Unlock())

	require.NoError(t, lock.RLock())
	require.NoError(t, lock.Unlock())
}
