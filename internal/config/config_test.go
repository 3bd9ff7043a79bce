package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aexvir/hugoup/binary"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, path, err := Load(LoadOptions{ConfigDirPath: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := "dir: /opt/hugo\nuse_brew: true\nextended: \"false\"\nprogress: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, path, err := Load(LoadOptions{ConfigDirPath: dir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ConfigFileName), path)
	assert.Equal(t, "/opt/hugo", cfg.Dir)
	assert.True(t, cfg.UseBrew)
	assert.False(t, cfg.Progress)
	assert.Equal(t, binary.DefaultReleaseBase, cfg.ReleaseBase)

	extended, err := cfg.ExtendedChoice()
	require.NoError(t, err)
	assert.Equal(t, binary.ExtendedOff, extended)
}

func TestLoad_Environment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("dir: /from/file\n"), 0o644))

	t.Setenv("HUGOUP_DIR", "/from/env")
	t.Setenv("HUGOUP_RELEASE_BASE", "https://mirror.example.com/")
	t.Setenv("HUGOUP_BUNDLED_DIR", "/bundled")
	t.Setenv("HUGOUP_USE_BREW", "true")

	cfg, _, err := Load(LoadOptions{ConfigDirPath: dir})
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Dir)
	assert.Equal(t, "/bundled", cfg.BundledDir)
	assert.Equal(t, "https://mirror.example.com/", cfg.ReleaseBase)
	assert.True(t, cfg.UseBrew)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extended: true\n"), 0o644))

	cfg, resolved, err := Load(LoadOptions{ConfigFilePath: path})
	require.NoError(t, err)
	assert.Equal(t, path, resolved)

	extended, err := cfg.ExtendedChoice()
	require.NoError(t, err)
	assert.Equal(t, binary.ExtendedOn, extended)

	_, _, err = Load(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("extended: sometimes\n"), 0o644))
	_, _, err := Load(LoadOptions{ConfigDirPath: dir})
	assert.ErrorContains(t, err, "invalid extended setting")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("dir: [unterminated\n"), 0o644))
	_, _, err = Load(LoadOptions{ConfigDirPath: dir})
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestConfig_ExtendedChoice(t *testing.T) {
	tests := map[string]binary.Extended{
		"":      binary.ExtendedDefault,
		"auto":  binary.ExtendedDefault,
		"AUTO":  binary.ExtendedDefault,
		"true":  binary.ExtendedOn,
		"1":     binary.ExtendedOn,
		"false": binary.ExtendedOff,
	}

	for value, expected := range tests {
		t.Run(value,
			func(t *testing.T) {
				extended, err := Config{Extended: value}.ExtendedChoice()
				require.NoError(t, err)
				assert.Equal(t, expected, extended)
			},
		)
	}
}
