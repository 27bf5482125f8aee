package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("home", "", "")
	fs.String("input-dir", "", "")
	fs.String("log-level", "", "")
	fs.StringP("output", "o", "", "")
	fs.Int("parallel", 0, "")
	fs.Bool("record", false, "")
	return fs
}

// chdir moves into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, used, err := Load("", newFlags())
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultInputDir, cfg.InputDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultParallel, cfg.Parallel)
	assert.NotEmpty(t, cfg.Home)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aoc.yaml"), []byte(
		"input_dir: from-file\noutput: json\nparallel: 2\nlog_level: info\n"), 0o600))

	t.Setenv("AOC_OUTPUT", "yaml")
	t.Setenv("AOC_LOG_LEVEL", "error")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--log-level", "debug", "--record"}))

	cfg, used, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "aoc.yaml", used)
	assert.Equal(t, "from-file", cfg.InputDir) // file only
	assert.Equal(t, 2, cfg.Parallel)          // file only
	assert.Equal(t, "yaml", cfg.Output)       // env beats file
	assert.Equal(t, "debug", cfg.LogLevel)    // flag beats env
}

func TestLoadUnchangedFlagsDoNotOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AOC_INPUT_DIR", "inputs")

	cfg, _, err := Load("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.InputDir)
}

func TestLoadExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("home: /tmp/aoc-home\n"), 0o600))

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "/tmp/aoc-home", cfg.Home)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"-o", "xml", "--parallel", "0"}))

	_, _, err := Load("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
	assert.Contains(t, err.Error(), "parallel")
}
