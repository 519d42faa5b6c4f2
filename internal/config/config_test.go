package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), []string{"-env-file", ""})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Addr:      DefaultAddr,
		DBPath:    DefaultDBPath,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}, cfg)
}

func TestPrecedence(t *testing.T) {
	file := writeFile(t, "todo.toml", `
addr = ":4000"
db_path = "from-file.db"
log_level = "warn"
`)
	t.Setenv("TODO_DB_PATH", "from-env.db")
	t.Setenv("TODO_LOG_LEVEL", "error")

	cfg, err := Load(newFlagSet(), []string{"-env-file", "", "-config", file, "-log-level", "debug"})
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Addr, "file overrides default")
	assert.Equal(t, "from-env.db", cfg.DBPath, "env overrides file")
	assert.Equal(t, "debug", cfg.LogLevel, "flag overrides env")
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
}

func TestConfigFromEnvPath(t *testing.T) {
	file := writeFile(t, "todo.toml", `log_format = "json"`)
	t.Setenv("TODO_CONFIG", file)

	cfg, err := Load(newFlagSet(), []string{"-env-file", ""})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestDotEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "TODO_ADDR=:5000\n")
	t.Setenv("TODO_ADDR", "")
	require.NoError(t, os.Unsetenv("TODO_ADDR"))

	cfg, err := Load(newFlagSet(), []string{"-env-file", envFile})
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Addr)
}

func TestDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	envFile := writeFile(t, ".env", "TODO_DB_PATH=dotenv.db\n")
	t.Setenv("TODO_DB_PATH", "real.db")

	cfg, err := Load(newFlagSet(), []string{"-env-file", envFile})
	require.NoError(t, err)
	assert.Equal(t, "real.db", cfg.DBPath)
}

func TestMissingDotEnvIgnored(t *testing.T) {
	_, err := Load(newFlagSet(), []string{"-env-file", filepath.Join(t.TempDir(), "absent.env")})
	assert.NoError(t, err)
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad log format", []string{"-log-format", "xml"}},
		{"empty addr", []string{"-addr", " "}},
		{"missing config file", []string{"-config", "/nonexistent/todo.toml"}},
		{"unknown flag", []string{"-port", "3000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newFlagSet(), append([]string{"-env-file", ""}, tt.args...))
			assert.Error(t, err)
		})
	}
}
