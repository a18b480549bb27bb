package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logify/logger"
)

// chdir changes the working directory for the duration of the test,
// matching testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// unsetAfter removes variables that godotenv sets directly in the
// process environment.
func unsetAfter(t *testing.T, names ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, n := range names {
			os.Unsetenv(n)
		}
	})
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logify.yml", `
level: debug
context: Orders
contextPrefix: api
withTime: false
logDirName: logs
showLevel: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, logger.Options{
		Level:         logger.DebugLevel,
		Context:       "Orders",
		ContextPrefix: "api",
		ShowLevel:     true,
		ShowContext:   true,
		ShowTime:      false,
		LogDirName:    "logs",
	}, opts)
}

func TestLoad_JSON5(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logify.json5", `{
  // comments and trailing commas are allowed
  level: "warn",
  showContext: false,
  context: "Jobs",
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, logger.WarnLevel, opts.Level)
	assert.Equal(t, "Jobs", opts.Context)
	assert.False(t, opts.ShowContext)
	assert.True(t, opts.ShowTime, "unset keys keep their defaults")
	assert.Equal(t, logger.DefaultLogDirName, opts.LogDirName)
}

func TestLoad_PlainJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logify.json", `{"level": "error", "withTime": true}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, logger.ErrorLevel, opts.Level)
	assert.True(t, opts.ShowTime)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logify.yaml", "level: info\ncontext: File\nwithTime: true\n")
	t.Setenv("LOGIFY_CONTEXT", "Env")
	t.Setenv("LOGIFY_WITH_TIME", "false")
	t.Setenv("LOGIFY_LEVEL", "ERROR")

	cfg, err := Load(path)
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, "Env", opts.Context)
	assert.False(t, opts.ShowTime)
	assert.Equal(t, logger.ErrorLevel, opts.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yml", "level: [unclosed\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestFromEnv_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := FromEnv()
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, logger.DefaultOptions(), opts)
}

func TestFromEnv_InvalidBoolean(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOGIFY_SHOW_LEVEL", "maybe")
	t.Setenv("LOGIFY_SHOW_CONTEXT", "sometimes")

	_, err := FromEnv()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.ErrorContains(t, err, "LOGIFY_SHOW_LEVEL")
	assert.ErrorContains(t, err, "LOGIFY_SHOW_CONTEXT")
}

func TestOptions_InvalidLevel(t *testing.T) {
	cfg := &Config{Level: "loud"}
	_, err := cfg.Options()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "level", verr.Field)
}

func TestFromEnv_DotEnvFiles(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	unsetAfter(t, "LOGIFY_CONTEXT_PREFIX", "LOGIFY_LOG_DIR_NAME")

	writeFile(t, dir, ".env", "LOGIFY_CONTEXT_PREFIX=fromdotenv\nLOGIFY_LOG_DIR_NAME=dotenv_logs\n")
	writeFile(t, dir, ".env.local", "LOGIFY_CONTEXT_PREFIX=fromlocal\n")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "fromlocal", cfg.ContextPrefix, ".env.local wins over .env")
	assert.Equal(t, "dotenv_logs", cfg.LogDirName)
}

func TestFromEnv_EnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	unsetAfter(t, "LOGIFY_CONTEXT_PREFIX")

	writeFile(t, dir, ".env", "LOGIFY_CONTEXT_PREFIX=ignored\n")
	custom := writeFile(t, dir, "custom.env", "LOGIFY_CONTEXT_PREFIX=custom\n")
	t.Setenv("ENV_FILE", custom)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.ContextPrefix)
}

func TestConfig_Builder(t *testing.T) {
	cfg := &Config{Level: "debug", Context: "Built"}
	b, err := cfg.Builder()
	require.NoError(t, err)

	l, err := b.WithRootDir(t.TempDir()).WithWriter(&discard{}).Build()
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, l.Level())
	assert.Equal(t, "Built", l.Context())
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
