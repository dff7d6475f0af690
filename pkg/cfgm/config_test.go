package cfgm_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251208-go-pkg-tplstr/pkg/cfgm"
	"github.com/lwmacct/251208-go-pkg-tplstr/pkg/tplstr"
)

type testConfig struct {
	Name    string        `json:"name"`
	Debug   bool          `json:"debug"`
	Timeout time.Duration `json:"timeout"`
	Server  struct {
		URL     string `json:"url"`
		Retries int    `json:"max-retries"`
	} `json:"server"`
}

func defaultTestConfig() testConfig {
	cfg := testConfig{Name: "default-app", Timeout: 30 * time.Second}
	cfg.Server.URL = "http://localhost"
	cfg.Server.Retries = 3

	return cfg
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths("nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultTestConfig(), *cfg)
}

func TestLoad_YAMLFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: yaml-app\nserver:\n  url: http://example.com\ntimeout: 5s\n")

	cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "yaml-app", cfg.Name)
	assert.Equal(t, "http://example.com", cfg.Server.URL)
	assert.Equal(t, 3, cfg.Server.Retries, "unset keys keep defaults")
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"name": "json-app", "debug": true}`)

	cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "json-app", cfg.Name)
	assert.True(t, cfg.Debug)
}

func TestLoad_FirstFileWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("name: b\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.yaml"), []byte("name: c\n"), 0o600))

	cfg, err := cfgm.Load(defaultTestConfig(),
		cfgm.WithBaseDir(dir),
		cfgm.WithConfigPaths("a.yaml", "b.yaml", "c.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "b", cfg.Name)
}

func TestLoad_TemplateExpansion(t *testing.T) {
	t.Setenv("CFGM_TEST_HOST", "expanded.example.com")
	path := writeFile(t, "config.yaml", "server:\n  url: https://${CFGM_TEST_HOST}/api\n")

	cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "https://expanded.example.com/api", cfg.Server.URL)

	cfg, err = cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path), cfgm.WithoutTemplateExpansion())
	require.NoError(t, err)
	assert.Equal(t, "https://${CFGM_TEST_HOST}/api", cfg.Server.URL)
}

func TestLoad_TemplateExpansionCustomArgs(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: ${app}-${env}\n")

	args := tplstr.NewArgs().With("app", "svc").With("env", "prod").Build()
	cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path), cfgm.WithTemplateArgs(args))
	require.NoError(t, err)
	assert.Equal(t, "svc-prod", cfg.Name)
}

func TestLoad_TemplateExpansionUndefined(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: ${CFGM_TEST_SURELY_UNSET_VAR}\n")

	_, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
	require.Error(t, err)
	require.ErrorIs(t, err, tplstr.ErrUndefinedKey)
	assert.Contains(t, err.Error(), "expand template in")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "- just\n- a list\n")

	_, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config root must be object")
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Setenv("CFGMTEST_NAME", "env-app")
	t.Setenv("CFGMTEST_SERVER_MAX_RETRIES", "9")
	t.Setenv("CFGMTEST_DEBUG", "true")

	cfg, err := cfgm.Load(defaultTestConfig(),
		cfgm.WithConfigPaths("nonexistent.yaml"),
		cfgm.WithEnvPrefix("CFGMTEST_"),
	)
	require.NoError(t, err)
	assert.Equal(t, "env-app", cfg.Name)
	assert.Equal(t, 9, cfg.Server.Retries)
	assert.True(t, cfg.Debug)
}

func TestMustLoad_Panics(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: [unclosed\n")

	assert.Panics(t, func() {
		cfgm.MustLoad(defaultTestConfig(), cfgm.WithConfigPaths(path))
	})
}

func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, []string{"config.yaml", "config/config.yaml"}, cfgm.DefaultPaths())

	paths := cfgm.DefaultPaths("tplstr")
	assert.Equal(t, ".tplstr.yaml", paths[0])
	assert.Equal(t, "/etc/tplstr/config.yaml", paths[len(paths)-1])
	assert.NotContains(t, paths, "config.yaml")
	assert.NotContains(t, paths, "config/config.yaml")
}

func TestFlatten(t *testing.T) {
	got := cfgm.Flatten(map[string]any{
		"name":   "x",
		"server": map[string]any{"url": "u", "tls": map[string]any{"on": true}},
		"empty":  map[string]any{},
	})

	assert.Equal(t, map[string]any{
		"name":          "x",
		"server.url":    "u",
		"server.tls.on": true,
		"empty":         map[string]any{},
	}, got)
}

func TestParseFile(t *testing.T) {
	path := writeFile(t, "vars.yml", "a: 1\nb:\n  c: two\n")

	got, err := cfgm.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"c": "two"}}, got)

	_, err = cfgm.ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
