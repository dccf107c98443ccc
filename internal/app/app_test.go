package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
telegram:
  token: "test-token"
  run_mode: longpoll
logging:
  level: error
catalog:
  base_url: "http://storage"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	carrier, err := LoadConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	cfg, ok := carrier.(*Config)
	require.True(t, ok)
	assert.Equal(t, "test-token", cfg.Telegram.Token)
	assert.Equal(t, "http://storage", cfg.Catalog.BaseURL)
	assert.Equal(t, 10, cfg.Catalog.TimeoutSeconds)
	require.NotNil(t, carrier.CoreConfig())
}

func TestLoadConfigRequiresCatalogURL(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
telegram:
  token: "test-token"
`))
	require.Error(t, err)
}

func TestBootstrapWiresCommands(t *testing.T) {
	carrier, err := LoadConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	application, err := Bootstrap(carrier)
	require.NoError(t, err)
	a, ok := application.(*App)
	require.True(t, ok)
	defer a.dispatcher.Close()

	for _, cmd := range []string{"/start", "/items", "/filter", "/additem", "/order", "/cancel", "/status"} {
		_, _, found := a.registry.LookupCommand(cmd)
		assert.True(t, found, cmd)
	}

	// Reply keyboard labels route through aliases.
	for label, want := range map[string]string{
		"Показать все":       "/items",
		"Фильтровать":        "/filter",
		"Добавить в корзину": "/additem",
		"Создать заказ":      "/order",
	} {
		key, _, found := a.registry.LookupCommand(label)
		require.True(t, found, label)
		assert.Equal(t, want, key)
	}

	assert.ElementsMatch(t, []string{"filter", "item", "quantity"}, a.registry.ListCallbacks())
	assert.NotNil(t, a.registry.CallbackNotFound())
	assert.NotNil(t, a.registry.TextFallback())

	opts, err := a.TelegramRunOptions()
	require.NoError(t, err)
	assert.Same(t, a.registry, opts.Registry)
	// 7 commands plus the text and callback routes.
	assert.Len(t, opts.Routes, 9)
}

func TestStatusHidden(t *testing.T) {
	carrier, err := LoadConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)
	application, err := Bootstrap(carrier)
	require.NoError(t, err)
	a := application.(*App)
	defer a.dispatcher.Close()

	for _, cmd := range a.registry.ListCommands(true) {
		assert.NotEqual(t, "/status", cmd.Text)
	}
}
