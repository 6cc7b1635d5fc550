package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
telegram_bot:
  token: "test-token"
  mode: "webhook"
  webhook_url: "https://bot.example.uz/hook"
admin_ids:
  - 100
  - 200
group:
  id: -1001234567890
  invite_link: "https://t.me/testgroup"
storage:
  type: "memory"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.TelegramBot.Token)
	assert.Equal(t, "webhook", cfg.TelegramBot.Mode)
	assert.Equal(t, int64(-1001234567890), cfg.Group.ID)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, []int64{100, 200}, cfg.AdminIDs)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
telegram_bot:
  token: "test-token"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "polling", cfg.TelegramBot.Mode)
	assert.Equal(t, 2*time.Second, cfg.PollIntervalDuration())
	assert.Equal(t, "json", cfg.Storage.Type)
	assert.Equal(t, "data/user_data.json", cfg.Storage.UsersFile)
	assert.Equal(t, "data/questions.json", cfg.Content.QuestionsFile)
	assert.Equal(t, "logs/bot.log", cfg.Log.Path)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("ADMIN_IDS", "7, 8 ,9")

	path := writeConfig(t, `
telegram_bot:
  token: "file-token"
admin_ids:
  - 100
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.TelegramBot.Token)
	assert.Equal(t, []int64{7, 8, 9}, cfg.AdminIDs)
}

func TestLoadConfig_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	path := writeConfig(t, `
storage:
  type: "memory"
`)
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{100, 200}}
	assert.True(t, cfg.IsAdmin(100))
	assert.False(t, cfg.IsAdmin(300))
}
