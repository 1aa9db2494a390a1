package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Reminder.Interval)
	assert.Equal(t, 24, cfg.Reminder.HoursBefore)
	assert.Equal(t, 10*time.Second, cfg.Discord.Timeout)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.1, cfg.Tracing.SampleRatio)
	assert.Equal(t, "host=localhost user=postgres password=password dbname=cycles port=5432 sslmode=disable TimeZone=UTC", cfg.Database.DSN())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
reminder:
  interval: 30m
  hours_before: 12
discord:
  webhook_url: https://discord.example/hook
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("CYCLE_REMINDER_HOURS_BEFORE", "6")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Reminder.Interval)
	assert.Equal(t, 6, cfg.Reminder.HoursBefore)
	assert.Equal(t, "https://discord.example/hook", cfg.Discord.WebhookURL)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Server:   ServerConfig{Port: 8080},
		Reminder: ReminderConfig{Interval: time.Minute, HoursBefore: 24},
	}
	assert.NoError(t, cfg.Validate())

	bad := cfg
	bad.Server.Port = 70000
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Reminder.Interval = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Reminder.HoursBefore = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Tracing.SampleRatio = 1.5
	assert.Error(t, bad.Validate())
}
