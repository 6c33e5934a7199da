package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dsclean.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "tags", cfg.Tags.Column)
	assert.Equal(t, "tag_", cfg.Tags.Prefix)
	assert.Equal(t, 1, cfg.Tags.MinCount)
	assert.True(t, cfg.Tags.Encode)
	assert.True(t, cfg.Clean.DropNullColumns)
	assert.Equal(t, "|", cfg.IO.TagDelimiter)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
	assert.Nil(t, cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
tags:
  column: labels
  prefix: has_
  min_count: 10
  strict: true
clean:
  drop_columns: [description, primary_photo]
  mean_columns: [sold_price, year_built]
io:
  tag_delimiter: ";"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "labels", cfg.Tags.Column)
	assert.Equal(t, "has_", cfg.Tags.Prefix)
	assert.Equal(t, 10, cfg.Tags.MinCount)
	assert.True(t, cfg.Tags.Strict)
	assert.True(t, cfg.Tags.Encode, "unset keys keep defaults")
	assert.Equal(t, []string{"description", "primary_photo"}, cfg.Clean.DropColumns)
	assert.Equal(t, []string{"sold_price", "year_built"}, cfg.Clean.MeanColumns)
	assert.Equal(t, ";", cfg.IO.TagDelimiter)

	opts := cfg.Tags.Options()
	assert.Equal(t, "labels", opts.Column)
	assert.Equal(t, 10, opts.MinCount)
	assert.True(t, opts.Strict)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "tags:\n  min_count: 10\n")
	t.Setenv("DSCLEAN_TAGS_MIN_COUNT", "3")
	t.Setenv("DSCLEAN_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Tags.MinCount)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"negative min count": "tags:\n  min_count: -1\n",
		"empty column":       "tags:\n  column: \"\"\n",
		"empty delimiter":    "io:\n  tag_delimiter: \"\"\n",
		"tags dropped":       "clean:\n  drop_columns: [tags]\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "tags: [unclosed\n"))
	assert.Error(t, err)
}
