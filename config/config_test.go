package config

import (
	"testing"

	"github.com/NickyBoy89/java2go-rename/rename"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
	require.Equal(t, rename.DefaultSuffixes, cfg.RenameSuffixes())
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte(`
format: yaml
suffixes:
  argument: Param
`), &cfg))

	require.Equal(t, "yaml", cfg.Format)
	require.Equal(t, "go", cfg.Spelling)
	require.Equal(t, rename.Suffixes{
		ShadowSeparator: "_",
		MethodCollision: "_",
		Argument:        "Param",
	}, cfg.RenameSuffixes())
	require.NoError(t, cfg.Validate())
}

func TestParseEmpty(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse(nil, &cfg))
	require.Equal(t, Default(), cfg)
}

func TestParseUnknownKey(t *testing.T) {
	cfg := Default()
	require.Error(t, Parse([]byte("suffix: Arg\n"), &cfg))
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load("../testfiles/rename/config.yaml")
	require.NoError(t, err)
	require.Equal(t, "verbatim", cfg.Spelling)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, "Param", cfg.Suffixes.Argument)

	_, err = Load("../testfiles/rename/missing.yaml")
	require.ErrorContains(t, err, "reading config")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
		err    string
	}{
		{"spelling", func(c *Config) { c.Spelling = "camel" }, "unknown spelling"},
		{"format", func(c *Config) { c.Format = "xml" }, "unknown format"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "not a valid logrus Level"},
		{"empty suffix", func(c *Config) { c.Suffixes.Argument = "" }, "suffix argument: must not be empty"},
		{"invalid suffix", func(c *Config) { c.Suffixes.ShadowSeparator = "-" }, "suffix shadow_separator"},
		{"first invalid suffix", func(c *Config) {
			c.Suffixes.MethodCollision = "$"
			c.Suffixes.Argument = "."
		}, "suffix method_collision"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			require.ErrorContains(t, cfg.Validate(), tc.err)
		})
	}
}
