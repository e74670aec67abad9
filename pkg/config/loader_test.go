package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romeorayyy/beyonddevblog/pkg/config"
)

type successConfig struct {
	Name    string `env:"CFG_TEST_NAME" envDefault:"default"`
	Port    int    `env:"CFG_TEST_PORT" envDefault:"8080"`
	Enabled bool   `env:"CFG_TEST_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type envFileConfig struct {
	Value string `env:"CFG_TEST_FROM_FILE"`
}

func TestLoad(t *testing.T) {
	t.Run("parses environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFG_TEST_NAME", "blog")
		t.Setenv("CFG_TEST_PORT", "9090")
		t.Setenv("CFG_TEST_ENABLED", "false")

		var cfg successConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, successConfig{Name: "blog", Port: 9090, Enabled: false}, cfg)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFG_TEST_NAME", "first")

		var first successConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CFG_TEST_NAME", "second")
		var second successConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Name)

		config.Reset()
		var third successConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Name)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()
		require.NoError(t, os.Unsetenv("CFG_TEST_REQUIRED"))

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *successConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads explicit file", func(t *testing.T) {
		config.Reset()
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FROM_FILE=from-file\n"), 0o600))
		t.Setenv("CFG_TEST_FROM_FILE", "")
		require.NoError(t, os.Unsetenv("CFG_TEST_FROM_FILE"))

		require.NoError(t, config.LoadEnv(path))

		var cfg envFileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-file", cfg.Value)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no files is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
