package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	t.Run("no env file", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.Error(t, loadEnvFile())
	})

	t.Run("loads without overriding", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.NoError(t, os.WriteFile(".env", []byte("ASSETKIT_TEST_A=from-file\nASSETKIT_TEST_B=\"quoted\"\n"), 0o600))
		t.Setenv("ASSETKIT_TEST_A", "from-env")
		t.Setenv("ASSETKIT_TEST_B", "")
		require.NoError(t, os.Unsetenv("ASSETKIT_TEST_B"))

		require.NoError(t, loadEnvFile())
		assert.Equal(t, "from-env", os.Getenv("ASSETKIT_TEST_A"))
		assert.Equal(t, "quoted", os.Getenv("ASSETKIT_TEST_B"))
	})

	t.Run("falls back to .env.local", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.NoError(t, os.WriteFile(".env.local", []byte("ASSETKIT_TEST_C=local\n"), 0o600))
		t.Setenv("ASSETKIT_TEST_C", "")
		require.NoError(t, os.Unsetenv("ASSETKIT_TEST_C"))

		require.NoError(t, loadEnvFile())
		assert.Equal(t, "local", os.Getenv("ASSETKIT_TEST_C"))
	})
}
