package cli

import (
	"bytes"
	"strings"
	"testing"

	apperrors "github.com/jrsteele09/go-roomshare-client/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	t.Run("version flag", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"--version"})

		output := &bytes.Buffer{}
		cmd.SetOut(output)

		err := cmd.Execute()
		require.NoError(t, err)

		assert.Contains(t, output.String(), "roomshare version")
		assert.Contains(t, output.String(), GetVersion())
	})

	t.Run("help flag", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"--help"})

		output := &bytes.Buffer{}
		cmd.SetOut(output)

		err := cmd.Execute()
		require.NoError(t, err)

		helpText := output.String()
		assert.Contains(t, helpText, "RoomShare")
		for _, name := range []string{"login", "register", "logout", "status", "profile", "rooms", "files"} {
			assert.Contains(t, helpText, name)
		}
	})

	t.Run("global flags", func(t *testing.T) {
		t.Setenv("ROOMSHARE_BASE_URL", "")
		t.Setenv("ROOMSHARE_STORAGE", "")
		t.Setenv("LOG_LEVEL", "")
		cmd := NewRootCmd()

		baseURL := cmd.PersistentFlags().Lookup("base-url")
		require.NotNil(t, baseURL)
		assert.Equal(t, "http://localhost:8080/api", baseURL.DefValue)

		storage := cmd.PersistentFlags().Lookup("storage")
		require.NotNil(t, storage)
		assert.Equal(t, "file", storage.DefValue)

		logLevel := cmd.PersistentFlags().Lookup("log-level")
		require.NotNil(t, logLevel)
		assert.Equal(t, "warn", logLevel.DefValue)
	})
}

func TestGetVersion(t *testing.T) {
	version := GetVersion()
	assert.NotEmpty(t, version)
	assert.True(t, strings.HasPrefix(version, "0."))
}

func TestParseID(t *testing.T) {
	id, err := parseID("42", "ID sobe")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseID(bad, "ID sobe")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, bad)
	}
}
