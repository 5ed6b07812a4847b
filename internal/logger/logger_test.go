package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/go-roomshare-client/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestRedactor_Redact(t *testing.T) {
	r := logger.NewRedactor()

	tests := []struct {
		name  string
		input string
		gone  string
	}{
		{"bearer header", "Authorization: Bearer abc.def-ghi", "abc.def-ghi"},
		{"raw jwt", "token eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig", "eyJhbGciOiJIUzI1NiJ9"},
		{"json password", `{"email":"a@b.rs","lozinka":"tajna123"}`, "tajna123"},
		{"password field", "password=hunter2", "hunter2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Redact(tt.input)
			require.NotContains(t, out, tt.gone)
			require.Contains(t, out, "[REDACTED]")
		})
	}

	require.Equal(t, "nothing secret", r.Redact("nothing secret"))
}

func TestRedactor_AddPattern(t *testing.T) {
	r := logger.NewRedactor()
	require.Error(t, r.AddPattern("("))
	require.NoError(t, r.AddPattern(`sifra=\S+`))
	require.Equal(t, "[REDACTED]", r.Redact("sifra=ABC123"))
}

func TestNew_RedactsConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(logger.Config{Level: "debug", Console: true, Redaction: true, Out: &buf})
	require.NoError(t, err)
	defer l.Close()

	zl := l.GetZerolog()
	zl.Info().Str("header", "Bearer secret-token").Msg("request")
	require.Contains(t, buf.String(), "[REDACTED]")
	require.NotContains(t, buf.String(), "secret-token")
}

func TestNew_FileAndLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "roomshare.log")
	l, err := logger.New(logger.Config{Level: "warn", File: path})
	require.NoError(t, err)

	zl := l.GetZerolog()
	zl.Info().Msg("dropped")
	zl.Warn().Msg("kept")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "kept")
	require.NotContains(t, string(data), "dropped")
}
