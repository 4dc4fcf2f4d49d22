package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		body    string
		want    fileConfig
		wantErr bool
	}{
		{
			name: "full",
			body: "level: 1024\nlog:\n  level: debug\n  format: json\n",
			want: fileConfig{Level: "1024", Log: logConfig{Level: "debug", Format: "json"}},
		},
		{
			name: "partial keeps defaults",
			body: "level: ML-KEM-512\n",
			want: fileConfig{Level: "ML-KEM-512", Log: logConfig{Level: "warn", Format: "text"}},
		},
		{
			name: "empty file",
			body: "",
			want: defaultConfig(),
		},
		{name: "unknown level", body: "level: 640\n", wantErr: true},
		{name: "unknown key", body: "levle: 512\n", wantErr: true},
		{name: "bad format", body: "log:\n  format: xml\n", wantErr: true},
		{name: "bad log level", body: "log:\n  level: loud\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile("config.yaml", []byte(tc.body), 0o600))
			got, err := loadConfig("config.yaml")
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigFileDrivesLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("level: 512\n"), 0o600))

	out, _, err := run(t, "--config", "config.yaml", "keygen")
	require.NoError(t, err)
	assert.Contains(t, out, "ML-KEM-512 ENCAPSULATION KEY")

	out, _, err = run(t, "--config", "config.yaml", "--level", "1024", "keygen")
	require.NoError(t, err)
	assert.Contains(t, out, "ML-KEM-1024 ENCAPSULATION KEY")
}

func TestSecurePath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	got, err := securePath("keys/ek.pem")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "keys", "ek.pem"), got)

	for _, p := range []string{"", "..", "../x", "/etc/passwd"} {
		_, err := securePath(p)
		assert.Error(t, err, p)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(logConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	log.Info(t.Context(), "hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger(logConfig{Level: "info", Format: "xml"}, &buf)
	require.Error(t, err)
}
