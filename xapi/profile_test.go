package xapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fw1.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadProfile(t *testing.T) {
	check := assert.New(t)
	path := writeProfile(t, `
hostname: fw1.example.com
port: 8443
username: admin
password: secret
vsys: vsys3
insecure-skip-verify: true
`)
	p, err := LoadProfile(path)
	require.NoError(t, err)
	check.Equal("fw1.example.com", p.Hostname)
	check.Equal("vsys3", p.Vsys)

	cfg := p.Config()
	check.Equal("fw1.example.com", cfg.Hostname)
	check.Equal(8443, cfg.Port)
	check.Equal("admin", cfg.Username)
	check.True(cfg.InsecureSkipVerify)
}

func TestLoadProfileErrors(t *testing.T) {
	check := assert.New(t)

	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	check.Error(err)

	_, err = LoadProfile(writeProfile(t, "hostname: [broken"))
	check.Error(err)

	_, err = LoadProfile(writeProfile(t, "username: admin"))
	check.Error(err, "a profile without a hostname is rejected")
}
