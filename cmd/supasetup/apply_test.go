package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stillwater-labs/supasetup/internal/cli"
	"github.com/stillwater-labs/supasetup/pkg/credentials"
)

func writeAppConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "supabase-config.js")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunApply_MissingCredentials(t *testing.T) {
	path := writeAppConfig(t, "// no assignments here\n")

	err := runApply(path, "", false)
	require.Error(t, err)

	// Credential extraction failures terminate with status 1 before any
	// remote work.
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitGeneral, exitErr.Code)
}

func TestRunApply_UnreadableFile(t *testing.T) {
	err := runApply(filepath.Join(t.TempDir(), "absent.js"), "", false)
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitGeneral, exitErr.Code)
}

func TestRunApply_DryRun(t *testing.T) {
	path := writeAppConfig(t, `const SUPABASE_URL = 'https://proj.supabase.co'
const SUPABASE_ANON_KEY = 'anonkey'
`)

	// Dry-run prints the SQL and never constructs a client.
	err := runApply(path, "", true)
	require.NoError(t, err)
}

func TestBuildRunner_BadProjectURL(t *testing.T) {
	creds := &credentials.Credentials{URL: "not a url", AnonKey: "anon"}
	_, _, err := buildRunner("", creds)
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitGeneral, exitErr.Code)
}
