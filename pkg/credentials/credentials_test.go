package credentials

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `// Supabase configuration
const SUPABASE_URL = 'https://xyzcompany.supabase.co';
const SUPABASE_ANON_KEY = 'eyJhbGciOiJIUzI1NiJ9.anon';

const supabase = window.supabase.createClient(SUPABASE_URL, SUPABASE_ANON_KEY);
`

func TestParse(t *testing.T) {
	creds, err := Parse(sampleConfig)
	require.NoError(t, err)
	assert.Equal(t, "https://xyzcompany.supabase.co", creds.URL)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.anon", creds.AnonKey)
}

func TestParse_ExactSubstrings(t *testing.T) {
	// Values must come back byte-for-byte, including anything unusual the
	// user put inside the quotes.
	content := `const SUPABASE_URL = 'https://x.supabase.co/path?a=b'
const SUPABASE_ANON_KEY = 'key with spaces and "quotes"'`

	creds, err := Parse(content)
	require.NoError(t, err)
	assert.Equal(t, "https://x.supabase.co/path?a=b", creds.URL)
	assert.Equal(t, `key with spaces and "quotes"`, creds.AnonKey)
}

func TestParse_MissingURL(t *testing.T) {
	content := `const SUPABASE_ANON_KEY = 'abc';`

	_, err := Parse(content)
	require.ErrorIs(t, err, ErrURLNotFound)
}

func TestParse_MissingKey(t *testing.T) {
	content := `const SUPABASE_URL = 'https://x.supabase.co';`

	_, err := Parse(content)
	require.ErrorIs(t, err, ErrAnonKeyNotFound)
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, ErrURLNotFound)
}

func TestParse_IgnoresOtherContent(t *testing.T) {
	content := `import { createClient } from '@supabase/supabase-js'
// pile of unrelated code
function init() { return 42; }
const SUPABASE_URL = 'https://proj.supabase.co'
const OTHER_THING = 'ignored'
const SUPABASE_ANON_KEY = 'anonkey'
export default init;`

	creds, err := Parse(content)
	require.NoError(t, err)
	assert.Equal(t, "https://proj.supabase.co", creds.URL)
	assert.Equal(t, "anonkey", creds.AnonKey)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "supabase-config.js")
	err := os.WriteFile(path, []byte(sampleConfig), 0o644)
	require.NoError(t, err)

	creds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://xyzcompany.supabase.co", creds.URL)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.js"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestPreview_LongKey(t *testing.T) {
	// 51 characters: preview is the first 50 plus the ellipsis.
	key := "abcdefghijklmnopqrstuvwxyz0123456789ABCDEFGHIJKLMNOP"[:51]
	creds := &Credentials{AnonKey: key}

	preview := creds.Preview()
	assert.Equal(t, key[:50]+"...", preview)
	assert.Len(t, preview, 53)
}

func TestPreview_ShortKey(t *testing.T) {
	// Short keys keep the ellipsis suffix.
	creds := &Credentials{AnonKey: "short"}
	assert.Equal(t, "short...", creds.Preview())
}

func TestPreview_NeverLeaksFullKey(t *testing.T) {
	key := strings.Repeat("k", 200)
	creds := &Credentials{AnonKey: key}
	assert.NotContains(t, creds.Preview(), key)
}
