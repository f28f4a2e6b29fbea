// Package credentials extracts Supabase project credentials from the
// client-side JavaScript configuration file shipped with the app.
//
// The app keeps its project URL and anon key as plain const assignments in
// supabase-config.js. Rather than asking users to duplicate those values,
// the CLI reads them straight out of the file:
//
//	creds, err := credentials.Load("supabase-config.js")
//	if err != nil {
//	    // missing file or missing assignment
//	}
//	fmt.Println(creds.URL, creds.Preview())
package credentials

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// Sentinel errors for extraction failures. Both are setup problems the user
// fixes by editing supabase-config.js; neither is recoverable at runtime.
var (
	// ErrURLNotFound is returned when no SUPABASE_URL assignment matches.
	ErrURLNotFound = errors.New("credentials: SUPABASE_URL not found in config file")

	// ErrAnonKeyNotFound is returned when no SUPABASE_ANON_KEY assignment matches.
	ErrAnonKeyNotFound = errors.New("credentials: SUPABASE_ANON_KEY not found in config file")
)

// Assignment patterns matched against the raw file contents. The quoted
// value is captured verbatim; everything else in the file is ignored.
var (
	urlPattern = regexp.MustCompile(`const SUPABASE_URL = '([^']+)'`)
	keyPattern = regexp.MustCompile(`const SUPABASE_ANON_KEY = '([^']+)'`)
)

// previewLen is how many characters of the anon key are shown in output.
// The key is still plaintext in memory and on the wire; this only keeps the
// full value out of terminal scrollback.
const previewLen = 50

// Credentials holds the pair of values needed to reach a Supabase project
// through its public API surface.
type Credentials struct {
	// URL is the project URL, e.g. https://xyzcompany.supabase.co.
	URL string

	// AnonKey is the client-visible API key. Access through it is
	// constrained by the row-level security policies this tool installs.
	AnonKey string
}

// Load reads the config file at path and extracts both credentials.
// The file is read once in full; extraction is pure pattern matching with
// no JavaScript parsing.
//
// Returns a wrapped I/O error if the file cannot be read, ErrURLNotFound or
// ErrAnonKeyNotFound if an assignment is missing.
func Load(path string) (*Credentials, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(string(content))
}

// Parse extracts credentials from raw config file contents.
// Split out from Load so callers with embedded or already-read content can
// use it directly.
func Parse(content string) (*Credentials, error) {
	urlMatch := urlPattern.FindStringSubmatch(content)
	if urlMatch == nil {
		return nil, ErrURLNotFound
	}

	keyMatch := keyPattern.FindStringSubmatch(content)
	if keyMatch == nil {
		return nil, ErrAnonKeyNotFound
	}

	return &Credentials{
		URL:     urlMatch[1],
		AnonKey: keyMatch[1],
	}, nil
}

// Preview returns the anon key truncated to its first 50 characters with a
// trailing ellipsis. The suffix is always appended, even for short keys.
func (c *Credentials) Preview() string {
	key := c.AnonKey
	if len(key) > previewLen {
		key = key[:previewLen]
	}
	return key + "..."
}
