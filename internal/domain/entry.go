package domain

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// DownloadEntry pairs an output filename with the URL it is fetched from
type DownloadEntry struct {
	Filename string
	URL      string
}

// Validate checks that the entry can be fetched and stored.
// Filenames must be a single path element so writes stay inside the output directory.
func (e DownloadEntry) Validate() error {
	if e.Filename == "" {
		return fmt.Errorf("%w: empty filename", ErrInvalidEntry)
	}
	if e.Filename != filepath.Base(e.Filename) || strings.ContainsAny(e.Filename, `/\`) || e.Filename == "." || e.Filename == ".." {
		return fmt.Errorf("%w: filename %q is not a plain file name", ErrInvalidEntry, e.Filename)
	}

	u, err := url.Parse(e.URL)
	if err != nil {
		return fmt.Errorf("%w: url %q: %v", ErrInvalidEntry, e.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: url %q must be http or https", ErrInvalidEntry, e.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url %q has no host", ErrInvalidEntry, e.URL)
	}
	return nil
}

// String returns "filename <- url"
func (e DownloadEntry) String() string {
	return e.Filename + " <- " + e.URL
}
