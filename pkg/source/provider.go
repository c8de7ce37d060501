// Package source abstracts where translation files live. Engines, the
// coordinator and the server read and write only through a Provider, so the
// same code serves a local languages directory, an S3 bucket or an in-memory
// tree in tests.
//
// All implementations report a missing file with fs.ErrNotExist somewhere in
// the error chain, whatever the backend, so callers distinguish "file is not
// there yet" from real failures with a single errors.Is check.
package source

import "context"

// Provider is the file access surface the translation machinery needs.
type Provider interface {
	// ReadFile returns the whole content of the file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile replaces the file at path, creating it if absent.
	WriteFile(ctx context.Context, path string, data []byte) error
	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) (bool, error)
	// MkdirAll ensures the directory at path exists. Backends without real
	// directories treat it as a no-op.
	MkdirAll(ctx context.Context, path string) error
	// ListDirs returns the names of the immediate subdirectories of path in
	// sorted order. A missing path yields an empty list, not an error.
	ListDirs(ctx context.Context, path string) ([]string, error)
}
