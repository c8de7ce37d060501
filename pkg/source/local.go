package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// Local serves files from the operating system's filesystem. The zero value
// is ready to use.
type Local struct{}

var _ Provider = Local{}

func (Local) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (Local) WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (Local) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

func (Local) MkdirAll(ctx context.Context, path string) error {
	return os.MkdirAll(path, 0o755)
}

func (Local) ListDirs(ctx context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}
