package source

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
)

// Memory is an in-memory Provider for tests and dry runs. As on object
// storage, directories exist implicitly as path prefixes of the stored
// files; MkdirAll additionally records empty directories so freshly created
// language folders are listable before any file lands in them. Safe for
// concurrent use.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
}

var _ Provider = (*Memory)(nil)

// NewMemory returns an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
}

// normPath brings any platform's path form to clean slash-separated keys.
func normPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "./")
	return strings.TrimPrefix(p, "/")
}

func (m *Memory) ReadFile(ctx context.Context, p string) ([]byte, error) {
	m.mu.RLock()
	data, ok := m.files[normPath(p)]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("source: read %s: %w", p, fs.ErrNotExist)
	}
	return bytes.Clone(data), nil
}

func (m *Memory) WriteFile(ctx context.Context, p string, data []byte) error {
	key := normPath(p)
	m.mu.Lock()
	m.files[key] = bytes.Clone(data)
	m.registerParents(key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Exists(ctx context.Context, p string) (bool, error) {
	m.mu.RLock()
	_, ok := m.files[normPath(p)]
	if !ok {
		_, ok = m.dirs[normPath(p)]
	}
	m.mu.RUnlock()
	return ok, nil
}

func (m *Memory) MkdirAll(ctx context.Context, p string) error {
	key := normPath(p)
	m.mu.Lock()
	m.dirs[key] = struct{}{}
	m.registerParents(key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) ListDirs(ctx context.Context, p string) ([]string, error) {
	base := normPath(p)
	prefix := base + "/"
	if base == "" || base == "." {
		prefix = ""
	}

	seen := make(map[string]struct{})
	m.mu.RLock()
	for key := range m.files {
		if rest, ok := strings.CutPrefix(key, prefix); ok {
			if dir, _, nested := strings.Cut(rest, "/"); nested {
				seen[dir] = struct{}{}
			}
		}
	}
	for key := range m.dirs {
		if rest, ok := strings.CutPrefix(key, prefix); ok && rest != "" {
			dir, _, _ := strings.Cut(rest, "/")
			seen[dir] = struct{}{}
		}
	}
	m.mu.RUnlock()

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	return dirs, nil
}

// registerParents records every ancestor directory of key. Callers hold the
// write lock.
func (m *Memory) registerParents(key string) {
	for {
		parent := path.Dir(key)
		if parent == "." || parent == "/" || parent == key {
			return
		}
		m.dirs[parent] = struct{}{}
		key = parent
	}
}
