package source_test

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/source"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("write then read round-trips", func(t *testing.T) {
		t.Parallel()
		m := source.NewMemory()
		require.NoError(t, m.WriteFile(context.Background(), "root/en/app.json", []byte(`{}`)))

		data, err := m.ReadFile(context.Background(), "root/en/app.json")
		require.NoError(t, err)
		require.Equal(t, `{}`, string(data))
	})

	t.Run("missing file reports fs.ErrNotExist", func(t *testing.T) {
		t.Parallel()
		m := source.NewMemory()
		_, err := m.ReadFile(context.Background(), "nope.json")
		require.Error(t, err)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("read returns a detached copy", func(t *testing.T) {
		t.Parallel()
		m := source.NewMemory()
		require.NoError(t, m.WriteFile(context.Background(), "f", []byte("abc")))

		data, err := m.ReadFile(context.Background(), "f")
		require.NoError(t, err)
		data[0] = 'x'

		again, err := m.ReadFile(context.Background(), "f")
		require.NoError(t, err)
		require.Equal(t, "abc", string(again))
	})

	t.Run("exists covers files and directories", func(t *testing.T) {
		t.Parallel()
		m := source.NewMemory()
		require.NoError(t, m.WriteFile(context.Background(), "root/de/app.json", nil))
		require.NoError(t, m.MkdirAll(context.Background(), "root/fr"))

		for _, p := range []string{"root/de/app.json", "root/de", "root/fr", "root"} {
			ok, err := m.Exists(context.Background(), p)
			require.NoError(t, err)
			assert.True(t, ok, "path %s", p)
		}

		ok, err := m.Exists(context.Background(), "root/uk")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("lists immediate subdirectories sorted", func(t *testing.T) {
		t.Parallel()
		m := source.NewMemory()
		require.NoError(t, m.WriteFile(context.Background(), "root/uk/app.json", nil))
		require.NoError(t, m.WriteFile(context.Background(), "root/de/app.json", nil))
		require.NoError(t, m.WriteFile(context.Background(), "root/de/deep/x", nil))
		require.NoError(t, m.WriteFile(context.Background(), "root/stray.txt", nil))
		require.NoError(t, m.MkdirAll(context.Background(), "root/fr"))

		dirs, err := m.ListDirs(context.Background(), "root")
		require.NoError(t, err)
		require.Equal(t, []string{"de", "fr", "uk"}, dirs)
	})

	t.Run("listing a missing path yields nothing", func(t *testing.T) {
		t.Parallel()
		m := source.NewMemory()
		dirs, err := m.ListDirs(context.Background(), "absent")
		require.NoError(t, err)
		require.Empty(t, dirs)
	})

	t.Run("normalizes platform path separators", func(t *testing.T) {
		t.Parallel()
		m := source.NewMemory()
		require.NoError(t, m.WriteFile(context.Background(), `root\en\app.json`, []byte("x")))

		data, err := m.ReadFile(context.Background(), "root/en/app.json")
		require.NoError(t, err)
		require.Equal(t, "x", string(data))
	})
}
