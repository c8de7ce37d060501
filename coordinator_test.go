package lingo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo"
	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/source"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

func settingsForm() *uitree.Node {
	form := uitree.NewNode("SettingsForm", "Form")
	form.SetAttr("Caption", "Settings")
	save := uitree.NewNode("SaveButton", "Button")
	save.SetAttr("Caption", "Save")
	form.Add(save)
	return form
}

func germanForm() *uitree.Node {
	form := uitree.NewNode("SettingsForm", "Form")
	form.SetAttr("Caption", "Einstellungen")
	save := uitree.NewNode("SaveButton", "Button")
	save.SetAttr("Caption", "Speichern")
	form.Add(save)
	return form
}

// seedFile saves a tree through a throwaway engine so tests do not hand-craft
// format syntax.
func seedFile(t *testing.T, mem *source.Memory, formatID, path string, tree *uitree.Node) {
	t.Helper()
	eng, err := engine.NewFor(formatID, engine.WithProvider(mem), engine.WithCreateMissing(true))
	require.NoError(t, err)
	require.NoError(t, eng.Save(context.Background(), tree, path))
}

func caption(t *testing.T, c *uitree.Node) string {
	t.Helper()
	v, ok := c.Attr("Caption")
	require.True(t, ok)
	return v
}

func TestCoordinatorPathResolution(t *testing.T) {
	t.Parallel()

	t.Run("follows the root language name convention", func(t *testing.T) {
		t.Parallel()
		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(source.NewMemory()),
			lingo.WithFormat(lingo.FormatJSON),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("en"),
		)
		require.Equal(t, "tr/en/SettingsForm.json", c.FilePath())
	})

	t.Run("base name override", func(t *testing.T) {
		t.Parallel()
		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(source.NewMemory()),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("en"),
			lingo.WithBaseName("main"),
		)
		require.Equal(t, "tr/en/main.lng", c.FilePath())
	})

	t.Run("unresolved without a language", func(t *testing.T) {
		t.Parallel()
		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(source.NewMemory()),
			lingo.WithRoot("tr"),
		)
		require.Empty(t, c.FilePath())
	})

	t.Run("nil tree needs a base name", func(t *testing.T) {
		t.Parallel()
		c := lingo.NewCoordinator(nil,
			lingo.WithProvider(source.NewMemory()),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("en"),
		)
		require.Empty(t, c.FilePath())

		c = lingo.NewCoordinator(nil,
			lingo.WithProvider(source.NewMemory()),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("en"),
			lingo.WithBaseName("runtime"),
		)
		require.Equal(t, "tr/en/runtime.lng", c.FilePath())
	})
}

func TestCoordinatorStateMachine(t *testing.T) {
	t.Parallel()

	t.Run("construction resolves but does not load", func(t *testing.T) {
		t.Parallel()
		mem := source.NewMemory()
		seedFile(t, mem, "lng", "tr/de/SettingsForm.lng", germanForm())

		form := settingsForm()
		c := lingo.NewCoordinator(form,
			lingo.WithProvider(mem),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("de"),
		)
		require.Equal(t, "tr/de/SettingsForm.lng", c.FilePath())
		require.Equal(t, "Settings", caption(t, form))

		require.NoError(t, c.Load(context.Background()))
		require.Equal(t, "Einstellungen", caption(t, form))
	})

	t.Run("language change reloads", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		seedFile(t, mem, "lng", "tr/de/SettingsForm.lng", germanForm())

		form := settingsForm()
		c := lingo.NewCoordinator(form,
			lingo.WithProvider(mem),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("en"),
		)

		require.NoError(t, c.SetLanguage(ctx, "de"))
		require.Equal(t, "tr/de/SettingsForm.lng", c.FilePath())
		require.Equal(t, "Einstellungen", caption(t, form))
		require.Equal(t, "Speichern", caption(t, form.Child("SaveButton")))
	})

	t.Run("explicit file path derives root and language", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		seedFile(t, mem, "lng", "elsewhere/uk/Custom.lng", germanForm())
		seedFile(t, mem, "lng", "elsewhere/de/SettingsForm.lng", germanForm())

		form := settingsForm()
		c := lingo.NewCoordinator(form, lingo.WithProvider(mem))

		require.NoError(t, c.SetFilePath(ctx, "elsewhere/uk/Custom.lng"))
		require.Equal(t, "uk", c.Language())
		require.Equal(t, "elsewhere", c.RootPath())
		require.Equal(t, "Einstellungen", caption(t, form))

		// The next language change restores the naming convention.
		require.NoError(t, c.SetLanguage(ctx, "de"))
		require.Equal(t, "elsewhere/de/SettingsForm.lng", c.FilePath())
	})

	t.Run("format change recreates the engine and reloads", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()

		jsonTree := germanForm()
		jsonTree.SetAttr("Caption", "aus JSON")
		seedFile(t, mem, "json", "tr/de/SettingsForm.json", jsonTree)
		lngTree := germanForm()
		lngTree.SetAttr("Caption", "aus LNG")
		seedFile(t, mem, "lng", "tr/de/SettingsForm.lng", lngTree)

		form := settingsForm()
		c := lingo.NewCoordinator(form,
			lingo.WithProvider(mem),
			lingo.WithFormat(lingo.FormatJSON),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("de"),
		)
		require.NoError(t, c.Load(ctx))
		require.Equal(t, "aus JSON", caption(t, form))

		require.NoError(t, c.SetFormat(ctx, lingo.FormatLNG))
		require.Equal(t, "tr/de/SettingsForm.lng", c.FilePath())
		require.Equal(t, "aus LNG", caption(t, form))
	})

	t.Run("load is silent when not ready", func(t *testing.T) {
		t.Parallel()
		c := lingo.NewCoordinator(settingsForm(), lingo.WithProvider(source.NewMemory()))
		require.NoError(t, c.Load(context.Background()))
	})

	t.Run("save without a path is a configuration error", func(t *testing.T) {
		t.Parallel()
		c := lingo.NewCoordinator(settingsForm(), lingo.WithProvider(source.NewMemory()))
		err := c.Save(context.Background())
		require.ErrorIs(t, err, lingo.ErrNoFilePath)
		require.ErrorIs(t, err, lingo.ErrConfig)
	})

	t.Run("save and load round-trip", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()

		form := settingsForm()
		c := lingo.NewCoordinator(form,
			lingo.WithProvider(mem),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("en"),
			lingo.WithCreateMissing(true),
		)
		require.NoError(t, c.Save(ctx))

		form.SetAttr("Caption", "scribbled")
		require.NoError(t, c.Load(ctx))
		require.Equal(t, "Settings", caption(t, form))
	})

	t.Run("explicit trees and files", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()

		c := lingo.NewCoordinator(nil,
			lingo.WithProvider(mem),
			lingo.WithCreateMissing(true),
		)
		require.NoError(t, c.SaveTree(ctx, germanForm(), "tr/de/SettingsForm.lng"))

		form := settingsForm()
		require.NoError(t, c.LoadTree(ctx, form, "tr/de/SettingsForm.lng"))
		require.Equal(t, "Einstellungen", caption(t, form))
	})
}

func TestCoordinatorHooks(t *testing.T) {
	t.Parallel()

	t.Run("cancelled before-load leaves everything untouched", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		seedFile(t, mem, "lng", "tr/de/SettingsForm.lng", germanForm())

		form := settingsForm()
		c := lingo.NewCoordinator(form,
			lingo.WithProvider(mem),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("en"),
			lingo.WithBeforeLoad(func(*lingo.Coordinator) bool { return false }),
		)
		c.Store().Set("Greeting", "Hallo")

		require.NoError(t, c.SetLanguage(ctx, "de"))
		require.Equal(t, "Settings", caption(t, form))
		require.Equal(t, "Hallo", c.Translate("Greeting"))
	})

	t.Run("cancelled before-save writes nothing", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(mem),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("en"),
			lingo.WithCreateMissing(true),
			lingo.WithBeforeSave(func(*lingo.Coordinator) bool { return false }),
		)

		require.NoError(t, c.Save(ctx))
		ok, err := mem.Exists(ctx, "tr/en/SettingsForm.lng")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("after hooks fire on success", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		seedFile(t, mem, "lng", "tr/de/SettingsForm.lng", germanForm())

		var loaded, saved int
		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(mem),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("de"),
			lingo.WithCreateMissing(true),
			lingo.WithAfterLoad(func(*lingo.Coordinator) { loaded++ }),
			lingo.WithAfterSave(func(*lingo.Coordinator) { saved++ }),
		)

		require.NoError(t, c.Load(ctx))
		require.NoError(t, c.Save(ctx))
		assert.Equal(t, 1, loaded)
		assert.Equal(t, 1, saved)
	})

	t.Run("missing file goes to the error hook", func(t *testing.T) {
		t.Parallel()
		var hooked error
		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(source.NewMemory()),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("de"),
			lingo.WithErrorHook(func(err error) { hooked = err }),
		)

		require.NoError(t, c.Load(context.Background()))
		require.ErrorIs(t, hooked, lingo.ErrMissingFile)
		require.ErrorIs(t, hooked, lingo.ErrDomain)
	})

	t.Run("unknown format goes to the error hook", func(t *testing.T) {
		t.Parallel()
		var hooked error
		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(source.NewMemory()),
			lingo.WithFormat("exotic"),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("de"),
			lingo.WithErrorHook(func(err error) { hooked = err }),
		)

		require.NoError(t, c.Load(context.Background()))
		require.ErrorIs(t, hooked, lingo.ErrUnknownFormat)
		require.ErrorIs(t, hooked, lingo.ErrConfig)
	})

	t.Run("parse failures are returned, not hooked", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		require.NoError(t, mem.WriteFile(ctx, "tr/de/SettingsForm.json", []byte("{broken")))

		var hooked error
		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(mem),
			lingo.WithFormat(lingo.FormatJSON),
			lingo.WithRoot("tr"),
			lingo.WithLanguage("en"),
			lingo.WithErrorHook(func(err error) { hooked = err }),
		)

		err := c.SetLanguage(ctx, "de")
		require.Error(t, err)
		assert.NotErrorIs(t, err, lingo.ErrDomain)
		assert.NotErrorIs(t, err, lingo.ErrConfig)
		assert.NoError(t, hooked)
	})
}

func TestCoordinatorTranslate(t *testing.T) {
	t.Parallel()

	t.Run("local store wins over the server", func(t *testing.T) {
		t.Parallel()
		server := lingo.NewServer()
		server.Store().Set("Greeting", "vom Server")

		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(source.NewMemory()),
			lingo.WithServer(server),
		)
		c.Store().Set("Greeting", "lokal")

		require.Equal(t, "lokal", c.Translate("Greeting"))
	})

	t.Run("falls back to the server store", func(t *testing.T) {
		t.Parallel()
		server := lingo.NewServer()
		server.Store().Set("Greeting", "vom Server")

		c := lingo.NewCoordinator(settingsForm(),
			lingo.WithProvider(source.NewMemory()),
			lingo.WithServer(server),
		)
		require.Equal(t, "vom Server", c.Translate("Greeting"))
	})

	t.Run("returns the input without any hit", func(t *testing.T) {
		t.Parallel()
		c := lingo.NewCoordinator(settingsForm(), lingo.WithProvider(source.NewMemory()))
		require.Equal(t, "Hello", c.Translate("Hello"))
	})

	t.Run("coordinators can share one store", func(t *testing.T) {
		t.Parallel()
		shared := lingo.NewStore()
		a := lingo.NewCoordinator(settingsForm(), lingo.WithProvider(source.NewMemory()), lingo.WithStore(shared))
		b := lingo.NewCoordinator(settingsForm(), lingo.WithProvider(source.NewMemory()), lingo.WithStore(shared))

		a.Store().Set("Greeting", "Hallo")
		require.Equal(t, "Hallo", b.Translate("Greeting"))
	})
}
