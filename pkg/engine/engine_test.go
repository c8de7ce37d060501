package engine_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/keycodec"
	"github.com/dmitrymomot/lingo/pkg/langinfo"
	"github.com/dmitrymomot/lingo/pkg/source"
	"github.com/dmitrymomot/lingo/pkg/store"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

// settingsForm builds a small form tree with awkward values on purpose:
// multiline captions, pipes and tildes must all survive a round trip.
func settingsForm() *uitree.Node {
	form := uitree.NewNode("SettingsForm", "Form")
	form.SetAttr("Caption", "Settings")

	save := uitree.NewNode("SaveButton", "Button")
	save.SetAttr("Caption", "Save")
	save.SetAttr("Hint", "Saves your changes.\nNothing is sent anywhere.")

	legal := uitree.NewNode("LegalLabel", "Label")
	legal.SetAttr("Caption", "Terms | Privacy ~ 2026")

	form.Add(save, legal)
	return form
}

func newEngine(t *testing.T, id string, opts ...engine.Option) *engine.Engine {
	t.Helper()
	eng, err := engine.NewFor(id, opts...)
	require.NoError(t, err)
	return eng
}

func TestEngineRoundTrip(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"json", "yaml", "toml", "lng", "clng"} {
		t.Run(id+" restores saved values", func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			mem := source.NewMemory()
			eng := newEngine(t, id, engine.WithProvider(mem), engine.WithCreateMissing(true))
			path := "root/en/SettingsForm" + eng.Ext()

			form := settingsForm()
			eng.SetString("Are you sure?", "Are you *really* sure?")
			require.NoError(t, eng.Save(ctx, form, path))

			// Scribble over every attribute, then load the file back.
			uitree.Walk(form, func(_ string, c uitree.Container) bool {
				for _, a := range uitree.Attrs(c) {
					a.Set("SCRIBBLED")
				}
				return true
			})

			fresh := newEngine(t, id, engine.WithProvider(mem))
			st := store.New()
			require.NoError(t, fresh.Load(ctx, form, path, st))

			caption, _ := form.Attr("Caption")
			require.Equal(t, "Settings", caption)
			hint, _ := form.Child("SaveButton").Attr("Hint")
			require.Equal(t, "Saves your changes.\nNothing is sent anywhere.", hint)
			legal, _ := form.Child("LegalLabel").Attr("Caption")
			require.Equal(t, "Terms | Privacy ~ 2026", legal)

			require.Equal(t, "Are you *really* sure?", fresh.Translate("Are you sure?"))
			got, ok := st.TryGet("Are you sure?")
			require.True(t, ok)
			require.Equal(t, "Are you *really* sure?", got)
		})
	}
}

func TestEngineLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file is a domain error", func(t *testing.T) {
		t.Parallel()
		eng := newEngine(t, "json", engine.WithProvider(source.NewMemory()))
		err := eng.Load(context.Background(), settingsForm(), "root/de/absent.json", nil)
		require.ErrorIs(t, err, engine.ErrMissingFile)
		require.ErrorIs(t, err, engine.ErrDomain)
		require.ErrorContains(t, err, "root/de/absent.json")
	})

	t.Run("empty path is a configuration error", func(t *testing.T) {
		t.Parallel()
		eng := newEngine(t, "json")
		err := eng.Load(context.Background(), settingsForm(), "", nil)
		require.ErrorIs(t, err, engine.ErrNoFilePath)
		require.ErrorIs(t, err, engine.ErrConfig)
	})

	t.Run("auto-create materializes a starter file", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		eng := newEngine(t, "json", engine.WithProvider(mem), engine.WithCreateMissing(true))
		form := settingsForm()

		require.NoError(t, eng.Load(ctx, form, "root/en/SettingsForm.json", nil))

		ok, err := mem.Exists(ctx, "root/en/SettingsForm.json")
		require.NoError(t, err)
		require.True(t, ok)

		// The starter file carries the tree's own values back.
		caption, _ := form.Attr("Caption")
		require.Equal(t, "Settings", caption)
	})

	t.Run("load replaces the runtime dictionary", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()

		writer := newEngine(t, "lng", engine.WithProvider(mem), engine.WithCreateMissing(true))
		writer.SetString("Hello", "Hallo")
		require.NoError(t, writer.Save(ctx, nil, "root/de/runtime.lng"))

		reader := newEngine(t, "lng", engine.WithProvider(mem))
		reader.SetString("Stale", "should vanish")
		require.NoError(t, reader.Load(ctx, nil, "root/de/runtime.lng", nil))

		require.Equal(t, "Hallo", reader.Translate("Hello"))
		require.Equal(t, "Stale", reader.Translate("Stale"))
	})

	t.Run("nil root loads runtime strings only", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		eng := newEngine(t, "json", engine.WithProvider(mem), engine.WithCreateMissing(true))
		eng.SetString("Cancel", "Abbrechen")
		require.NoError(t, eng.Save(ctx, nil, "root/de/runtime.json"))

		data, err := mem.ReadFile(ctx, "root/de/runtime.json")
		require.NoError(t, err)
		assert.Contains(t, string(data), keycodec.Hash("Cancel"))
		assert.NotContains(t, string(data), "SettingsForm")
	})
}

func TestEngineEligibility(t *testing.T) {
	t.Parallel()

	t.Run("excluded attributes never reach the file", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		eng := newEngine(t, "json",
			engine.WithProvider(mem),
			engine.WithCreateMissing(true),
			engine.WithExcludeAttrs("Hint"),
		)

		require.NoError(t, eng.Save(ctx, settingsForm(), "root/en/f.json"))
		data, err := mem.ReadFile(ctx, "root/en/f.json")
		require.NoError(t, err)
		assert.NotContains(t, string(data), "Hint")
		assert.Contains(t, string(data), "Caption")
	})

	t.Run("excluded types prune the whole subtree", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		eng := newEngine(t, "json",
			engine.WithProvider(mem),
			engine.WithCreateMissing(true),
			engine.WithExcludeTypes("Button"),
		)

		require.NoError(t, eng.Save(ctx, settingsForm(), "root/en/f.json"))
		data, err := mem.ReadFile(ctx, "root/en/f.json")
		require.NoError(t, err)
		assert.NotContains(t, string(data), "SaveButton")
		assert.Contains(t, string(data), "LegalLabel")
	})

	t.Run("identity attribute is never persisted", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		eng := newEngine(t, "json", engine.WithProvider(mem), engine.WithCreateMissing(true))

		form := settingsForm()
		form.SetAttr("Name", "sneaky")
		require.NoError(t, eng.Save(ctx, form, "root/en/f.json"))

		data, err := mem.ReadFile(ctx, "root/en/f.json")
		require.NoError(t, err)
		assert.NotContains(t, string(data), "sneaky")
	})

	t.Run("action-bound captions are saved but not overwritten", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		eng := newEngine(t, "json",
			engine.WithProvider(mem),
			engine.WithCreateMissing(true),
			engine.WithExcludeOnAction(true),
		)

		form := settingsForm()
		actioned := uitree.NewNode("RunButton", "Button")
		actioned.SetAttr("Caption", "Execute")
		actioned.SetAttr("Placeholder", "type here")
		actioned.SetAction(true)
		form.Add(actioned)

		require.NoError(t, eng.Save(ctx, form, "root/en/f.json"))

		// Defensive persistence: the action-bound caption is in the file.
		data, err := mem.ReadFile(ctx, "root/en/f.json")
		require.NoError(t, err)
		assert.Contains(t, string(data), "Execute")

		// A translated file must not override the action's caption, while
		// unmanaged attributes and action-free containers still update.
		german := settingsForm()
		german.SetAttr("Caption", "Einstellungen")
		translated := uitree.NewNode("RunButton", "Button")
		translated.SetAttr("Caption", "Ausführen")
		translated.SetAttr("Placeholder", "hier tippen")
		german.Add(translated)
		require.NoError(t, eng.Save(ctx, german, "root/de/f.json"))

		require.NoError(t, eng.Load(ctx, form, "root/de/f.json", nil))

		caption, _ := actioned.Attr("Caption")
		require.Equal(t, "Execute", caption)
		placeholder, _ := actioned.Attr("Placeholder")
		require.Equal(t, "hier tippen", placeholder)
		formCaption, _ := form.Attr("Caption")
		require.Equal(t, "Einstellungen", formCaption)
	})
}

func TestEngineMaterialize(t *testing.T) {
	t.Parallel()

	t.Run("grows a node tree from a file", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()

		src := newEngine(t, "lng", engine.WithProvider(mem), engine.WithCreateMissing(true))
		src.SetString("Bye", "Tschüss")
		require.NoError(t, src.Save(ctx, settingsForm(), "root/en/f.lng"))

		sponge := uitree.NewNode("", "")
		dst := newEngine(t, "lng",
			engine.WithProvider(mem),
			engine.WithMaterializer(engine.MaterializeNode),
		)
		require.NoError(t, dst.Load(ctx, sponge, "root/en/f.lng", nil))

		form := sponge.Child("SettingsForm")
		require.NotNil(t, form)
		caption, ok := form.Attr("Caption")
		require.True(t, ok)
		require.Equal(t, "Settings", caption)

		hint, _ := form.Child("SaveButton").Attr("Hint")
		require.Equal(t, "Saves your changes.\nNothing is sent anywhere.", hint)
		require.Equal(t, "Tschüss", dst.Translate("Bye"))
	})

	t.Run("without a materializer unknown names are skipped", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()

		src := newEngine(t, "lng", engine.WithProvider(mem), engine.WithCreateMissing(true))
		require.NoError(t, src.Save(ctx, settingsForm(), "root/en/f.lng"))

		sponge := uitree.NewNode("", "")
		dst := newEngine(t, "lng", engine.WithProvider(mem))
		require.NoError(t, dst.Load(ctx, sponge, "root/en/f.lng", nil))
		require.Empty(t, sponge.Children())
	})
}

func TestEngineInfo(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"json", "yaml", "toml", "lng", "clng"} {
		t.Run(id+" round-trips language metadata", func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			mem := source.NewMemory()
			eng := newEngine(t, id, engine.WithProvider(mem))
			path := "root/de/lang" + eng.Ext()

			in := langinfo.Info{ID: "de", Name: "German", NativeName: "Deutsch"}
			require.NoError(t, eng.SaveInfo(ctx, path, in))

			out, err := eng.LoadInfo(ctx, path)
			require.NoError(t, err)
			require.Equal(t, in, out)
		})
	}

	t.Run("missing info file yields a zero record", func(t *testing.T) {
		t.Parallel()
		eng := newEngine(t, "json", engine.WithProvider(source.NewMemory()))
		info, err := eng.LoadInfo(context.Background(), "root/xx/lang.json")
		require.NoError(t, err)
		require.Equal(t, langinfo.Info{}, info)
	})
}

func TestEngineLocalDirectories(t *testing.T) {
	t.Parallel()

	t.Run("auto-create builds missing directories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		eng := newEngine(t, "json", engine.WithCreateMissing(true))
		path := filepath.Join(dir, "root", "uk", "f.json")

		require.NoError(t, eng.Save(context.Background(), settingsForm(), path))

		ok, err := source.Local{}.Exists(context.Background(), path)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("without auto-create a missing directory fails the save", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		eng := newEngine(t, "json")
		err := eng.Save(context.Background(), settingsForm(), filepath.Join(dir, "root", "uk", "f.json"))
		require.Error(t, err)
	})
}
