package engine_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/keycodec"
	"github.com/dmitrymomot/lingo/pkg/source"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

func TestFormatCLNG(t *testing.T) {
	t.Parallel()

	t.Run("flattens everything into one group", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		eng := newEngine(t, "clng", engine.WithProvider(mem), engine.WithCreateMissing(true))
		eng.SetString("Are you sure?", "Sicher?")

		require.NoError(t, eng.Save(ctx, settingsForm(), "root/de/f.clng"))
		data, err := mem.ReadFile(ctx, "root/de/f.clng")
		require.NoError(t, err)

		want := fmt.Sprintf(`[strings]
SettingsForm.Caption=Settings
SettingsForm.SaveButton.Caption=Save
SettingsForm.SaveButton.Hint=Saves your changes.~lNothing is sent anywhere.
SettingsForm.LegalLabel.Caption=Terms | Privacy ~~ 2026
.runtime.%s=Sicher?
`, keycodec.Hash("Are you sure?"))
		require.Equal(t, want, string(data))
	})

	t.Run("splits keys on the last dot", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		file := "[strings]\n" +
			"Form1.Inner.Caption=deep\n" +
			"NoDot=skipped\n" +
			".runtime." + keycodec.Hash("Hi") + "=Hallo\n"
		require.NoError(t, mem.WriteFile(ctx, "root/de/f.clng", []byte(file)))

		form := uitree.NewNode("Form1", "Form")
		inner := uitree.NewNode("Inner", "Panel")
		inner.SetAttr("Caption", "old")
		form.Add(inner)

		eng := newEngine(t, "clng", engine.WithProvider(mem))
		require.NoError(t, eng.Load(ctx, form, "root/de/f.clng", nil))

		caption, _ := inner.Attr("Caption")
		require.Equal(t, "deep", caption)
		require.Equal(t, "Hallo", eng.Translate("Hi"))
	})

	t.Run("ignores groups other than strings", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		mem := source.NewMemory()
		file := "[meta]\nForm1.Caption=not applied\n[strings]\nForm1.Caption=applied\n"
		require.NoError(t, mem.WriteFile(ctx, "root/de/f.clng", []byte(file)))

		form := uitree.NewNode("Form1", "Form")
		form.SetAttr("Caption", "old")

		eng := newEngine(t, "clng", engine.WithProvider(mem))
		require.NoError(t, eng.Load(ctx, form, "root/de/f.clng", nil))
		caption, _ := form.Attr("Caption")
		require.Equal(t, "applied", caption)
	})
}
