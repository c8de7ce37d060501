// Package lingo provides a runtime localization engine for trees of named
// UI components.
//
// Lingo discovers translatable string attributes on a component tree,
// persists and applies them through interchangeable file formats, and keys
// every generic runtime string with a deterministic hash so translations
// survive renames of the surrounding code. One Server federates any number
// of per-tree Coordinators; switching the language in one place retranslates
// every registered tree.
//
// # Quick Start
//
// Describe the UI as a tree of containers, then put a Coordinator in front
// of it:
//
//	form := lingo.NewNode("SettingsForm", "Form")
//	form.SetAttr("Caption", "Settings")
//	save := lingo.NewNode("SaveButton", "Button")
//	save.SetAttr("Caption", "Save")
//	form.Add(save)
//
//	server := lingo.NewServer(lingo.WithServerFormat(lingo.FormatJSON))
//	c := lingo.NewCoordinator(form,
//	    lingo.WithServer(server),
//	    lingo.WithCreateMissing(true),
//	)
//	defer c.Close()
//
//	_ = server.SetRoot(ctx, "translations")
//	if err := server.SetLanguage(ctx, "de"); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.Translate("Are you sure?"))
//
// SetLanguage reloads the shared runtime strings from
// translations/de/runtime.json, reloads every registered tree from its own
// file (translations/de/SettingsForm.json here), refreshes the language
// metadata and fires the change hooks, synchronously.
//
// # File Layout
//
// Each language lives in one folder under the translations root:
//
//	translations/
//	  de/
//	    SettingsForm.json    one file per coordinated tree
//	    runtime.json         generic runtime strings, hash-keyed
//	    lang.json            language metadata (name, direction, fonts)
//
// The built-in formats are json, yaml and toml (nested documents), lng
// (one [Qualified.Name] group per container) and clng (a single flat
// group). Custom formats register through [RegisterFormat].
//
// # Own Types
//
// Any type can join the tree: implement [Container], then either implement
// [AttrContainer] yourself or describe the translatable attributes once via
// [RegisterType] or [RegisterStruct]. The dynamic [Node] needs no
// registration and suits tooling that builds trees from files.
//
// # Eligibility
//
// Attributes are translated only when structurally eligible (string-typed,
// readable and writable, not the identity name) and not excluded by
// configuration. With WithExcludeOnAction, Caption, Hint and Text values of
// containers driven by an action object are still written to files but are
// never overwritten by a load; the action stays authoritative at runtime.
//
// # Escape Hatch
//
// For direct control over a single format without coordinators, use the
// [github.com/dmitrymomot/lingo/pkg/engine] package directly:
//
//	eng, _ := engine.NewFor("lng", engine.WithCreateMissing(true))
//	_ = eng.Save(ctx, form, "translations/en/SettingsForm.lng")
package lingo
