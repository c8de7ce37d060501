// Package engine loads and saves translation files against UI component
// trees through interchangeable persistence formats.
//
// An Engine owns everything the file format should not care about: tree
// traversal, the two-level eligibility rules, auto-creation, the runtime
// string dictionary and the file source. The Format strategy only turns the
// engine's filtered view into bytes and back. Five formats ship built in:
//
//	json   structured, nested objects
//	yaml   structured, keeps tree order
//	toml   structured, nested tables
//	lng    hierarchical text, one [QualifiedName] group per container
//	clng   flat text, a single [strings] group
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/lingo/pkg/engine"
//
//	eng, err := engine.NewFor("json",
//		engine.WithCreateMissing(true),
//		engine.WithExcludeTypes("Timer"),
//	)
//	if err != nil {
//		// unknown format id
//	}
//
//	// Persist the current captions of a tree.
//	err = eng.Save(ctx, form, "languages/en/SettingsForm.json")
//
//	// Apply a translated file onto the same tree.
//	err = eng.Load(ctx, form, "languages/de/SettingsForm.json", nil)
//
//	// Runtime strings resolved against the last loaded file.
//	msg := eng.Translate("Are you sure?")
//
// # Eligibility
//
// An attribute reaches a file only if it is structurally eligible (a
// readable, writable, exported string that is not the identity attribute;
// pkg/uitree enforces this) and passes the engine's contextual rules:
// excluded attribute names and excluded container types are skipped on both
// save and load. The action rule is asymmetric on purpose: with
// WithExcludeOnAction, Caption, Hint and Text of containers driven by an
// action object are still saved, but a load never overwrites them. Saved
// files therefore hold a superset of what load applies, and switching the
// action wiring later needs no file migration.
//
// # Custom Formats
//
// A format registers once, usually from init:
//
//	engine.MustRegister("po", func() engine.Format { return &poFormat{} })
//
// Registration probes the constructor and keeps the first binding for an id;
// Create hands out a fresh instance per engine, so formats may keep per-run
// state without locking.
package engine
