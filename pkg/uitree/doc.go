// Package uitree models the UI component trees that translation engines
// traverse: named, typed containers with translatable string attributes.
//
// The package deliberately knows nothing about any widget toolkit. Anything
// that can name itself, its type and its children satisfies Container and can
// be translated. Attribute access comes from one of two places:
//
//  1. Self-describing containers implement AttrContainer and expose their
//     attributes directly. The ready-made Node type works this way.
//  2. Plain containers get a descriptor list registered once per type name,
//     either explicitly with RegisterType or derived from struct fields with
//     RegisterStruct.
//
// # Dynamic Trees
//
// Node builds trees at runtime, useful for tests, data-driven dialogs and
// tooling that reconstructs a tree from a translation file:
//
//	form := uitree.NewNode("SettingsForm", "Form")
//	save := uitree.NewNode("SaveButton", "Button")
//	save.SetAttr("Caption", "Save")
//	form.Add(save)
//
// # Registered Types
//
// Existing widget structs join the tree without adapters. Exported string
// fields become attributes; the `uitree` tag renames or excludes them:
//
//	// Button implements Container with the usual three methods (omitted).
//	type Button struct {
//		Name    string
//		Caption string
//		Hint    string `uitree:"Tooltip"`
//		ID      string `uitree:"-"`
//	}
//
//	uitree.RegisterStruct("Button", (*Button)(nil))
//
// The identity attribute ("Name") is never translatable regardless of how a
// container describes itself.
//
// # Addressing
//
// Containers are addressed by qualified name: the dot-joined path of
// container names from the root down, including the root's own name
// ("SettingsForm.SaveButton"). Resolve walks that path and falls back to a
// depth-first search by the last segment, so files written before an
// intermediate container was renamed still mostly apply.
package uitree
