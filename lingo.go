package lingo

import (
	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/keycodec"
	"github.com/dmitrymomot/lingo/pkg/langinfo"
	"github.com/dmitrymomot/lingo/pkg/logger"
	"github.com/dmitrymomot/lingo/pkg/source"
	"github.com/dmitrymomot/lingo/pkg/store"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

// Type aliases - public API
type (
	// Container is a node in the translatable object tree.
	Container = uitree.Container

	// AttrContainer is a self-describing Container exposing its own
	// translatable attributes.
	AttrContainer = uitree.AttrContainer

	// ActionHolder marks containers whose caption-like attributes are driven
	// by an action object at runtime.
	ActionHolder = uitree.ActionHolder

	// Node is the ready-made dynamic Container implementation.
	Node = uitree.Node

	// Attr describes one translatable attribute of a registered type.
	Attr = uitree.Attr

	// Store holds resolved translations keyed by deterministic hashes.
	Store = store.Store

	// Provider abstracts where translation files live.
	Provider = source.Provider

	// Engine drives one persistence format.
	Engine = engine.Engine

	// EngineOption configures an Engine.
	EngineOption = engine.Option

	// Format is the persistence strategy interface.
	Format = engine.Format

	// Constructor builds a fresh Format instance.
	Constructor = engine.Constructor

	// Registry maps format ids to constructors.
	Registry = engine.Registry

	// Info is the per-language metadata record.
	Info = langinfo.Info

	// ContextExtractor extracts a slog attribute from context.
	// Used with the logger factories to enrich log records.
	ContextExtractor = logger.ContextExtractor
)

// Format ids registered by default.
const (
	FormatJSON = engine.FormatJSON
	FormatYAML = engine.FormatYAML
	FormatTOML = engine.FormatTOML
	FormatLNG  = engine.FormatLNG
	FormatCLNG = engine.FormatCLNG
)

// Reserved base names of the per-language bookkeeping files under
// <root>/<language>/.
const (
	// RuntimeBase names the generic runtime-string table, runtime.<ext>.
	RuntimeBase = "runtime"

	// InfoBase names the language metadata file, lang.<ext>.
	InfoBase = "lang"
)

// Constructors

// NewNode creates a dynamic container node.
//
// Example:
//
//	form := lingo.NewNode("SettingsForm", "Form")
//	form.SetAttr("Caption", "Settings")
func NewNode(name, typeName string) *Node {
	return uitree.NewNode(name, typeName)
}

// NewStore creates an empty translation store.
func NewStore() *Store {
	return store.New()
}

// Hash returns the deterministic 8-hex-digit key for s. The same string
// always yields the same key, across runs and platforms.
func Hash(s string) string {
	return keycodec.Hash(s)
}

// RegisterFormat adds a persistence format to the default registry. The
// first registration for an id wins; re-registering the same id is a no-op.
func RegisterFormat(id string, ctor Constructor) error {
	return engine.Register(id, ctor)
}

// Formats lists the ids registered in the default registry.
func Formats() []string {
	return engine.Formats()
}

// RegisterType binds attribute descriptors to a container type name, making
// containers of that type translatable without implementing AttrContainer.
func RegisterType(typeName string, attrs ...Attr) {
	uitree.RegisterType(typeName, attrs...)
}

// RegisterStruct derives attribute descriptors from the exported string
// fields of sample's type and registers them under typeName. A typed nil
// pointer is a valid sample:
//
//	lingo.RegisterStruct("SearchBox", (*SearchBox)(nil))
func RegisterStruct(typeName string, sample Container) error {
	return uitree.RegisterStruct(typeName, sample)
}
