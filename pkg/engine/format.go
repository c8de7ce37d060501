package engine

import (
	"slices"

	"github.com/dmitrymomot/lingo/pkg/langinfo"
	"github.com/dmitrymomot/lingo/pkg/store"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

// Format is the persistence strategy: it turns the engine's filtered view of
// a tree into bytes and back, and encodes language metadata. Formats never
// traverse trees or decide eligibility themselves; the Engine hands them a
// Snapshot on save and an Applier on load.
//
// Implementations may carry per-run state. The registry creates a fresh
// instance for every engine, never shares one.
type Format interface {
	// Ext returns the file extension including the dot, e.g. ".json".
	Ext() string
	// EncodeTree renders a snapshot into file content.
	EncodeTree(snap *Snapshot) ([]byte, error)
	// DecodeTree parses file content and replays it onto the applier.
	DecodeTree(data []byte, a *Applier) error
	// EncodeInfo renders a language metadata record.
	EncodeInfo(info langinfo.Info) ([]byte, error)
	// DecodeInfo parses a language metadata record. Missing optional
	// fields stay at their zero values.
	DecodeInfo(data []byte) (langinfo.Info, error)
}

// AttrValue is one eligible attribute captured at save time.
type AttrValue struct {
	Name  string
	Value string
}

// SnapNode is one container inside a Snapshot, preserving the tree shape for
// nested formats. Children appear in declaration order.
type SnapNode struct {
	Name     string
	Attrs    []AttrValue
	Children []*SnapNode
}

// Group is the flattened view of one container for line-oriented formats.
type Group struct {
	QName string
	Attrs []AttrValue
}

// Snapshot is the eligibility-filtered view of a tree at save time, plus the
// runtime dictionary. A snapshot taken without a tree carries only runtime
// strings.
type Snapshot struct {
	root    *SnapNode
	runtime map[string]string
}

// Root returns the captured tree, or nil when only runtime strings were
// captured. A root with an empty name is an anonymous holder whose children
// are the real top-level containers.
func (s *Snapshot) Root() *SnapNode {
	return s.root
}

// Runtime returns the runtime dictionary keyed by hashed keys. The map is
// owned by the snapshot; formats must not modify it.
func (s *Snapshot) Runtime() map[string]string {
	return s.runtime
}

// Groups flattens the tree depth-first into qualified-name groups, skipping
// containers with no eligible attributes. An anonymous root contributes no
// path segment.
func (s *Snapshot) Groups() []Group {
	var out []Group
	var walk func(prefix string, n *SnapNode)
	walk = func(prefix string, n *SnapNode) {
		qname := n.Name
		if prefix != "" && n.Name != "" {
			qname = prefix + "." + n.Name
		} else if prefix != "" {
			qname = prefix
		}
		if len(n.Attrs) > 0 && qname != "" {
			out = append(out, Group{QName: qname, Attrs: slices.Clone(n.Attrs)})
		}
		for _, c := range n.Children {
			walk(qname, c)
		}
	}
	if s.root != nil {
		walk("", s.root)
	}
	return out
}

// Applier applies decoded file entries onto a tree under the engine's
// eligibility rules. Formats call it for every entry they parse; it absorbs
// unresolvable names and contextually excluded attributes silently.
type Applier struct {
	eng  *Engine
	root uitree.Container
	st   *store.Store
}

// Apply sets one attribute value, addressing the container by qualified
// name. When the engine has a materializer and the name does not resolve,
// the missing chain is grown first. Self-describing containers accept
// attributes they have not seen before; registered types only take the
// fields they declare.
func (a *Applier) Apply(qname, attr, value string) {
	if a.root == nil {
		return
	}
	c := uitree.Resolve(a.root, qname)
	if c == nil && a.eng.materialize != nil {
		c = a.eng.grow(a.root, qname)
	}
	if c == nil || !a.eng.loadEligible(c, attr) {
		return
	}
	if bound, ok := uitree.AttrByName(c, attr); ok {
		bound.Set(value)
		return
	}
	if ac, ok := c.(uitree.AttrContainer); ok && attr != uitree.IdentityAttr {
		ac.SetAttr(attr, value)
	}
}

// ApplyRuntime records one runtime-table entry under its hashed key, both in
// the engine's own dictionary and in the external store when one was passed
// to Load.
func (a *Applier) ApplyRuntime(hash, value string) {
	a.eng.dict.SetRaw(hash, value)
	if a.st != nil {
		a.st.SetRaw(hash, value)
	}
}
