package uitree

import "slices"

// Node is a ready-made dynamic container for trees assembled at runtime:
// data-driven dialogs, tests and tooling that rebuilds a tree from a
// translation file. Attributes keep first-set order so serialized output
// stays stable across runs.
type Node struct {
	name     string
	typ      string
	attrs    map[string]string
	order    []string
	children []*Node
	action   bool
}

var (
	_ AttrContainer = (*Node)(nil)
	_ ActionHolder  = (*Node)(nil)
)

// NewNode returns a childless node with the given name and type name.
func NewNode(name, typ string) *Node {
	return &Node{name: name, typ: typ, attrs: make(map[string]string)}
}

func (n *Node) ContainerName() string { return n.name }

func (n *Node) ContainerType() string { return n.typ }

func (n *Node) ContainerChildren() []Container {
	out := make([]Container, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Add appends children and returns n for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Children returns the direct children in declaration order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// SetAttr stores an attribute value, registering the name on first use.
func (n *Node) SetAttr(name, value string) {
	if _, ok := n.attrs[name]; !ok {
		n.order = append(n.order, name)
	}
	n.attrs[name] = value
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// AttrNames returns the attribute names in first-set order.
func (n *Node) AttrNames() []string {
	return slices.Clone(n.order)
}

// SetAction marks or clears the node's action association.
func (n *Node) SetAction(on bool) {
	n.action = on
}

// HasAction reports whether the node is driven by an action object.
func (n *Node) HasAction() bool {
	return n.action
}
