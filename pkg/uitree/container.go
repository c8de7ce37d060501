package uitree

// IdentityAttr is the attribute name that identifies a container within its
// parent. It is never treated as translatable.
const IdentityAttr = "Name"

// Container is a named, typed node in a UI component tree.
type Container interface {
	// ContainerName returns the container's identity within its parent.
	ContainerName() string
	// ContainerType returns the type name used for registry lookups and
	// type-based exclusion.
	ContainerType() string
	// ContainerChildren returns the direct children in declaration order.
	ContainerChildren() []Container
}

// ActionHolder marks containers whose caption-like attributes are driven by
// an action object at runtime. Engines configured with action exclusion save
// those attributes but never overwrite them on load; the action object stays
// the authoritative source.
type ActionHolder interface {
	HasAction() bool
}

// AttrContainer is a self-describing container that exposes its translatable
// attributes directly, bypassing the type registry.
type AttrContainer interface {
	Container

	// AttrNames returns the attribute names in a stable order.
	AttrNames() []string
	// Attr returns the current value of the named attribute.
	Attr(name string) (string, bool)
	// SetAttr replaces the value of the named attribute.
	SetAttr(name, value string)
}
