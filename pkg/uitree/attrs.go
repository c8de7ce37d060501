package uitree

// BoundAttr is a translatable attribute bound to a concrete container
// instance, ready to read or write.
type BoundAttr struct {
	Name string
	Get  func() string
	Set  func(string)
}

// Attrs resolves the translatable attributes of c. Self-describing containers
// take precedence over the type registry; containers of an unknown type yield
// no attributes. The identity attribute is filtered out on every path.
func Attrs(c Container) []BoundAttr {
	if ac, ok := c.(AttrContainer); ok {
		names := ac.AttrNames()
		out := make([]BoundAttr, 0, len(names))
		for _, name := range names {
			if name == IdentityAttr {
				continue
			}
			out = append(out, BoundAttr{
				Name: name,
				Get: func() string {
					v, _ := ac.Attr(name)
					return v
				},
				Set: func(s string) {
					ac.SetAttr(name, s)
				},
			})
		}
		return out
	}

	descs := TypeAttrs(c.ContainerType())
	out := make([]BoundAttr, 0, len(descs))
	for _, d := range descs {
		out = append(out, BoundAttr{
			Name: d.Name,
			Get:  func() string { return d.Get(c) },
			Set:  func(s string) { d.Set(c, s) },
		})
	}
	return out
}

// AttrByName resolves a single attribute of c, or reports that c does not
// have it.
func AttrByName(c Container, name string) (BoundAttr, bool) {
	for _, a := range Attrs(c) {
		if a.Name == name {
			return a, true
		}
	}
	return BoundAttr{}, false
}
