package uitree

import "strings"

// Walk traverses the tree under root depth-first in declaration order,
// calling fn with each container and its qualified name: the dot-joined path
// from the root down, including the root's own name. Returning false prunes
// the subtree below the current container.
func Walk(root Container, fn func(qname string, c Container) bool) {
	if root == nil {
		return
	}
	walk(root.ContainerName(), root, fn)
}

func walk(qname string, c Container, fn func(string, Container) bool) {
	if !fn(qname, c) {
		return
	}
	for _, child := range c.ContainerChildren() {
		if child == nil {
			continue
		}
		walk(qname+"."+child.ContainerName(), child, fn)
	}
}

// FindByName returns the first container with the given name in depth-first
// order under root, including root itself, or nil.
func FindByName(root Container, name string) Container {
	var found Container
	Walk(root, func(_ string, c Container) bool {
		if found != nil {
			return false
		}
		if c.ContainerName() == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Resolve finds the container addressed by a dot-joined qualified name. The
// path is walked component by component from root; when the walk dead-ends,
// Resolve falls back to a depth-first search for the last path segment
// anywhere under root. The fallback keeps files written before a container
// was moved or an ancestor renamed mostly applicable, at the cost of a
// possible misbind when leaf names repeat across the tree.
func Resolve(root Container, qname string) Container {
	if root == nil || qname == "" {
		return nil
	}

	segs := strings.Split(qname, ".")
	i := 0
	if segs[0] == root.ContainerName() {
		i = 1
	}
	cur := root
	for ; i < len(segs); i++ {
		cur = childByName(cur, segs[i])
		if cur == nil {
			return FindByName(root, segs[len(segs)-1])
		}
	}
	return cur
}

func childByName(c Container, name string) Container {
	for _, child := range c.ContainerChildren() {
		if child != nil && child.ContainerName() == name {
			return child
		}
	}
	return nil
}
