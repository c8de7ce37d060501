package engine

import (
	"strings"

	"github.com/dmitrymomot/lingo/pkg/keycodec"
)

// runtimeKey is the reserved top-level entry of structured files holding the
// hashed runtime-string table. It cannot collide with container names
// because qualified name segments never start with a dot.
const runtimeKey = ".runtime"

// encodeFlat folds a possibly multiline value into a single string: each
// line is escaped individually and the lines are joined with the reserved
// separator. decodeFlat reverses it exactly.
func encodeFlat(v string) string {
	lines := strings.Split(v, "\n")
	for i, ln := range lines {
		lines[i] = keycodec.Escape(ln)
	}
	return strings.Join(lines, string(keycodec.Separator))
}

func decodeFlat(v string) string {
	parts := strings.Split(v, string(keycodec.Separator))
	for i, p := range parts {
		parts[i] = keycodec.Unescape(p)
	}
	return strings.Join(parts, "\n")
}

// treeToMap renders a snapshot as nested maps: string values are attributes,
// map values are child containers. An anonymous root hoists its children to
// the top level. Containers that end up empty are dropped.
func treeToMap(snap *Snapshot) map[string]any {
	doc := make(map[string]any)
	if root := snap.Root(); root != nil {
		if root.Name == "" {
			for _, c := range root.Children {
				if m := nodeToMap(c); m != nil {
					doc[c.Name] = m
				}
			}
		} else if m := nodeToMap(root); m != nil {
			doc[root.Name] = m
		}
	}
	if rt := snap.Runtime(); len(rt) > 0 {
		enc := make(map[string]any, len(rt))
		for k, v := range rt {
			enc[k] = encodeFlat(v)
		}
		doc[runtimeKey] = enc
	}
	return doc
}

func nodeToMap(n *SnapNode) map[string]any {
	m := make(map[string]any, len(n.Attrs)+len(n.Children))
	for _, a := range n.Attrs {
		m[a.Name] = encodeFlat(a.Value)
	}
	for _, c := range n.Children {
		if sub := nodeToMap(c); sub != nil {
			m[c.Name] = sub
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// mapToTree replays nested maps onto the applier. Top-level map values are
// root containers; the reserved runtime table feeds the dictionary. Entries
// of unexpected shape are skipped.
func mapToTree(doc map[string]any, a *Applier) {
	for key, val := range doc {
		if key == runtimeKey {
			rt, ok := val.(map[string]any)
			if !ok {
				continue
			}
			for hash, raw := range rt {
				if s, ok := raw.(string); ok {
					a.ApplyRuntime(hash, decodeFlat(s))
				}
			}
			continue
		}
		if m, ok := val.(map[string]any); ok {
			applyMapNode(key, m, a)
		}
	}
}

func applyMapNode(qname string, m map[string]any, a *Applier) {
	for key, val := range m {
		switch v := val.(type) {
		case string:
			a.Apply(qname, key, decodeFlat(v))
		case map[string]any:
			applyMapNode(qname+"."+key, v, a)
		}
	}
}
