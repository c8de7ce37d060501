package engine

import (
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/lingo/pkg/langinfo"
)

// FormatYAML identifies the structured YAML format.
const FormatYAML = "yaml"

func init() {
	MustRegister(FormatYAML, func() Format { return &yamlFormat{} })
}

// yamlFormat persists trees as nested YAML mappings. Unlike the JSON codec
// it keeps the tree's declaration order, which makes diffs follow the form
// layout; the runtime table comes last with sorted keys. All scalars are
// tagged as strings so numeric-looking captions survive a round trip.
type yamlFormat struct{}

var _ Format = (*yamlFormat)(nil)

func (*yamlFormat) Ext() string {
	return ".yaml"
}

func (*yamlFormat) EncodeTree(snap *Snapshot) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	if root := snap.Root(); root != nil {
		if root.Name == "" {
			for _, c := range root.Children {
				appendMapping(doc, c)
			}
		} else {
			appendMapping(doc, root)
		}
	}

	if rt := snap.Runtime(); len(rt) > 0 {
		table := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range slices.Sorted(maps.Keys(rt)) {
			table.Content = append(table.Content, strScalar(k), strScalar(encodeFlat(rt[k])))
		}
		doc.Content = append(doc.Content, strScalar(runtimeKey), table)
	}
	return yaml.Marshal(doc)
}

// appendMapping adds one container as a key plus nested mapping. Containers
// that would serialize empty are dropped, mirroring the map-based codecs.
func appendMapping(parent *yaml.Node, n *SnapNode) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range n.Attrs {
		m.Content = append(m.Content, strScalar(a.Name), strScalar(encodeFlat(a.Value)))
	}
	for _, c := range n.Children {
		appendMapping(m, c)
	}
	if len(m.Content) == 0 {
		return
	}
	parent.Content = append(parent.Content, strScalar(n.Name), m)
}

func strScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func (*yamlFormat) DecodeTree(data []byte, a *Applier) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	mapToTree(doc, a)
	return nil
}

func (*yamlFormat) EncodeInfo(info langinfo.Info) ([]byte, error) {
	return yaml.Marshal(info)
}

func (*yamlFormat) DecodeInfo(data []byte) (langinfo.Info, error) {
	var info langinfo.Info
	if err := yaml.Unmarshal(data, &info); err != nil {
		return langinfo.Info{}, err
	}
	return info, nil
}
