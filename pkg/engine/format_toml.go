package engine

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/dmitrymomot/lingo/pkg/langinfo"
)

// FormatTOML identifies the structured TOML format.
const FormatTOML = "toml"

func init() {
	MustRegister(FormatTOML, func() Format { return &tomlFormat{} })
}

// tomlFormat persists trees as nested TOML tables: one table per container,
// string keys for attributes, the reserved ".runtime" table for the runtime
// strings. Translators get a comment-friendly file without significant
// whitespace.
type tomlFormat struct{}

var _ Format = (*tomlFormat)(nil)

func (*tomlFormat) Ext() string {
	return ".toml"
}

func (*tomlFormat) EncodeTree(snap *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(treeToMap(snap)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (*tomlFormat) DecodeTree(data []byte, a *Applier) error {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return err
	}
	mapToTree(doc, a)
	return nil
}

func (*tomlFormat) EncodeInfo(info langinfo.Info) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(info); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (*tomlFormat) DecodeInfo(data []byte) (langinfo.Info, error) {
	var info langinfo.Info
	if err := toml.Unmarshal(data, &info); err != nil {
		return langinfo.Info{}, err
	}
	return info, nil
}
