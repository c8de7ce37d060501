package engine

import (
	"encoding/json"

	"github.com/dmitrymomot/lingo/pkg/langinfo"
)

// FormatJSON identifies the structured JSON format.
const FormatJSON = "json"

func init() {
	MustRegister(FormatJSON, func() Format { return &jsonFormat{} })
}

// jsonFormat persists trees as nested JSON objects: one object per
// container, string members for attributes, the reserved ".runtime" object
// for the runtime table. Keys are emitted in sorted order.
type jsonFormat struct{}

var _ Format = (*jsonFormat)(nil)

func (*jsonFormat) Ext() string {
	return ".json"
}

func (*jsonFormat) EncodeTree(snap *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(treeToMap(snap), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (*jsonFormat) DecodeTree(data []byte, a *Applier) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	mapToTree(doc, a)
	return nil
}

func (*jsonFormat) EncodeInfo(info langinfo.Info) ([]byte, error) {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (*jsonFormat) DecodeInfo(data []byte) (langinfo.Info, error) {
	var info langinfo.Info
	if err := json.Unmarshal(data, &info); err != nil {
		return langinfo.Info{}, err
	}
	return info, nil
}
