package engine

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/lingo/pkg/keycodec"
	"github.com/dmitrymomot/lingo/pkg/langinfo"
)

// FormatLNG identifies the hierarchical text format: one [QualifiedName]
// group per container with key=value lines.
const FormatLNG = "lng"

func init() {
	MustRegister(FormatLNG, func() Format { return &lngFormat{} })
}

// lngFormat is the line-oriented hierarchical format. Group headers carry
// qualified container names, keys are normalized attribute names, values are
// folded onto one line. The reserved [.runtime] group holds the runtime
// table. Lines starting with ";" are comments.
type lngFormat struct{}

var _ Format = (*lngFormat)(nil)

func (*lngFormat) Ext() string {
	return ".lng"
}

func (*lngFormat) EncodeTree(snap *Snapshot) ([]byte, error) {
	var b bytes.Buffer
	for _, g := range snap.Groups() {
		fmt.Fprintf(&b, "[%s]\n", g.QName)
		for _, a := range g.Attrs {
			fmt.Fprintf(&b, "%s=%s\n", keycodec.NormalizeKey(a.Name), keycodec.JoinMultiline(a.Value))
		}
		b.WriteByte('\n')
	}

	if rt := snap.Runtime(); len(rt) > 0 {
		fmt.Fprintf(&b, "[%s]\n", runtimeKey)
		for _, k := range slices.Sorted(maps.Keys(rt)) {
			fmt.Fprintf(&b, "%s=%s\n", k, keycodec.JoinMultiline(rt[k]))
		}
	}
	return b.Bytes(), nil
}

func (*lngFormat) DecodeTree(data []byte, a *Applier) error {
	group := ""
	for line := range strings.Lines(string(data)) {
		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			group = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			continue
		}
		if group == "" {
			continue
		}

		rawKey, rawVal, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key := keycodec.DenormalizeKey(strings.TrimSpace(rawKey))
		val := keycodec.RestoreMultiline(rawVal)
		if group == runtimeKey {
			a.ApplyRuntime(key, val)
			continue
		}
		a.Apply(group, key, val)
	}
	return nil
}

func (*lngFormat) EncodeInfo(info langinfo.Info) ([]byte, error) {
	return info.MarshalText()
}

func (*lngFormat) DecodeInfo(data []byte) (langinfo.Info, error) {
	var info langinfo.Info
	if err := info.UnmarshalText(data); err != nil {
		return langinfo.Info{}, err
	}
	return info, nil
}
