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

// FormatCLNG identifies the flat text format: a single [strings] group keyed
// by QualifiedName.AttributeName.
const FormatCLNG = "clng"

// clngGroup is the sole group of a flat file.
const clngGroup = "strings"

// runtimePrefix marks runtime-table keys inside the flat group.
const runtimePrefix = runtimeKey + "."

func init() {
	MustRegister(FormatCLNG, func() Format { return &clngFormat{} })
}

// clngFormat shares the lng line grammar but writes every entry into one
// group, with the full attribute path on the left of each assignment.
// Runtime entries are keyed ".runtime.<hash>".
type clngFormat struct{}

var _ Format = (*clngFormat)(nil)

func (*clngFormat) Ext() string {
	return ".clng"
}

func (*clngFormat) EncodeTree(snap *Snapshot) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s]\n", clngGroup)
	for _, g := range snap.Groups() {
		for _, a := range g.Attrs {
			key := keycodec.NormalizeKey(g.QName + "." + a.Name)
			fmt.Fprintf(&b, "%s=%s\n", key, keycodec.JoinMultiline(a.Value))
		}
	}
	for _, k := range slices.Sorted(maps.Keys(snap.Runtime())) {
		fmt.Fprintf(&b, "%s%s=%s\n", runtimePrefix, k, keycodec.JoinMultiline(snap.Runtime()[k]))
	}
	return b.Bytes(), nil
}

func (*clngFormat) DecodeTree(data []byte, a *Applier) error {
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
		if group != clngGroup {
			continue
		}

		rawKey, rawVal, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key := keycodec.DenormalizeKey(strings.TrimSpace(rawKey))
		val := keycodec.RestoreMultiline(rawVal)

		if hash, ok := strings.CutPrefix(key, runtimePrefix); ok {
			a.ApplyRuntime(hash, val)
			continue
		}
		idx := strings.LastIndex(key, ".")
		if idx <= 0 {
			continue
		}
		a.Apply(key[:idx], key[idx+1:], val)
	}
	return nil
}

func (*clngFormat) EncodeInfo(info langinfo.Info) ([]byte, error) {
	return info.MarshalText()
}

func (*clngFormat) DecodeInfo(data []byte) (langinfo.Info, error) {
	var info langinfo.Info
	if err := info.UnmarshalText(data); err != nil {
		return langinfo.Info{}, err
	}
	return info, nil
}
