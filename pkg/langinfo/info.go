// Package langinfo describes languages as they appear in translation file
// metadata: identifier, display names, text direction and preferred fonts.
// Lookup seeds a record from the Unicode CLDR data shipped with x/text, so
// new language folders start with sensible names without any hand-kept table.
package langinfo

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Info is the metadata record stored next to each language's translation
// files. Every field except ID is optional; loaders fill absent fields with
// zero values and never fail on them.
type Info struct {
	ID           string `json:"id" yaml:"id" toml:"id"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	NativeName   string `json:"native_name,omitempty" yaml:"native_name,omitempty" toml:"native_name,omitempty"`
	RTL          bool   `json:"rtl,omitempty" yaml:"rtl,omitempty" toml:"rtl,omitempty"`
	Font         string `json:"font,omitempty" yaml:"font,omitempty" toml:"font,omitempty"`
	FallbackFont string `json:"fallback_font,omitempty" yaml:"fallback_font,omitempty" toml:"fallback_font,omitempty"`
}

// Scripts written right to left, by ISO 15924 code.
var rtlScripts = map[string]struct{}{
	"Arab": {}, "Hebr": {}, "Syrc": {}, "Thaa": {}, "Nkoo": {}, "Adlm": {},
}

// Lookup builds an Info for a BCP-47 language identifier using the CLDR
// display-name data. Identifiers that do not parse yield a record carrying
// only the given id.
func Lookup(id string) Info {
	info := Info{ID: id}
	tag, err := language.Parse(id)
	if err != nil {
		return info
	}

	info.Name = display.English.Tags().Name(tag)
	info.NativeName = display.Self.Name(tag)
	script, _ := tag.Script()
	_, info.RTL = rtlScripts[script.String()]
	return info
}

// MarshalText renders the record as key=value lines, the representation the
// line-oriented formats embed in their metadata files. Empty fields are
// omitted; RTL is written only when set.
func (i Info) MarshalText() ([]byte, error) {
	var b bytes.Buffer
	writeField := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s=%s\n", key, value)
		}
	}
	writeField("id", i.ID)
	writeField("name", i.Name)
	writeField("native_name", i.NativeName)
	if i.RTL {
		writeField("rtl", "true")
	}
	writeField("font", i.Font)
	writeField("fallback_font", i.FallbackFont)
	return b.Bytes(), nil
}

// UnmarshalText parses key=value lines produced by MarshalText. Unknown keys
// and malformed lines are skipped; missing fields keep their zero values.
func (i *Info) UnmarshalText(data []byte) error {
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "id":
			i.ID = value
		case "name":
			i.Name = value
		case "native_name":
			i.NativeName = value
		case "rtl":
			i.RTL = strings.EqualFold(value, "true")
		case "font":
			i.Font = value
		case "fallback_font":
			i.FallbackFont = value
		}
	}
	return nil
}
