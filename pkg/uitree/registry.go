package uitree

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// ErrBadSample is returned by RegisterStruct when the sample value cannot be
// reflected into a descriptor list.
var ErrBadSample = errors.New("uitree: sample must be a pointer to struct")

// Attr describes one translatable attribute of a registered container type.
// Get and Set receive the container instance the engine is visiting; they
// must tolerate instances of a different concrete type by returning "" and
// doing nothing.
type Attr struct {
	Name string
	Get  func(Container) string
	Set  func(Container, string)
}

var (
	typesMu sync.RWMutex
	types   = make(map[string][]Attr)
)

// RegisterType binds a descriptor list to a container type name. The first
// registration wins; registering the same type name again is a no-op.
// Descriptors naming the identity attribute or missing an accessor are
// dropped.
func RegisterType(typeName string, attrs ...Attr) {
	typesMu.Lock()
	defer typesMu.Unlock()

	if _, ok := types[typeName]; ok {
		return
	}
	list := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Name == IdentityAttr || a.Get == nil || a.Set == nil {
			continue
		}
		list = append(list, a)
	}
	types[typeName] = list
}

// UnregisterType removes a type registration. Mostly useful in tests.
func UnregisterType(typeName string) {
	typesMu.Lock()
	delete(types, typeName)
	typesMu.Unlock()
}

// TypeAttrs returns the descriptor list registered for typeName, or nil when
// the type is unknown.
func TypeAttrs(typeName string) []Attr {
	typesMu.RLock()
	defer typesMu.RUnlock()
	return slices.Clone(types[typeName])
}

// RegisterStruct derives a descriptor list from the exported string fields of
// sample's type and registers it under typeName. A typed nil pointer is a
// valid sample. The generated accessors expect that same pointer type at
// runtime and ignore anything else.
//
// Fields opt out with the `uitree:"-"` tag and rename with `uitree:"Other"`.
// Unexported fields, non-string fields and the identity attribute are
// skipped.
func RegisterStruct(typeName string, sample Container) error {
	rt := reflect.TypeOf(sample)
	if rt == nil || rt.Kind() != reflect.Pointer || rt.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: registering %q", ErrBadSample, typeName)
	}

	elem := rt.Elem()
	attrs := make([]Attr, 0, elem.NumField())
	for i := range elem.NumField() {
		f := elem.Field(i)
		if !f.IsExported() || f.Type.Kind() != reflect.String {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("uitree"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		if name == IdentityAttr {
			continue
		}

		idx := f.Index
		attrs = append(attrs, Attr{
			Name: name,
			Get: func(c Container) string {
				v := reflect.ValueOf(c)
				if v.Type() != rt || v.IsNil() {
					return ""
				}
				return v.Elem().FieldByIndex(idx).String()
			},
			Set: func(c Container, s string) {
				v := reflect.ValueOf(c)
				if v.Type() != rt || v.IsNil() {
					return
				}
				v.Elem().FieldByIndex(idx).SetString(s)
			},
		})
	}

	RegisterType(typeName, attrs...)
	return nil
}
