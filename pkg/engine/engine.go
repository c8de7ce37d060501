package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/lingo/pkg/langinfo"
	"github.com/dmitrymomot/lingo/pkg/source"
	"github.com/dmitrymomot/lingo/pkg/store"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

// Action-managed attribute names. When action exclusion is on and a
// container reports an action object, these attributes are saved but never
// overwritten on load; the action stays authoritative at runtime.
var actionAttrs = map[string]struct{}{
	"Caption": {},
	"Hint":    {},
	"Text":    {},
}

// Materializer grows a tree during load: it receives a container and the
// name of a missing child, attaches a new child and returns it. Returning
// nil leaves the entry unapplied.
type Materializer func(parent uitree.Container, name string) uitree.Container

// MaterializeNode is a ready-made Materializer for uitree.Node trees, used
// by tooling that rebuilds a tree from a translation file alone.
func MaterializeNode(parent uitree.Container, name string) uitree.Container {
	p, ok := parent.(*uitree.Node)
	if !ok {
		return nil
	}
	child := uitree.NewNode(name, "")
	p.Add(child)
	return child
}

// Engine drives one persistence format: it owns traversal, the two-level
// eligibility rules, auto-creation and the runtime dictionary, and delegates
// byte-level encoding to its Format.
type Engine struct {
	format          Format
	provider        source.Provider
	dict            *store.Store
	excludeTypes    map[string]struct{}
	excludeAttrs    map[string]struct{}
	materialize     Materializer
	excludeOnAction bool
	createMissing   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithProvider sets the file source. Defaults to the local filesystem.
func WithProvider(p source.Provider) Option {
	return func(e *Engine) {
		if p != nil {
			e.provider = p
		}
	}
}

// WithDict shares a runtime dictionary with the engine instead of the
// private one it creates by default. Tooling uses this to carry runtime
// strings across a convert pipeline.
func WithDict(d *store.Store) Option {
	return func(e *Engine) {
		if d != nil {
			e.dict = d
		}
	}
}

// WithExcludeTypes adds container type names whose subtrees are skipped
// entirely, on save and on load.
func WithExcludeTypes(names ...string) Option {
	return func(e *Engine) {
		for _, n := range names {
			e.excludeTypes[n] = struct{}{}
		}
	}
}

// WithExcludeAttrs adds attribute names that are never persisted nor
// applied.
func WithExcludeAttrs(names ...string) Option {
	return func(e *Engine) {
		for _, n := range names {
			e.excludeAttrs[n] = struct{}{}
		}
	}
}

// WithExcludeOnAction controls the action rule: when on, Caption, Hint and
// Text of containers driven by an action object are still saved but are not
// overwritten on load.
func WithExcludeOnAction(on bool) Option {
	return func(e *Engine) {
		e.excludeOnAction = on
	}
}

// WithCreateMissing makes Load materialize a starter file for a missing
// path, and Save create missing parent directories.
func WithCreateMissing(on bool) Option {
	return func(e *Engine) {
		e.createMissing = on
	}
}

// WithMaterializer lets Load grow the tree for entries that do not resolve,
// instead of skipping them.
func WithMaterializer(m Materializer) Option {
	return func(e *Engine) {
		e.materialize = m
	}
}

// New builds an engine around the given format.
func New(f Format, opts ...Option) *Engine {
	e := &Engine{
		format:       f,
		provider:     source.Local{},
		dict:         store.New(),
		excludeTypes: make(map[string]struct{}),
		excludeAttrs: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFor builds an engine for a format id registered in the default
// registry.
func NewFor(id string, opts ...Option) (*Engine, error) {
	f, err := Create(id)
	if err != nil {
		return nil, err
	}
	return New(f, opts...), nil
}

// Ext returns the format's file extension including the dot.
func (e *Engine) Ext() string {
	return e.format.Ext()
}

// Translate returns the runtime translation recorded for s during the last
// Load, or s unchanged on a miss. It never fails.
func (e *Engine) Translate(s string) string {
	if v, ok := e.dict.TryGet(s); ok {
		return v
	}
	return s
}

// SetString records a runtime translation in the engine's dictionary. The
// next Save persists it.
func (e *Engine) SetString(original, translated string) {
	e.dict.Set(original, translated)
}

// Strings returns a copy of the runtime dictionary keyed by hashed keys.
func (e *Engine) Strings() map[string]string {
	return e.dict.Snapshot()
}

// Load reads the translation file at path and applies it: eligible attribute
// entries are written onto root's tree and runtime strings replace the
// engine's dictionary. A non-nil st additionally collects the runtime
// strings. root may be nil to load runtime strings only.
//
// A missing file returns ErrMissingFile unless auto-create is on, in which
// case Save runs first to materialize a starter file. I/O and parse errors
// propagate unchanged.
func (e *Engine) Load(ctx context.Context, root uitree.Container, path string, st *store.Store) error {
	if path == "" {
		return ErrNoFilePath
	}

	exists, err := e.provider.Exists(ctx, path)
	if err != nil {
		return err
	}
	if !exists {
		if !e.createMissing {
			return fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		if err := e.Save(ctx, root, path); err != nil {
			return err
		}
	}

	data, err := e.provider.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	e.dict.Clear()
	return e.format.DecodeTree(data, &Applier{eng: e, root: root, st: st})
}

// Save serializes the eligible attributes of root's tree and the runtime
// dictionary to path. With auto-create on, missing parent directories are
// created first. root may be nil to save runtime strings only.
func (e *Engine) Save(ctx context.Context, root uitree.Container, path string) error {
	if path == "" {
		return ErrNoFilePath
	}
	if e.createMissing {
		if err := e.provider.MkdirAll(ctx, filepath.Dir(path)); err != nil {
			return err
		}
	}

	data, err := e.format.EncodeTree(e.capture(root))
	if err != nil {
		return err
	}
	return e.provider.WriteFile(ctx, path, data)
}

// LoadInfo reads a language metadata file. A missing file yields a zero
// record without error; loaders never fail on absent optional fields.
func (e *Engine) LoadInfo(ctx context.Context, path string) (langinfo.Info, error) {
	data, err := e.provider.ReadFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return langinfo.Info{}, nil
	}
	if err != nil {
		return langinfo.Info{}, err
	}
	return e.format.DecodeInfo(data)
}

// SaveInfo writes a language metadata file. With auto-create on, missing
// parent directories are created first.
func (e *Engine) SaveInfo(ctx context.Context, path string, info langinfo.Info) error {
	if e.createMissing {
		if err := e.provider.MkdirAll(ctx, filepath.Dir(path)); err != nil {
			return err
		}
	}
	data, err := e.format.EncodeInfo(info)
	if err != nil {
		return err
	}
	return e.provider.WriteFile(ctx, path, data)
}

// capture builds the eligibility-filtered snapshot handed to the format.
func (e *Engine) capture(root uitree.Container) *Snapshot {
	snap := &Snapshot{runtime: e.dict.Snapshot()}
	if root != nil {
		snap.root = e.captureNode(root)
	}
	return snap
}

func (e *Engine) captureNode(c uitree.Container) *SnapNode {
	if _, excluded := e.excludeTypes[c.ContainerType()]; excluded {
		return nil
	}

	node := &SnapNode{Name: c.ContainerName()}
	for _, a := range uitree.Attrs(c) {
		if _, excluded := e.excludeAttrs[a.Name]; excluded {
			continue
		}
		node.Attrs = append(node.Attrs, AttrValue{Name: a.Name, Value: a.Get()})
	}
	for _, child := range c.ContainerChildren() {
		if child == nil {
			continue
		}
		if sub := e.captureNode(child); sub != nil {
			node.Children = append(node.Children, sub)
		}
	}
	return node
}

// loadEligible decides whether an attribute may be overwritten on load. Save
// deliberately persists a superset: the action rule applies here only.
func (e *Engine) loadEligible(c uitree.Container, attr string) bool {
	if _, excluded := e.excludeAttrs[attr]; excluded {
		return false
	}
	if _, excluded := e.excludeTypes[c.ContainerType()]; excluded {
		return false
	}
	if e.excludeOnAction {
		if holder, ok := c.(uitree.ActionHolder); ok && holder.HasAction() {
			if _, managed := actionAttrs[attr]; managed {
				return false
			}
		}
	}
	return true
}

// grow walks qname from root, asking the materializer to attach every child
// missing along the way.
func (e *Engine) grow(root uitree.Container, qname string) uitree.Container {
	segs := strings.Split(qname, ".")
	i := 0
	if segs[0] == root.ContainerName() {
		i = 1
	}
	cur := root
	for ; i < len(segs); i++ {
		var next uitree.Container
		for _, ch := range cur.ContainerChildren() {
			if ch != nil && ch.ContainerName() == segs[i] {
				next = ch
				break
			}
		}
		if next == nil {
			if next = e.materialize(cur, segs[i]); next == nil {
				return nil
			}
		}
		cur = next
	}
	return cur
}
