package lingo

import (
	"context"
	"errors"
	"log/slog"
	"path"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/langinfo"
	"github.com/dmitrymomot/lingo/pkg/logger"
	"github.com/dmitrymomot/lingo/pkg/source"
	"github.com/dmitrymomot/lingo/pkg/store"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

// Coordinator is the per-tree translation facade: it owns one store and one
// engine, resolves the translation file path from (root path, language,
// container name, format) and exposes the load/save lifecycle with
// cancellable hooks.
//
// The path resolves to <root>/<language>/<base>.<ext>. Any root or language
// change recomputes it and, outside of construction, reloads. An explicit
// SetFilePath overrides the convention until the next root or language
// change.
//
// A Coordinator is confined to one goroutine: the one that owns its tree.
// Drive server language switches from that same goroutine.
type Coordinator struct {
	root     uitree.Container
	server   *Server
	registry *engine.Registry
	provider source.Provider
	st       *store.Store
	log      *slog.Logger

	formatID string
	rootPath string
	language string
	filePath string
	explicit bool
	baseName string

	excludeTypes    []string
	excludeAttrs    []string
	excludeOnAction bool
	createMissing   bool

	eng  *engine.Engine
	info langinfo.Info

	beforeLoad BeforeHook
	afterLoad  AfterHook
	beforeSave BeforeHook
	afterSave  AfterHook
	errHook    ErrorHook
}

// NewCoordinator creates a coordinator for the given tree. root may be nil
// for a coordinator that only manages runtime strings; pair that with
// WithBaseName so a file path can still resolve.
//
// Construction never performs I/O on its own, but WithServer registration
// synchronizes immediately when the server already holds a valid language
// and root.
func NewCoordinator(root uitree.Container, opts ...Option) *Coordinator {
	c := &Coordinator{
		root:     root,
		registry: engine.Default(),
		provider: source.Local{},
		st:       store.New(),
		log:      logger.NewNope(),
		formatID: FormatLNG,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.recompute()
	if c.server != nil {
		c.server.RegisterClient(context.Background(), c)
	}
	return c
}

// Close unregisters the coordinator from its server. The coordinator stays
// usable standalone afterwards.
func (c *Coordinator) Close() {
	if c.server != nil {
		c.server.UnregisterClient(c)
		c.server = nil
	}
}

// Root returns the tree this coordinator translates.
func (c *Coordinator) Root() uitree.Container { return c.root }

// Store returns the coordinator's translation store.
func (c *Coordinator) Store() *store.Store { return c.st }

// Language returns the current language id.
func (c *Coordinator) Language() string { return c.language }

// RootPath returns the current translations root path.
func (c *Coordinator) RootPath() string { return c.rootPath }

// FilePath returns the currently resolved translation file path, or "" when
// the coordinator is not ready.
func (c *Coordinator) FilePath() string { return c.filePath }

// Format returns the current persistence format id.
func (c *Coordinator) Format() string { return c.formatID }

// Info returns the language metadata last pushed by the server.
func (c *Coordinator) Info() langinfo.Info { return c.info }

// SetRoot changes the translations root path. When the language is also set,
// the file path is recomputed and the translations reload.
func (c *Coordinator) SetRoot(ctx context.Context, rootPath string) error {
	c.rootPath = rootPath
	if c.rootPath == "" || c.language == "" {
		return nil
	}
	c.recompute()
	return c.Load(ctx)
}

// SetLanguage changes the language id. When the root path is also set, the
// file path is recomputed and the translations reload.
func (c *Coordinator) SetLanguage(ctx context.Context, language string) error {
	c.language = language
	if c.rootPath == "" || c.language == "" {
		return nil
	}
	c.recompute()
	return c.Load(ctx)
}

// SetFilePath points the coordinator at an explicit file, deriving root path
// and language from it, and reloads. The explicit path stays in effect until
// the next root or language change.
func (c *Coordinator) SetFilePath(ctx context.Context, filePath string) error {
	c.filePath = filePath
	c.explicit = filePath != ""
	if filePath == "" {
		return nil
	}
	folder := path.Dir(filePath)
	c.language = path.Base(folder)
	c.rootPath = path.Dir(folder)
	return c.Load(ctx)
}

// SetFormat switches the persistence format live: the engine is recreated
// and the translations reload. An explicit file path is kept as-is.
func (c *Coordinator) SetFormat(ctx context.Context, id string) error {
	if id == "" || id == c.formatID {
		return nil
	}
	c.formatID = id
	c.eng = nil
	if !c.explicit {
		c.recompute()
	}
	return c.Load(ctx)
}

// Load reads the resolved translation file and applies it to the tree.
// Not ready (no resolved path) is a silent no-op. Translation source
// problems go to the error hook; configuration and I/O errors are returned.
func (c *Coordinator) Load(ctx context.Context) error {
	return c.LoadTree(ctx, c.root, "")
}

// LoadTree is Load for an explicit tree and file, used by tooling that
// works on trees the coordinator does not own. An empty filePath falls back
// to the resolved one.
func (c *Coordinator) LoadTree(ctx context.Context, root uitree.Container, filePath string) error {
	if filePath == "" {
		filePath = c.filePath
	}
	if filePath == "" {
		return nil
	}
	eng, err := c.ensureEngine()
	if err != nil {
		c.report(ctx, err)
		return nil
	}
	if c.beforeLoad != nil && !c.beforeLoad(c) {
		return nil
	}

	c.st.Clear()
	if err := eng.Load(ctx, root, filePath, c.st); err != nil {
		if errors.Is(err, ErrDomain) {
			c.report(ctx, err)
			return nil
		}
		return err
	}

	c.log.DebugContext(ctx, "translations loaded",
		slog.String("file", filePath),
		slog.String("language", c.language))
	if c.afterLoad != nil {
		c.afterLoad(c)
	}
	return nil
}

// Save writes the tree's eligible attributes and the runtime strings to the
// resolved translation file. Unlike Load, a missing path is a configuration
// error.
func (c *Coordinator) Save(ctx context.Context) error {
	return c.SaveTree(ctx, c.root, "")
}

// SaveTree is Save for an explicit tree and file. An empty filePath falls
// back to the resolved one.
func (c *Coordinator) SaveTree(ctx context.Context, root uitree.Container, filePath string) error {
	if filePath == "" {
		filePath = c.filePath
	}
	if filePath == "" {
		return ErrNoFilePath
	}
	eng, err := c.ensureEngine()
	if err != nil {
		c.report(ctx, err)
		return nil
	}
	if c.beforeSave != nil && !c.beforeSave(c) {
		return nil
	}

	if err := eng.Save(ctx, root, filePath); err != nil {
		if errors.Is(err, ErrDomain) {
			c.report(ctx, err)
			return nil
		}
		return err
	}

	c.log.DebugContext(ctx, "translations saved",
		slog.String("file", filePath),
		slog.String("language", c.language))
	if c.afterSave != nil {
		c.afterSave(c)
	}
	return nil
}

// Translate returns the translation for s from the coordinator's store,
// falling back to the server's shared store, then to s itself. Never fails.
func (c *Coordinator) Translate(s string) string {
	if v, ok := c.st.TryGet(s); ok {
		return v
	}
	if c.server != nil {
		return c.server.Translate(s)
	}
	return s
}

// recompute rebuilds the conventional file path when root path and language
// are both known, dropping any explicit path override.
func (c *Coordinator) recompute() {
	if c.rootPath == "" || c.language == "" {
		return
	}
	base := c.baseName
	if base == "" && c.root != nil {
		base = c.root.ContainerName()
	}
	if base == "" {
		return
	}
	c.filePath = path.Join(c.rootPath, c.language, base+c.ext())
	c.explicit = false
}

func (c *Coordinator) ext() string {
	if eng, err := c.ensureEngine(); err == nil {
		return eng.Ext()
	}
	return ""
}

// ensureEngine creates the engine on first use and after format changes.
func (c *Coordinator) ensureEngine() (*engine.Engine, error) {
	if c.eng != nil {
		return c.eng, nil
	}
	f, err := c.registry.Create(c.formatID)
	if err != nil {
		return nil, err
	}
	c.eng = engine.New(f,
		engine.WithProvider(c.provider),
		engine.WithExcludeTypes(c.excludeTypes...),
		engine.WithExcludeAttrs(c.excludeAttrs...),
		engine.WithExcludeOnAction(c.excludeOnAction),
		engine.WithCreateMissing(c.createMissing),
	)
	return c.eng, nil
}

// report routes a non-fatal error to the hook, or logs it when no hook is
// installed.
func (c *Coordinator) report(ctx context.Context, err error) {
	if c.errHook != nil {
		c.errHook(err)
		return
	}
	c.log.WarnContext(ctx, "translation source unavailable",
		slog.String("file", c.filePath),
		slog.String("error", err.Error()))
}

// applyState is the server push path: language, root and format change in
// one step with a single reload.
func (c *Coordinator) applyState(ctx context.Context, language, rootPath, formatID string) error {
	if formatID != "" && formatID != c.formatID {
		c.formatID = formatID
		c.eng = nil
	}
	c.language = language
	c.rootPath = rootPath
	c.recompute()
	return c.Load(ctx)
}

func (c *Coordinator) applyInfo(info langinfo.Info) {
	c.info = info
}
