package lingo

import (
	"log/slog"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/source"
	"github.com/dmitrymomot/lingo/pkg/store"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// BeforeHook runs before a load or save. Returning false cancels the
// operation silently.
type BeforeHook func(*Coordinator) bool

// AfterHook runs after a load or save completed.
type AfterHook func(*Coordinator)

// ErrorHook receives non-fatal translation source errors instead of the
// caller. The default hook logs them.
type ErrorHook func(error)

// ChangeHook fires after the server finished switching to a language.
type ChangeHook func(language string)

// WithServer registers the coordinator with a language server on creation.
// If the server already holds a valid language and root, the coordinator is
// synchronized immediately.
func WithServer(s *Server) Option {
	return func(c *Coordinator) {
		c.server = s
	}
}

// WithFormat selects the persistence format.
// Defaults to FormatLNG.
func WithFormat(id string) Option {
	return func(c *Coordinator) {
		if id != "" {
			c.formatID = id
		}
	}
}

// WithLanguage presets the language id. No load happens during construction;
// the file path resolves once root and language are both set.
func WithLanguage(language string) Option {
	return func(c *Coordinator) {
		c.language = language
	}
}

// WithRoot presets the translations root path.
func WithRoot(rootPath string) Option {
	return func(c *Coordinator) {
		c.rootPath = rootPath
	}
}

// WithProvider sets the file source.
// Defaults to the local filesystem.
func WithProvider(p source.Provider) Option {
	return func(c *Coordinator) {
		if p != nil {
			c.provider = p
		}
	}
}

// WithStore shares a translation store instead of the private one the
// coordinator creates by default.
func WithStore(st *store.Store) Option {
	return func(c *Coordinator) {
		if st != nil {
			c.st = st
		}
	}
}

// WithRegistry uses an isolated format registry instead of the package
// default.
func WithRegistry(r *engine.Registry) Option {
	return func(c *Coordinator) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithBaseName overrides the file base name, which defaults to the root
// container's name.
func WithBaseName(name string) Option {
	return func(c *Coordinator) {
		c.baseName = name
	}
}

// WithCreateMissing makes loads materialize starter files and saves create
// missing directories.
func WithCreateMissing(on bool) Option {
	return func(c *Coordinator) {
		c.createMissing = on
	}
}

// WithExcludeTypes adds container type names whose subtrees are never
// translated nor persisted.
func WithExcludeTypes(names ...string) Option {
	return func(c *Coordinator) {
		c.excludeTypes = append(c.excludeTypes, names...)
	}
}

// WithExcludeAttrs adds attribute names that are never translated nor
// persisted.
func WithExcludeAttrs(names ...string) Option {
	return func(c *Coordinator) {
		c.excludeAttrs = append(c.excludeAttrs, names...)
	}
}

// WithExcludeOnAction keeps action-driven Caption, Hint and Text values
// authoritative at runtime: they are still saved, but a load never
// overwrites them.
func WithExcludeOnAction(on bool) Option {
	return func(c *Coordinator) {
		c.excludeOnAction = on
	}
}

// WithLogger sets the coordinator logger.
// Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithBeforeLoad installs a cancellable hook fired before every load.
func WithBeforeLoad(h BeforeHook) Option {
	return func(c *Coordinator) {
		c.beforeLoad = h
	}
}

// WithAfterLoad installs a hook fired after every completed load.
func WithAfterLoad(h AfterHook) Option {
	return func(c *Coordinator) {
		c.afterLoad = h
	}
}

// WithBeforeSave installs a cancellable hook fired before every save.
func WithBeforeSave(h BeforeHook) Option {
	return func(c *Coordinator) {
		c.beforeSave = h
	}
}

// WithAfterSave installs a hook fired after every completed save.
func WithAfterSave(h AfterHook) Option {
	return func(c *Coordinator) {
		c.afterSave = h
	}
}

// WithErrorHook replaces the default logging of non-fatal translation
// source errors.
func WithErrorHook(h ErrorHook) Option {
	return func(c *Coordinator) {
		c.errHook = h
	}
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerProvider sets the server's file source.
// Defaults to the local filesystem.
func WithServerProvider(p source.Provider) ServerOption {
	return func(s *Server) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithServerRegistry uses an isolated format registry instead of the
// package default.
func WithServerRegistry(r *engine.Registry) ServerOption {
	return func(s *Server) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithServerFormat selects the server's persistence format.
// Defaults to FormatLNG.
func WithServerFormat(id string) ServerOption {
	return func(s *Server) {
		if id != "" {
			s.formatID = id
		}
	}
}

// WithServerLogger sets the server logger.
// Defaults to a discard logger.
func WithServerLogger(l *slog.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithConfig applies environment-derived defaults: root path and format.
// The language still flows through SetLanguage so the switch propagates to
// every registered coordinator.
func WithConfig(cfg Config) ServerOption {
	return func(s *Server) {
		if cfg.RootPath != "" {
			s.rootPath = cfg.RootPath
		}
		if cfg.Format != "" {
			s.formatID = cfg.Format
		}
	}
}

// WithChangeHook adds a hook fired after every completed language switch.
func WithChangeHook(h ChangeHook) ServerOption {
	return func(s *Server) {
		if h != nil {
			s.hooks = append(s.hooks, h)
		}
	}
}
