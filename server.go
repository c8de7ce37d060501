package lingo

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"slices"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/langinfo"
	"github.com/dmitrymomot/lingo/pkg/logger"
	"github.com/dmitrymomot/lingo/pkg/source"
	"github.com/dmitrymomot/lingo/pkg/store"
)

// Server is the process-wide language switchboard: it owns the shared
// runtime-string store, the current language and root, and the list of
// registered coordinators. A language or root change reloads the shared
// runtime table, pushes the new state and metadata onto every client and
// fires the change hooks, all before returning.
//
// Construct one Server at startup and inject it into coordinators via
// WithServer; there is no ambient singleton.
type Server struct {
	mu       sync.Mutex
	provider source.Provider
	registry *engine.Registry
	log      *slog.Logger
	st       *store.Store

	language string
	rootPath string
	formatID string
	info     langinfo.Info
	clients  []*Coordinator
	hooks    []ChangeHook
}

// NewServer creates a language server. It holds no language until
// SetLanguage is called.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		provider: source.Local{},
		registry: engine.Default(),
		log:      logger.NewNope(),
		st:       store.New(),
		formatID: FormatLNG,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Language returns the current language id.
func (s *Server) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// RootPath returns the current translations root path.
func (s *Server) RootPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rootPath
}

// Format returns the current persistence format id.
func (s *Server) Format() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formatID
}

// Info returns the metadata of the current language.
func (s *Server) Info() langinfo.Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// Store returns the shared runtime-string store.
func (s *Server) Store() *store.Store {
	return s.st
}

// RegisterClient adds a coordinator to the server. Registering twice is a
// no-op. When the server already holds a valid language and root, the new
// client is synchronized immediately.
func (s *Server) RegisterClient(ctx context.Context, c *Coordinator) {
	if c == nil {
		return
	}
	s.mu.Lock()
	if !slices.Contains(s.clients, c) {
		s.clients = append(s.clients, c)
	}
	language, rootPath, formatID := s.language, s.rootPath, s.formatID
	info := s.info
	s.mu.Unlock()

	if language == "" || rootPath == "" {
		return
	}
	if err := c.applyState(ctx, language, rootPath, formatID); err != nil {
		s.log.WarnContext(ctx, "client synchronization failed",
			slog.String("language", language),
			slog.String("error", err.Error()))
	}
	c.applyInfo(info)
}

// UnregisterClient removes a coordinator from the server. Unknown clients
// are ignored.
func (s *Server) UnregisterClient(c *Coordinator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = slices.DeleteFunc(s.clients, func(x *Coordinator) bool {
		return x == c
	})
}

// SetLanguage switches the active language. With a root path set and the
// language folder present, the switch propagates: shared runtime strings
// reload, every client reloads, metadata refreshes and change hooks fire.
func (s *Server) SetLanguage(ctx context.Context, language string) error {
	if language == "" {
		return ErrEmptyLanguage
	}
	s.mu.Lock()
	s.language = language
	s.mu.Unlock()
	return s.propagate(ctx)
}

// SetRoot changes the translations root path and propagates like a language
// switch.
func (s *Server) SetRoot(ctx context.Context, rootPath string) error {
	s.mu.Lock()
	s.rootPath = rootPath
	s.mu.Unlock()
	return s.propagate(ctx)
}

// SetFormat switches the persistence format for the server and all clients
// and propagates.
func (s *Server) SetFormat(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	s.mu.Lock()
	s.formatID = id
	s.mu.Unlock()
	return s.propagate(ctx)
}

// Translate returns the shared-store translation for s, or s unchanged on a
// miss. Never fails.
func (s *Server) Translate(text string) string {
	if v, ok := s.st.TryGet(text); ok {
		return v
	}
	return text
}

// Languages lists the language folders under the root whose names parse as
// language tags.
func (s *Server) Languages(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	rootPath := s.rootPath
	s.mu.Unlock()
	if rootPath == "" {
		return nil, nil
	}

	dirs, err := s.provider.ListDirs(ctx, rootPath)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if _, err := language.Parse(d); err == nil {
			out = append(out, d)
		}
	}
	return out, nil
}

// Match picks the best available language for the caller's preferences,
// e.g. the parsed contents of an Accept-Language header.
func (s *Server) Match(ctx context.Context, prefs ...string) (string, error) {
	available, err := s.Languages(ctx)
	if err != nil {
		return "", err
	}
	if len(available) == 0 {
		return "", ErrNoLanguages
	}

	tags := make([]language.Tag, len(available))
	for i, id := range available {
		tags[i], _ = language.Parse(id)
	}
	desired := make([]language.Tag, 0, len(prefs))
	for _, p := range prefs {
		if tag, err := language.Parse(p); err == nil {
			desired = append(desired, tag)
		}
	}

	_, idx, _ := language.NewMatcher(tags).Match(desired...)
	return available[idx], nil
}

// MatchHeader picks the best available language for a raw Accept-Language
// header, honoring quality weights. An empty or malformed header falls back
// like Match without preferences.
func (s *Server) MatchHeader(ctx context.Context, header string) (string, error) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		tags = nil
	}
	prefs := make([]string, len(tags))
	for i, t := range tags {
		prefs[i] = t.String()
	}
	return s.Match(ctx, prefs...)
}

// propagate runs the full switch sequence. It is a no-op until language and
// root are both set and the language folder exists. Client failures do not
// stop the remaining clients; they are joined into the returned error after
// the sequence completes.
func (s *Server) propagate(ctx context.Context) error {
	s.mu.Lock()
	language, rootPath, formatID := s.language, s.rootPath, s.formatID
	clients := slices.Clone(s.clients)
	s.mu.Unlock()

	if language == "" || rootPath == "" {
		return nil
	}

	folder := path.Join(rootPath, language)
	exists, err := s.provider.Exists(ctx, folder)
	if err != nil {
		return err
	}
	if !exists {
		s.log.WarnContext(ctx, "language folder missing, keeping current state",
			slog.String("folder", folder))
		return nil
	}

	f, err := s.registry.Create(formatID)
	if err != nil {
		return err
	}
	eng := engine.New(f, engine.WithProvider(s.provider))

	// Shared runtime strings first, swapped in atomically so Translate never
	// sees a half-populated table. A missing runtime file means an empty one.
	tmp := store.New()
	if err := eng.Load(ctx, nil, path.Join(folder, RuntimeBase+f.Ext()), tmp); err != nil &&
		!errors.Is(err, ErrMissingFile) {
		return err
	}
	s.st.Reset(tmp.Snapshot())

	var errs []error
	for _, c := range clients {
		if err := c.applyState(ctx, language, rootPath, formatID); err != nil {
			errs = append(errs, err)
		}
	}

	info, err := eng.LoadInfo(ctx, path.Join(folder, InfoBase+f.Ext()))
	if err != nil {
		errs = append(errs, err)
	}
	if info.ID == "" {
		info.ID = language
	}
	s.mu.Lock()
	s.info = info
	s.mu.Unlock()

	for _, c := range clients {
		c.applyInfo(info)
	}

	for _, h := range s.hooks {
		h(language)
	}

	s.log.InfoContext(ctx, "language switched",
		slog.String("language", language),
		slog.String("root", rootPath),
		slog.Int("clients", len(clients)))
	return errors.Join(errs...)
}
