package lingo

import (
	"fmt"

	"github.com/dmitrymomot/lingo/pkg/engine"
)

// Error classes and sentinels, re-exported so callers can route failures
// without importing pkg/engine. ErrConfig-classed errors are always returned;
// ErrDomain-classed errors are downgraded to the error hook on the
// Coordinator path. I/O and parse failures carry neither class and propagate
// unchanged.
var (
	ErrConfig = engine.ErrConfig
	ErrDomain = engine.ErrDomain

	ErrUnknownFormat  = engine.ErrUnknownFormat
	ErrBadConstructor = engine.ErrBadConstructor
	ErrNoFilePath     = engine.ErrNoFilePath
	ErrMissingFile    = engine.ErrMissingFile
)

var (
	// ErrEmptyLanguage reports a language switch with an empty id.
	ErrEmptyLanguage = fmt.Errorf("%w: empty language id", ErrConfig)

	// ErrNoLanguages reports a translations root with no language folders to
	// match against.
	ErrNoLanguages = fmt.Errorf("%w: no languages available", ErrDomain)
)
