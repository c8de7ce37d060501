package engine

import (
	"errors"
	"fmt"
)

// Classification sentinels. Every error this package raises wraps one of the
// two classes, so callers can route fatal configuration mistakes separately
// from conditions of the translation source that a running UI should
// survive. I/O and parse failures from providers and codecs propagate
// unchanged and carry neither class.
var (
	// ErrConfig classifies programming and configuration mistakes. These
	// always surface to the caller.
	ErrConfig = errors.New("lingo: configuration error")

	// ErrDomain classifies conditions of the translation source itself.
	// Facades report these through a non-fatal hook instead of failing.
	ErrDomain = errors.New("lingo: translation source error")
)

var (
	// ErrUnknownFormat reports a format id with no registered constructor.
	ErrUnknownFormat = fmt.Errorf("%w: unknown format", ErrConfig)

	// ErrBadConstructor reports a format constructor that failed its
	// registration probe.
	ErrBadConstructor = fmt.Errorf("%w: format constructor probe failed", ErrConfig)

	// ErrNoFilePath reports a load or save attempted without a file path.
	ErrNoFilePath = fmt.Errorf("%w: no file path", ErrConfig)

	// ErrMissingFile reports a translation file absent from its source
	// while auto-create is disabled.
	ErrMissingFile = fmt.Errorf("%w: translation file does not exist", ErrDomain)
)
